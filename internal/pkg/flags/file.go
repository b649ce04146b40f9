package flags

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/dasch-swiss/ark-resolver/internal/pkg/arkerrors"
)

// FileFlag represents a file-based command-line flag.
// Provides validation on retrieval via Value().
type FileFlag interface {
	// Value returns the value of the flag.
	// Errors if the file does not exist or is not readable.
	Value() (string, arkerrors.ArkError)
	// IsSet returns true if the flag was explicitly provided.
	IsSet() bool
}

type fileFlag struct {
	*stringFlag
}

var _ FileFlag = (*fileFlag)(nil)

// NewFileFlag instantiates a new file flag on a given flag set.
// Returns a FileFlag that can be used to get the value of the flag.
// When calling Value, an error of type InvalidFileFlagError will be returned if the file does not exist or is not readable.
func NewFileFlag(flags *pflag.FlagSet, required bool, name string, short string, defaultValue string, desc string) FileFlag {
	return &fileFlag{
		stringFlag: NewStringFlag(flags, required, name, short, defaultValue, desc),
	}
}

func (f *fileFlag) Value() (string, arkerrors.ArkError) {
	f.trimSpace()
	value, err := f.stringFlag.Value()
	if err != nil {
		return "", err
	}
	if value == "" && !f.stringFlag.required {
		return "", nil
	}
	info, statErr := os.Stat(value)
	if statErr != nil {
		return "", NewInvalidFileFlagError(f.stringFlag.name, value, statErr)
	}
	if info.IsDir() {
		return "", NewInvalidFileFlagError(f.stringFlag.name, value, fmt.Errorf("is a directory"))
	}
	file, openErr := os.Open(value)
	if openErr != nil {
		return "", NewInvalidFileFlagError(f.stringFlag.name, value, openErr)
	}
	defer file.Close()
	return file.Name(), nil
}

func (f *fileFlag) IsSet() bool {
	return f.stringFlag.wasProvided()
}

type InvalidFileFlagError interface {
	arkerrors.ArkError
}

type invalidFileFlagError struct {
	flagName  string
	flagValue string
	reason    string
}

var _ InvalidFileFlagError = &invalidFileFlagError{}

func NewInvalidFileFlagError(flagName string, flagValue string, err error) InvalidFileFlagError {
	return &invalidFileFlagError{flagName: flagName, flagValue: flagValue, reason: err.Error()}
}

func (e *invalidFileFlagError) Error() string {
	return fmt.Sprintf("--%s was set with an invalid file: %s (%s)", e.flagName, e.flagValue, e.reason)
}

func (e *invalidFileFlagError) Title() string {
	return "Invalid Config File"
}

func (e *invalidFileFlagError) ShouldPrintUsage() bool {
	return true
}
