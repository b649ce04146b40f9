package command

import (
	"github.com/spf13/cobra"

	"github.com/dasch-swiss/ark-resolver/internal/pkg/arkerrors"
)

// Essentially the same as cobra.PositionalArgs, but with its
// own error type.
type PositionalArgs func(cmd *cobra.Command, args []string) error

type ArgCountError interface {
	arkerrors.ArkError
}

type argCountError struct {
	err error
}

func (e *argCountError) Error() string {
	return e.err.Error()
}

func (e *argCountError) Title() string {
	return "Incorrect Number of Arguments"
}

func (e *argCountError) ShouldPrintUsage() bool {
	return true
}

func NewArgCountError(err error) ArgCountError {
	return &argCountError{
		err: err,
	}
}

// ExactArgs requires exactly n positional arguments. The resolver command
// takes all of its input through flags, so it uses ExactArgs(0).
func ExactArgs(n int) PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return NewArgCountError(err)
		}
		return nil
	}
}
