package flags

import (
	"fmt"

	"github.com/dasch-swiss/ark-resolver/internal/pkg/arkerrors"
)

// ConflictingFlagsError reports two flags that select mutually exclusive
// modes being given together (e.g. --test with --ark).
type ConflictingFlagsError interface {
	arkerrors.ArkError
}

type conflictingFlagsError struct {
	flag1 string
	flag2 string
}

var _ ConflictingFlagsError = &conflictingFlagsError{}

func NewConflictingFlagsError(flag1 string, flag2 string) ConflictingFlagsError {
	return &conflictingFlagsError{flag1: flag1, flag2: flag2}
}

func (e *conflictingFlagsError) Error() string {
	return fmt.Sprintf("cannot use --%s and --%s flags together", e.flag1, e.flag2)
}

func (e *conflictingFlagsError) Title() string {
	return "Conflicting Flags"
}

func (e *conflictingFlagsError) ShouldPrintUsage() bool {
	return true
}
