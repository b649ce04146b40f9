package formatter

import (
	"errors"

	"github.com/dasch-swiss/ark-resolver/internal/pkg/arkerrors"
)

// ExitCode maps an error to a conventional CLI exit code. Every ARK
// failure path exits non-zero, including failed self-test assertions.
// 0: success
// 2: error that prints usage (bad flags or arguments)
// 124: timeout
// 130: interrupted (canceled)
// 1: general error
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	// Check for interruption first (context.Canceled or NewInterruptedError)
	if arkerrors.IsInterrupted(err) {
		return 130
	}
	// Context-derived errors
	if arkerrors.IsDeadlineExceeded(err) {
		return 124
	}
	// Domain errors
	var ce arkerrors.ArkError
	if errors.As(err, &ce) {
		if ce.ShouldPrintUsage() {
			return 2
		}
		return 1
	}
	return 1
}
