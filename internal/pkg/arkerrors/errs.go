package arkerrors

import (
	"context"
	"errors"
)

type ArkError interface {
	// Title is the canonical identifier for the error.
	// Must be short and concise, and not depend on context.
	// Should not produce styled output.
	Title() string
	// Error is the underlying error detail.
	// Should not produce styled output.
	Error() string
	// ShouldPrintUsage indicates whether the error should print usage
	// information for the offending command when this error occurs.
	ShouldPrintUsage() bool
}

var _ error = ArkError(nil)

type arkError struct {
	err error
}

func NewArkError(err error) ArkError {
	if err == nil {
		return nil
	}
	// If already a ArkError, return it directly to avoid double-wrapping
	var ce ArkError
	if errors.As(err, &ce) {
		return ce
	}
	return &arkError{err: err}
}

func (e *arkError) Error() string {
	return e.err.Error()
}

func (e *arkError) Unwrap() error {
	return e.err
}

func (e *arkError) Title() string {
	return "Unknown Error"
}

func (e *arkError) ShouldPrintUsage() bool {
	return false
}

// NewUsageError creates a ArkError for command usage errors.
// This should be used for errors like invalid flags, missing arguments, etc.
// These errors will trigger usage information to be printed.
func NewUsageError(err error) ArkError {
	if err == nil {
		return nil
	}
	return &usageError{err: err}
}

type usageError struct {
	err error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func (e *usageError) Title() string {
	return "Usage Error"
}

func (e *usageError) ShouldPrintUsage() bool {
	return true
}

func (e *usageError) Unwrap() error {
	return e.err
}

// NewInterruptedError creates a ArkError for interrupted operations.
// This should used exclusively for context.Canceled errors.
func NewInterruptedError() ArkError {
	return &interruptedError{}
}

type interruptedError struct{}

func (e *interruptedError) Error() string {
	return "the operation's context was cancelled before it completed"
}

func (e *interruptedError) Title() string {
	return "Interrupted"
}

func (e *interruptedError) ShouldPrintUsage() bool {
	return false
}

func (e *interruptedError) Unwrap() error {
	return context.Canceled
}

// NewDeadlineExceededError creates a ArkError for deadline exceeded errors.
// This should used exclusively for context.DeadlineExceeded errors.
func NewDeadlineExceededError() ArkError {
	return &deadlineExceededError{}
}

type deadlineExceededError struct{}

func (e *deadlineExceededError) Error() string {
	return "the operation timed out before it could be completed"
}

func (e *deadlineExceededError) Title() string {
	return "Timeout"
}

func (e *deadlineExceededError) ShouldPrintUsage() bool {
	return false
}

func (e *deadlineExceededError) Unwrap() error {
	return context.DeadlineExceeded
}

// ParseContextError parses a context error into a ArkError.
// This should only be called on errors returned from ctx.Err().
func ParseContextError(err error) ArkError {
	switch {
	case errors.Is(err, context.Canceled):
		return NewInterruptedError()
	case errors.Is(err, context.DeadlineExceeded):
		return NewDeadlineExceededError()
	default:
		return NewArkError(err)
	}
}

type unwrappableArkError interface {
	ArkError
	Unwrap() error
}

// IsDeadlineExceeded checks if an error is due to a deadline exceeded error.
func IsDeadlineExceeded(err error) bool {
	if err == nil {
		return false
	}

	var domainError unwrappableArkError
	if errors.As(err, &domainError) {
		return errors.Is(domainError.Unwrap(), context.DeadlineExceeded)
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// IsInterrupted checks if an error is due to interruption (signal or context cancellation).
func IsInterrupted(err error) bool {
	if err == nil {
		return false
	}
	var domainError unwrappableArkError
	if errors.As(err, &domainError) {
		return errors.Is(domainError.Unwrap(), context.Canceled)
	}
	return errors.Is(err, context.Canceled)
}
