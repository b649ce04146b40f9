// Package arkerr defines the ARK-domain error kinds raised by grammar
// parsing, check-digit validation, and redirect generation.
//
// Each kind implements arkerrors.ArkError so it flows through the same
// CLI printing and exit-code machinery as every other command error.
package arkerr

import (
	"fmt"

	"github.com/dasch-swiss/ark-resolver/internal/pkg/arkerrors"
)

// MalformedUrlError indicates the input did not match the ARK URL grammar,
// including unsupported URL versions and trailing-dot-without-timestamp cases.
type MalformedUrlError struct {
	reason string
}

var _ arkerrors.ArkError = &MalformedUrlError{}

func NewMalformedUrlError(reason string) *MalformedUrlError {
	return &MalformedUrlError{reason: reason}
}

func (e *MalformedUrlError) Error() string         { return fmt.Sprintf("Invalid ARK URL: %s", e.reason) }
func (e *MalformedUrlError) Title() string          { return "Malformed ARK URL" }
func (e *MalformedUrlError) ShouldPrintUsage() bool { return false }

// BadCheckDigitError indicates the resource tail failed the check-digit modulus test.
type BadCheckDigitError struct {
	tail string
}

var _ arkerrors.ArkError = &BadCheckDigitError{}

func NewBadCheckDigitError(tail string) *BadCheckDigitError {
	return &BadCheckDigitError{tail: tail}
}

func (e *BadCheckDigitError) Error() string {
	return fmt.Sprintf("Invalid ARK URL: check digit failed for %q", e.tail)
}
func (e *BadCheckDigitError) Title() string          { return "Bad Check Digit" }
func (e *BadCheckDigitError) ShouldPrintUsage() bool { return false }

// UnknownProjectError indicates Settings has no section for the requested project id.
type UnknownProjectError struct {
	projectID string
}

var _ arkerrors.ArkError = &UnknownProjectError{}

func NewUnknownProjectError(projectID string) *UnknownProjectError {
	return &UnknownProjectError{projectID: projectID}
}

func (e *UnknownProjectError) Error() string {
	return fmt.Sprintf("Unknown project: %s", e.projectID)
}
func (e *UnknownProjectError) Title() string          { return "Unknown Project" }
func (e *UnknownProjectError) ShouldPrintUsage() bool { return false }

// TemplateError indicates a redirect template referenced a variable outside
// the fixed vocabulary, or a configuration value had the wrong shape.
// These are always fatal at startup or treated as configuration bugs, never 400s.
type TemplateError struct {
	reason string
}

var _ arkerrors.ArkError = &TemplateError{}

func NewTemplateError(reason string) *TemplateError {
	return &TemplateError{reason: reason}
}

func (e *TemplateError) Error() string         { return fmt.Sprintf("Template error: %s", e.reason) }
func (e *TemplateError) Title() string          { return "Template Error" }
func (e *TemplateError) ShouldPrintUsage() bool { return false }

// InvalidCharacterError is raised by CheckDigit when a character falls outside
// the base64url alphabet. It is always translated to MalformedUrl or
// BadCheckDigit at the ArkGrammar boundary before reaching a caller.
type InvalidCharacterError struct {
	char byte
}

var _ arkerrors.ArkError = &InvalidCharacterError{}

func NewInvalidCharacterError(c byte) *InvalidCharacterError {
	return &InvalidCharacterError{char: c}
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("Invalid base64url character: %q", e.char)
}
func (e *InvalidCharacterError) Title() string          { return "Invalid Character" }
func (e *InvalidCharacterError) ShouldPrintUsage() bool { return false }

// InvalidCodeError is raised by CheckDigit when a code's weighted sum is zero,
// which would otherwise accept an all-zero-value code as valid.
type InvalidCodeError struct {
	code string
}

var _ arkerrors.ArkError = &InvalidCodeError{}

func NewInvalidCodeError(code string) *InvalidCodeError {
	return &InvalidCodeError{code: code}
}

func (e *InvalidCodeError) Error() string         { return fmt.Sprintf("Invalid code: %s", e.code) }
func (e *InvalidCodeError) Title() string          { return "Invalid Code" }
func (e *InvalidCodeError) ShouldPrintUsage() bool { return false }
