package arkerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewArkError(t *testing.T) {
	baseErr := errors.New("base error")
	arkErr := NewArkError(baseErr)

	assert.NotNil(t, arkErr)
	assert.Contains(t, arkErr.Error(), "base error")
	assert.Equal(t, "Unknown Error", arkErr.Title())
	assert.False(t, arkErr.ShouldPrintUsage())
}

func TestArkError_Implementation(t *testing.T) {
	err := &arkError{
		err: errors.New("test error"),
	}

	assert.Equal(t, "test error", err.Error())
	assert.Equal(t, "Unknown Error", err.Title())
	assert.False(t, err.ShouldPrintUsage())
}

func TestArkError_WrappedError(t *testing.T) {
	innerErr := errors.New("inner error")
	wrappedErr := fmt.Errorf("wrapped: %w", innerErr)
	arkErr := NewArkError(wrappedErr)

	assert.Contains(t, arkErr.Error(), "wrapped")
	assert.Contains(t, arkErr.Error(), "inner error")
	assert.Equal(t, "Unknown Error", arkErr.Title())
}

func TestArkError_NilHandling(t *testing.T) {
	// Test that nil returns nil
	arkErr := NewArkError(nil)

	assert.Nil(t, arkErr)
}

func TestArkError_AvoidDoubleWrapping(t *testing.T) {
	// Create a ArkError
	baseErr := errors.New("base error")
	firstWrap := NewArkError(baseErr)

	// Wrap it again - should return the same error, not double-wrap
	secondWrap := NewArkError(firstWrap)

	assert.Equal(t, firstWrap, secondWrap)
}
