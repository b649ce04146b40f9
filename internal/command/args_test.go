package command

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestArgCountError(t *testing.T) {
	t.Run("Error method", func(t *testing.T) {
		baseErr := errors.New("test error")
		err := NewArgCountError(baseErr)
		// The actual error includes styling, so just check it contains the message
		assert.Contains(t, err.Error(), "test error")
	})

	t.Run("Title method", func(t *testing.T) {
		baseErr := errors.New("test error")
		err := NewArgCountError(baseErr)
		assert.Equal(t, "Incorrect Number of Arguments", err.Title())
	})

	t.Run("ShouldPrintUsage", func(t *testing.T) {
		baseErr := errors.New("test error")
		err := NewArgCountError(baseErr)
		assert.True(t, err.ShouldPrintUsage())
	})
}

func TestExactArgs(t *testing.T) {
	tests := []struct {
		name        string
		n           int
		args        []string
		expectError bool
		errorMsg    string
	}{
		{
			name:        "exact match",
			n:           2,
			args:        []string{"arg1", "arg2"},
			expectError: false,
		},
		{
			name:        "too few args",
			n:           3,
			args:        []string{"arg1", "arg2"},
			expectError: true,
			errorMsg:    "accepts 3 arg(s), received 2",
		},
		{
			name:        "too many args",
			n:           1,
			args:        []string{"arg1", "arg2"},
			expectError: true,
			errorMsg:    "accepts 1 arg(s), received 2",
		},
		{
			name:        "zero args expected and received",
			n:           0,
			args:        []string{},
			expectError: false,
		},
		{
			name:        "zero args expected but received some",
			n:           0,
			args:        []string{"arg1"},
			expectError: true,
			errorMsg:    "accepts 0 arg(s), received 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := ExactArgs(tt.n)
			cmd := &cobra.Command{Use: "test"}

			err := validator(cmd, tt.args)

			if tt.expectError {
				assert.Error(t, err)
				var argErr ArgCountError
				if errors.As(err, &argErr) {
					assert.Contains(t, argErr.Error(), tt.errorMsg)
					assert.True(t, argErr.ShouldPrintUsage())
				} else {
					t.Fatalf("Expected ArgCountError, got %T", err)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExactArgs_ZeroRejectsPositionals(t *testing.T) {
	// The resolver command takes no positional arguments at all.
	validator := ExactArgs(0)
	cmd := &cobra.Command{Use: "ark-resolver"}

	assert.NoError(t, validator(cmd, []string{}))

	err := validator(cmd, []string{"http://ark.dasch.swiss/ark:/72163/1"})
	assert.Error(t, err)
	var argErr ArgCountError
	if errors.As(err, &argErr) {
		assert.True(t, argErr.ShouldPrintUsage())
	} else {
		t.Fatalf("Expected ArgCountError, got %T", err)
	}
}
