package flags

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	fileFlagName  = "config"
	fileFlagShort = "c"
)

func TestFileFlag(t *testing.T) {
	tests := []struct {
		name     string
		required bool
		setup    func(t *testing.T, tempDir string)
		args     []string
		assert   func(t *testing.T, tempDir, value string, err error)
	}{
		{
			name:     "valid file with spaces - required",
			required: true,
			setup: func(t *testing.T, tempDir string) {
				path := filepath.Join(tempDir, "test.txt")
				err := os.WriteFile(path, []byte("test"), 0o644)
				require.NoError(t, err)
			},
			args: []string{"--" + fileFlagName, "test.txt   "},
			assert: func(t *testing.T, tempDir, value string, err error) {
				assert.NoError(t, err)
				assert.Equal(t, filepath.Join(tempDir, "test.txt"), value)
			},
		},
		{
			name:     "directory path returns directory error",
			required: true,
			setup: func(t *testing.T, tempDir string) {
				_ = os.MkdirAll(filepath.Join(tempDir, "adir"), 0o755)
			},
			args: []string{"--" + fileFlagName, "adir"},
			assert: func(t *testing.T, tempDir, value string, err error) {
				assert.Error(t, err)
				expected := NewInvalidFileFlagError(fileFlagName, filepath.Join(tempDir, "adir"), fmt.Errorf("is a directory"))
				assert.Equal(t, expected, err)
			},
		},
		{
			name:     "missing required file",
			required: true,
			args:     []string{"--" + fileFlagName, "missing.ini"},
			assert: func(t *testing.T, tempDir, value string, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tempDir := t.TempDir()
			if tc.setup != nil {
				tc.setup(t, tempDir)
			}

			if len(tc.args) == 2 {
				tc.args[1] = filepath.Join(tempDir, tc.args[1])
			}

			cmd := &cobra.Command{}
			flag := NewFileFlag(cmd.Flags(), tc.required, fileFlagName, fileFlagShort, "", "A File Flag")
			cmd.SetArgs(tc.args)
			cmd.Run = func(cmd *cobra.Command, args []string) {
				value, err := flag.Value()
				tc.assert(t, tempDir, value, err)
			}
			require.NoError(t, cmd.Execute())
		})
	}
}

func TestFileFlag_DefaultNotRequired(t *testing.T) {
	cmd := &cobra.Command{}
	flag := NewFileFlag(cmd.Flags(), false, fileFlagName, fileFlagShort, "", "A File Flag")
	cmd.SetArgs([]string{})
	cmd.Run = func(cmd *cobra.Command, args []string) {
		value, err := flag.Value()
		assert.NoError(t, err)
		assert.Empty(t, value)
		assert.False(t, flag.IsSet())
	}
	require.NoError(t, cmd.Execute())
}
