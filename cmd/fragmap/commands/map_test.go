package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadSettings_FlagOverrides verifies flags win over config values.
func TestLoadSettings_FlagOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fragmap.yaml")
	require.NoError(t, os.WriteFile(path, []byte("repo: /cfg/repo\nformat: json\n"), 0o600))

	cfg, err := loadSettings(&mapFlags{
		configPath: path,
		repoPath:   "/flag/repo",
		format:     "yaml",
		full:       true,
		noColor:    true,
	})
	require.NoError(t, err)

	assert.Equal(t, "/flag/repo", cfg.Repo)
	assert.Equal(t, "yaml", cfg.Format)
	assert.False(t, cfg.Brief)
	assert.False(t, cfg.Color)
}

// TestLoadSettings_RejectsBadFormatFlag verifies flag values are validated.
func TestLoadSettings_RejectsBadFormatFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fragmap.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: text\n"), 0o600))

	_, err := loadSettings(&mapFlags{configPath: path, format: "tsv"})
	assert.Error(t, err)
}

// TestOpenOutput_Stdout verifies the default writer passes through.
func TestOpenOutput_Stdout(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	w, closeFn, err := openOutput(&buf, "")
	require.NoError(t, err)

	defer closeFn()

	assert.Equal(t, &buf, w)
}

// TestOpenOutput_File verifies file creation and truncation.
func TestOpenOutput_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.txt")

	w, closeFn, err := openOutput(&bytes.Buffer{}, path)
	require.NoError(t, err)

	_, err = w.Write([]byte("fragmap"))
	require.NoError(t, err)

	closeFn()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fragmap", string(content))
}

// TestNewMapCommand_Flags verifies the flag surface stays stable.
func TestNewMapCommand_Flags(t *testing.T) {
	t.Parallel()

	cmd := NewMapCommand()

	for _, name := range []string{"repo", "config", "format", "output", "full", "no-color"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag %q", name)
	}
}

// TestNewSpansCommand_Flags verifies the spans flag surface.
func TestNewSpansCommand_Flags(t *testing.T) {
	t.Parallel()

	cmd := NewSpansCommand()

	assert.NotNil(t, cmd.Flags().Lookup("repo"))
	assert.NotNil(t, cmd.Flags().Lookup("propagated"))
}

// TestShortOID verifies abbreviation behavior.
func TestShortOID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abcd1234", shortOID("abcd1234ef567890"))
	assert.Equal(t, "abc", shortOID("abc"))
}
