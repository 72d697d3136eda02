package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfig_Defaults verifies defaults when no config file exists.
func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultRepoPath, cfg.Repo)
	assert.Equal(t, DefaultFormat, cfg.Format)
	assert.True(t, cfg.Brief)
	assert.True(t, cfg.Color)
	assert.Empty(t, cfg.Output)
}

// TestLoadConfig_File verifies reading an explicit config file.
func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fragmap.yaml")

	content := "repo: /tmp/repo\nformat: json\nbrief: false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/repo", cfg.Repo)
	assert.Equal(t, "json", cfg.Format)
	assert.False(t, cfg.Brief)
}

// TestLoadConfig_RejectsUnknownFormat verifies format validation.
func TestLoadConfig_RejectsUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fragmap.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: xml\n"), 0o600))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

// TestConfig_Validate covers the format whitelist directly.
func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	for _, format := range []string{"text", "json", "yaml", "html"} {
		cfg := Config{Format: format}
		assert.NoError(t, cfg.Validate())
	}

	cfg := Config{Format: "csv"}
	assert.ErrorIs(t, cfg.Validate(), ErrUnknownFormat)
}
