// Package config loads fragmap settings from file, environment, and
// defaults.
package config

import (
	"errors"
	"fmt"
)

// Default configuration values.
const (
	// DefaultRepoPath is the repository searched when --repo is not given.
	DefaultRepoPath = "."

	// DefaultFormat is the default output format.
	DefaultFormat = "text"

	// DefaultBrief collapses clusters with identical commit signatures.
	DefaultBrief = true

	// DefaultColor enables colored matrix cells on terminals.
	DefaultColor = true
)

// ErrUnknownFormat is returned for an output format outside the known set.
var ErrUnknownFormat = errors.New("unknown output format")

// knownFormats lists the supported output formats.
var knownFormats = map[string]bool{
	"text": true,
	"json": true,
	"yaml": true,
	"html": true,
}

// Config holds all fragmap settings.
type Config struct {
	// Repo is the repository path to analyze.
	Repo string `mapstructure:"repo"`

	// Brief collapses clusters with identical commit signatures.
	Brief bool `mapstructure:"brief"`

	// Format selects the output renderer: text, json, yaml, or html.
	Format string `mapstructure:"format"`

	// Color toggles colored matrix cells in text output.
	Color bool `mapstructure:"color"`

	// Output is the file to write to; empty means stdout.
	Output string `mapstructure:"output"`
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if !knownFormats[c.Format] {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}

	return nil
}
