// Package commands implements CLI command handlers for fragmap.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/Sumatoshi-tech/fragmap/internal/config"
	"github.com/Sumatoshi-tech/fragmap/internal/history"
	"github.com/Sumatoshi-tech/fragmap/internal/render"
	"github.com/Sumatoshi-tech/fragmap/pkg/fragmap"
	"github.com/Sumatoshi-tech/fragmap/pkg/gitlib"
)

// defaultReference is the commit-ish compared against HEAD when none is
// given.
const defaultReference = "origin/HEAD"

// outputFilePerm is the permission mode for --output files.
const outputFilePerm = 0o644

// ErrNoCommitsInRange is returned when the reference point equals HEAD.
var ErrNoCommitsInRange = errors.New("no commits between the reference point and HEAD")

// mapFlags holds the map command's flag values.
type mapFlags struct {
	repoPath   string
	configPath string
	format     string
	output     string
	full       bool
	noColor    bool
}

// NewMapCommand creates the map subcommand.
func NewMapCommand() *cobra.Command {
	flags := &mapFlags{}

	cmd := &cobra.Command{
		Use:   "map [commit-ish]",
		Short: "Build and render the fragmap for a commit range",
		Long: `Build the fragmap for the commits between the merge base with the given
commit-ish (default origin/HEAD) and HEAD, and render it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reference := defaultReference
			if len(args) > 0 {
				reference = args[0]
			}

			return runMap(cmd, reference, flags)
		},
	}

	cmd.Flags().StringVar(&flags.repoPath, "repo", "", "repository path (default from config, then \".\")")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "config file path")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "output format: text, json, yaml, html")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&flags.full, "full", false, "keep per-file clusters instead of the brief map")
	cmd.Flags().BoolVar(&flags.noColor, "no-color", false, "disable colored matrix cells")

	return cmd
}

// runMap builds the fragmap for the commit range and renders it.
func runMap(cmd *cobra.Command, reference string, flags *mapFlags) error {
	cfg, err := loadSettings(flags)
	if err != nil {
		return err
	}

	collection, err := collectRange(cfg.Repo, reference)
	if err != nil {
		return err
	}

	if len(collection.Inputs) == 0 {
		return ErrNoCommitsInRange
	}

	fm := fragmap.Build(collection.Inputs, fragmap.Options{Brief: cfg.Brief})

	slog.Debug("fragmap built",
		"commits", len(fm.Commits),
		"clusters", len(fm.Clusters),
	)

	writer, closeFn, err := openOutput(cmd.OutOrStdout(), cfg.Output)
	if err != nil {
		return err
	}
	defer closeFn()

	return render.Render(writer, fm, collection.Commits, render.Options{
		Format: cfg.Format,
		Color:  cfg.Color,
	})
}

// loadSettings merges config file values with command-line flag overrides.
func loadSettings(flags *mapFlags) (*cfgpkg.Config, error) {
	cfg, err := cfgpkg.LoadConfig(flags.configPath)
	if err != nil {
		return nil, err
	}

	if flags.repoPath != "" {
		cfg.Repo = flags.repoPath
	}

	if flags.format != "" {
		cfg.Format = flags.format
	}

	if flags.output != "" {
		cfg.Output = flags.output
	}

	if flags.full {
		cfg.Brief = false
	}

	if flags.noColor {
		cfg.Color = false
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, validateErr
	}

	return cfg, nil
}

// collectRange opens the repository and collects the commit range between
// the merge base with reference and HEAD.
func collectRange(repoPath, reference string) (*history.Collection, error) {
	repo, err := gitlib.OpenRepository(repoPath)
	if err != nil {
		return nil, err
	}
	defer repo.Free()

	refPoint, err := history.ReferencePoint(repo, reference)
	if err != nil {
		return nil, err
	}

	slog.Debug("reference point resolved", "oid", refPoint.String(), "commitish", reference)

	return history.Collect(repo, refPoint)
}

// openOutput returns the destination writer: the given default, or the
// configured file.
func openOutput(stdout io.Writer, path string) (io.Writer, func(), error) {
	if path == "" {
		return stdout, func() {}, nil
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, outputFilePerm)
	if err != nil {
		return nil, nil, fmt.Errorf("open output file: %w", err)
	}

	return file, func() { _ = file.Close() }, nil
}
