// Package main provides the entry point for the fragmap CLI tool.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/fragmap/cmd/fragmap/commands"
	"github.com/Sumatoshi-tech/fragmap/pkg/version"
)

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "fragmap",
		Short: "Fragmap - commit fragmentation maps for git histories",
		Long: `Fragmap shows which commits in a branch touch related code regions.

Commands:
  map       Build and render the fragmap for a commit range
  spans     Dump per-commit line spans (--propagated for final coordinates)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(commands.NewMapCommand())
	rootCmd.AddCommand(commands.NewSpansCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "fragmap %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
