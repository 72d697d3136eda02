package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/fragmap/pkg/fragmap"
)

// spansFlags holds the spans command's flag values.
type spansFlags struct {
	repoPath   string
	propagated bool
}

// NewSpansCommand creates the spans subcommand: a plain dump of each
// commit's touched line ranges, mainly for debugging the propagation.
func NewSpansCommand() *cobra.Command {
	flags := &spansFlags{}

	cmd := &cobra.Command{
		Use:   "spans [commit-ish]",
		Short: "Dump per-commit line spans",
		Long: `List the line ranges each commit in the range touches. With --propagated
the ranges are pushed forward into the final file version's coordinates.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reference := defaultReference
			if len(args) > 0 {
				reference = args[0]
			}

			return runSpans(cmd, reference, flags)
		},
	}

	cmd.Flags().StringVar(&flags.repoPath, "repo", ".", "repository path")
	cmd.Flags().BoolVar(&flags.propagated, "propagated", false, "express spans in final file coordinates")

	return cmd
}

// runSpans dumps one line per span, grouped under its commit.
func runSpans(cmd *cobra.Command, reference string, flags *spansFlags) error {
	collection, err := collectRange(flags.repoPath, reference)
	if err != nil {
		return err
	}

	if len(collection.Inputs) == 0 {
		return ErrNoCommitsInRange
	}

	out := cmd.OutOrStdout()

	perCommit := make([][]fragmap.FileSpan, len(collection.Inputs))

	if flags.propagated {
		perCommit = fragmap.PropagatedSpans(collection.Inputs)
	} else {
		for i, input := range collection.Inputs {
			perCommit[i] = fragmap.Spans(input)
		}
	}

	for i, meta := range collection.Commits {
		if len(perCommit[i]) == 0 {
			continue
		}

		fmt.Fprintf(out, "%s %s:\n", shortOID(meta.OID), meta.Summary)

		for _, span := range perCommit[i] {
			fmt.Fprintf(out, "  %s [%d-%d]\n", span.Path, span.StartLine, span.EndLine)
		}
	}

	return nil
}

// shortOID abbreviates a commit identifier for display.
func shortOID(oid string) string {
	const shortLen = 8

	if len(oid) > shortLen {
		return oid[:shortLen]
	}

	return oid
}
