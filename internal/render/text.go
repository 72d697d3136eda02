package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Sumatoshi-tech/fragmap/internal/history"
	"github.com/Sumatoshi-tech/fragmap/pkg/fragmap"
)

// maxSummaryWidth caps commit summaries so wide histories stay readable.
const maxSummaryWidth = 48

// renderText writes the fragmap as a terminal grid: one row per commit, one
// column per cluster.
func renderText(w io.Writer, fm *fragmap.FragMap, commits []history.CommitMeta, colored bool) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)

	header := table.Row{"commit", "subject"}
	for j := range fm.Clusters {
		header = append(header, strconv.Itoa(j))
	}

	tw.AppendHeader(header)

	for i, oid := range fm.Commits {
		row := table.Row{shortOID(oid), truncate(summaryFor(commits, oid), maxSummaryWidth)}

		for j := range fm.Clusters {
			row = append(row, cell(fm.Matrix[i][j], colored))
		}

		tw.AppendRow(row)
	}

	tw.Render()

	_, err := fmt.Fprintf(w, "%s commits, %s clusters\n",
		humanize.Comma(int64(len(fm.Commits))),
		humanize.Comma(int64(len(fm.Clusters))),
	)
	if err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	return nil
}

// cell renders one matrix cell, optionally colored by touch kind.
func cell(kind fragmap.TouchKind, colored bool) string {
	glyph := touchGlyph(kind)

	if !colored || kind == fragmap.TouchNone {
		return glyph
	}

	switch kind {
	case fragmap.TouchAdded:
		return color.GreenString(glyph)
	case fragmap.TouchDeleted:
		return color.RedString(glyph)
	case fragmap.TouchModified:
		return color.YellowString(glyph)
	case fragmap.TouchNone:
		return glyph
	default:
		return glyph
	}
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	return s[:limit-1] + "…"
}
