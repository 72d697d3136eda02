// Package render writes a built fragmap to a terminal table, JSON, YAML, or
// an HTML heatmap page.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/Sumatoshi-tech/fragmap/internal/history"
	"github.com/Sumatoshi-tech/fragmap/pkg/fragmap"
)

// ErrUnknownFormat is returned when the requested format has no renderer.
var ErrUnknownFormat = errors.New("unknown render format")

// Options selects and tunes the renderer.
type Options struct {
	// Format is one of text, json, yaml, html.
	Format string

	// Color enables colored touch-kind cells in text output.
	Color bool
}

// Render writes the fragmap in the chosen format. Commit metadata labels the
// matrix rows.
func Render(w io.Writer, fm *fragmap.FragMap, commits []history.CommitMeta, opts Options) error {
	switch opts.Format {
	case "text":
		return renderText(w, fm, commits, opts.Color)
	case "json":
		return renderJSON(w, fm, commits)
	case "yaml":
		return renderYAML(w, fm, commits)
	case "html":
		return renderHTML(w, fm, commits)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}
}

// touchGlyph is the single-character cell label for a touch kind.
func touchGlyph(kind fragmap.TouchKind) string {
	switch kind {
	case fragmap.TouchAdded:
		return "A"
	case fragmap.TouchModified:
		return "M"
	case fragmap.TouchDeleted:
		return "D"
	case fragmap.TouchNone:
		return "·"
	default:
		return "?"
	}
}

// shortOID abbreviates a commit identifier for display.
func shortOID(oid string) string {
	const shortLen = 8

	if len(oid) > shortLen {
		return oid[:shortLen]
	}

	return oid
}

// summaryFor finds the display metadata for a commit OID.
func summaryFor(commits []history.CommitMeta, oid string) string {
	for _, c := range commits {
		if c.OID == oid {
			return c.Summary
		}
	}

	return ""
}
