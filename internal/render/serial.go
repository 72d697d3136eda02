package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/fragmap/internal/history"
	"github.com/Sumatoshi-tech/fragmap/pkg/fragmap"
)

// serialMap is the wire shape shared by the JSON and YAML renderers.
type serialMap struct {
	Commits  []serialCommit  `json:"commits"          yaml:"commits"`
	Clusters []serialCluster `json:"clusters"         yaml:"clusters"`
	Matrix   [][]string      `json:"matrix"           yaml:"matrix"`
}

type serialCommit struct {
	OID     string `json:"oid"               yaml:"oid"`
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`
	Author  string `json:"author,omitempty"  yaml:"author,omitempty"`
}

type serialCluster struct {
	Spans      []serialSpan `json:"spans"       yaml:"spans"`
	CommitOIDs []string     `json:"commit_oids" yaml:"commit_oids"`
}

type serialSpan struct {
	Path      string `json:"path"       yaml:"path"`
	StartLine int64  `json:"start_line" yaml:"start_line"`
	EndLine   int64  `json:"end_line"   yaml:"end_line"`
}

// toSerial flattens the fragmap into the wire shape.
func toSerial(fm *fragmap.FragMap, commits []history.CommitMeta) serialMap {
	out := serialMap{
		Commits:  make([]serialCommit, 0, len(fm.Commits)),
		Clusters: make([]serialCluster, 0, len(fm.Clusters)),
		Matrix:   make([][]string, 0, len(fm.Matrix)),
	}

	for _, oid := range fm.Commits {
		sc := serialCommit{OID: oid}

		for _, meta := range commits {
			if meta.OID == oid {
				sc.Summary = meta.Summary
				sc.Author = meta.Author
			}
		}

		out.Commits = append(out.Commits, sc)
	}

	for _, cluster := range fm.Clusters {
		spans := make([]serialSpan, 0, len(cluster.Spans))

		for _, s := range cluster.Spans {
			spans = append(spans, serialSpan{Path: s.Path, StartLine: s.StartLine, EndLine: s.EndLine})
		}

		out.Clusters = append(out.Clusters, serialCluster{
			Spans:      spans,
			CommitOIDs: cluster.CommitOIDs,
		})
	}

	for _, row := range fm.Matrix {
		cells := make([]string, 0, len(row))

		for _, kind := range row {
			cells = append(cells, touchName(kind))
		}

		out.Matrix = append(out.Matrix, cells)
	}

	return out
}

// touchName is the serialized touch-kind label.
func touchName(kind fragmap.TouchKind) string {
	switch kind {
	case fragmap.TouchAdded:
		return "added"
	case fragmap.TouchModified:
		return "modified"
	case fragmap.TouchDeleted:
		return "deleted"
	case fragmap.TouchNone:
		return "none"
	default:
		return "none"
	}
}

// renderJSON writes the fragmap as indented JSON.
func renderJSON(w io.Writer, fm *fragmap.FragMap, commits []history.CommitMeta) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	err := enc.Encode(toSerial(fm, commits))
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

// renderYAML writes the fragmap as YAML.
func renderYAML(w io.Writer, fm *fragmap.FragMap, commits []history.CommitMeta) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()

	err := enc.Encode(toSerial(fm, commits))
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return nil
}
