// Package fragmap builds commit-by-cluster fragmentation maps from a linear
// sequence of commits and the textual hunks each commit applied. Hunk
// coordinates are propagated forward through every later edit via a per-file
// span propagation graph, so regions from different commits become comparable
// in one reference frame.
package fragmap

// Sentinel is the open-ended coordinate used by the graph's source and sink
// spans. It is far beyond any realistic file length.
const Sentinel int64 = 100_000_000

// Span is a half-open line range [Start, End). Coordinates are signed and
// 64-bit wide so that sentinel values and forward-mapping arithmetic
// (line - refOld + refNew) never wrap.
type Span struct {
	Start int64
	End   int64
}

// Empty reports whether the span contains no lines. Empty spans are
// meaningful: they mark pure insertion or deletion points.
func (s Span) Empty() bool {
	return s.Start >= s.End
}

// Overlap classifies how two spans relate.
type Overlap int

const (
	// OverlapNone means the spans neither intersect nor share a start or an
	// end coordinate; strictly adjacent spans fall here.
	OverlapNone Overlap = iota
	// OverlapPoint means the spans touch but at least one of them is empty.
	OverlapPoint
	// OverlapInterval means two non-empty spans share at least one line or
	// a boundary.
	OverlapInterval
)

// Overlaps classifies the overlap between a and b. Shared start or end
// positions count as overlapping; strictly adjacent spans (a.End == b.Start
// with no other shared endpoint) do not.
func Overlaps(a, b Span) Overlap {
	touches := a.Start == b.Start || a.End == b.End ||
		(a.End > b.Start && b.End > a.Start)
	if !touches {
		return OverlapNone
	}

	if a.Empty() || b.Empty() {
		return OverlapPoint
	}

	return OverlapInterval
}
