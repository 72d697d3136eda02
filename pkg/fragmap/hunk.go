package fragmap

// HunkHeader is the header record of one diff hunk: the old-file range it
// replaced and the new-file range it produced. Fields mirror the
// `@@ -old_start,old_lines +new_start,new_lines @@` line of a textual diff.
type HunkHeader struct {
	OldStart uint32
	OldLines uint32
	NewStart uint32
	NewLines uint32
}

// OldSpan returns the half-open old-file range of the hunk. A pure insertion
// (OldLines == 0) yields an empty span positioned just after the line
// preceding the insertion.
func (h HunkHeader) OldSpan() Span {
	return headerSpan(h.OldStart, h.OldLines)
}

// NewSpan returns the half-open new-file range of the hunk. A pure deletion
// (NewLines == 0) yields an empty span.
func (h HunkHeader) NewSpan() Span {
	return headerSpan(h.NewStart, h.NewLines)
}

func headerSpan(start, lines uint32) Span {
	s := int64(start)
	if lines == 0 {
		s++
	}

	return Span{Start: s, End: s + int64(lines)}
}
