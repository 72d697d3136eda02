package fragmap

// Forward-mapping kernel: pure functions that push a historical span through
// one commit's hunks into the post-commit coordinate system. Only the parts
// of the span that survive every hunk ("overhangs") are reported.

// mapStart maps a span start position forward through hunks, which must be
// sorted by OldStart ascending. The position must lie outside every hunk's
// old range; splitSpan guarantees that for movedSpan callers.
func mapStart(line int64, hunks []HunkHeader) int64 {
	var refOld, refNew int64

	for _, h := range hunks {
		if line < h.OldSpan().End {
			break
		}

		refOld = h.OldSpan().End
		refNew = h.NewSpan().End
	}

	return line - refOld + refNew
}

// mapEnd maps an exclusive span end forward through hunks. The boundary that
// actually needs mapping sits at line-1, so the stopping test shifts by one.
func mapEnd(line int64, hunks []HunkHeader) int64 {
	var refOld, refNew int64

	for _, h := range hunks {
		if line-1 < h.OldSpan().End {
			break
		}

		refOld = h.OldSpan().End
		refNew = h.NewSpan().End
	}

	return line - refOld + refNew
}

// splitSpan removes every hunk's old range from the working set, keeping the
// pieces of span that no hunk replaced.
func splitSpan(span Span, hunks []HunkHeader) []Span {
	work := []Span{span}

	for _, h := range hunks {
		lo := h.OldSpan().Start
		hi := h.OldSpan().End

		next := make([]Span, 0, len(work))

		for _, w := range work {
			if w.End <= lo || w.Start >= hi {
				next = append(next, w)

				continue
			}

			if w.Start < lo {
				next = append(next, Span{Start: w.Start, End: lo})
			}

			if w.End > hi {
				next = append(next, Span{Start: hi, End: w.End})
			}
		}

		work = next
	}

	return work
}

// movedSpan maps span through one commit's hunks (sorted by OldStart
// ascending): the span is split around every hunk's old range and the
// surviving pieces are translated to post-commit coordinates. An empty input
// span yields nothing, as do pieces that collapse during translation.
func movedSpan(span Span, hunks []HunkHeader) []Span {
	if span.Empty() {
		return nil
	}

	survivors := splitSpan(span, hunks)

	moved := make([]Span, 0, len(survivors))

	for _, s := range survivors {
		if s.Empty() {
			continue
		}

		m := Span{Start: mapStart(s.Start, hunks), End: mapEnd(s.End, hunks)}
		if !m.Empty() {
			moved = append(moved, m)
		}
	}

	return moved
}
