package fragmap

import "slices"

// Spans extracts one FileSpan per hunk of a single commit, in the commit's
// own new-file coordinates. Pure deletions produce no span. Useful for
// inspecting a commit in isolation; Build performs the propagated variant.
func Spans(commit CommitInput) []FileSpan {
	var spans []FileSpan

	for _, file := range commit.Files {
		if file.NewPath == "" {
			continue
		}

		for _, h := range file.Hunks {
			if h.NewLines == 0 {
				continue
			}

			spans = append(spans, FileSpan{
				Path:      file.NewPath,
				StartLine: int64(h.NewStart),
				EndLine:   int64(h.NewStart) + int64(h.NewLines) - 1,
			})
		}
	}

	return spans
}

// PropagatedSpans extracts every commit's hunk spans pushed forward through
// all later commits that touch the same file, so each returned span is
// expressed in the final file version's coordinates. The outer slice is
// indexed like commits.
func PropagatedSpans(commits []CommitInput) [][]FileSpan {
	byFile := groupByFile(commits)

	paths := make([]string, 0, len(byFile))
	for path := range byFile {
		paths = append(paths, path)
	}

	slices.Sort(paths)

	result := make([][]FileSpan, len(commits))

	for _, path := range paths {
		generations := byFile[path]
		for gi, fc := range generations {
			for _, h := range fc.hunks {
				if h.NewLines == 0 {
					continue
				}

				spans := []Span{h.NewSpan()}

				for _, later := range generations[gi+1:] {
					var next []Span
					for _, s := range spans {
						next = append(next, movedSpan(s, later.hunks)...)
					}

					spans = next
				}

				for _, s := range spans {
					if s.Empty() {
						continue
					}

					result[fc.generation] = append(result[fc.generation], FileSpan{
						Path:      path,
						StartLine: s.Start,
						EndLine:   s.End - 1,
					})
				}
			}
		}
	}

	return result
}
