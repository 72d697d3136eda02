package fragmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSpans_SingleCommit verifies per-hunk span extraction in the commit's
// own coordinates.
func TestSpans_SingleCommit(t *testing.T) {
	t.Parallel()

	commit := CommitInput{OID: "c1", Files: []FileDelta{
		modifiedDelta("a.go",
			HunkHeader{OldStart: 3, OldLines: 2, NewStart: 3, NewLines: 4},
			HunkHeader{OldStart: 50, OldLines: 3, NewStart: 52, NewLines: 0},
		),
		{Status: StatusDeleted, OldPath: "gone.go", Hunks: []HunkHeader{
			{OldStart: 1, OldLines: 9, NewStart: 0, NewLines: 0},
		}},
	}}

	spans := Spans(commit)

	// The pure deletion and the deleted file contribute nothing.
	require.Len(t, spans, 1)
	assert.Equal(t, FileSpan{Path: "a.go", StartLine: 3, EndLine: 6}, spans[0])
}

// TestPropagatedSpans_ShiftsThroughLaterCommits verifies that an early span
// lands in final-version coordinates.
func TestPropagatedSpans_ShiftsThroughLaterCommits(t *testing.T) {
	t.Parallel()

	commits := []CommitInput{
		{OID: "c1", Files: []FileDelta{
			modifiedDelta("a.go", HunkHeader{OldStart: 20, OldLines: 5, NewStart: 20, NewLines: 5}),
		}},
		// Insert 10 lines at line 5: c1's region shifts down.
		{OID: "c2", Files: []FileDelta{
			modifiedDelta("a.go", HunkHeader{OldStart: 5, OldLines: 0, NewStart: 5, NewLines: 10}),
		}},
	}

	spans := PropagatedSpans(commits)

	// The insertion's reference point is its empty old span at [6, 6), so
	// trailing lines shift by newEnd-oldEnd = 9.
	require.Len(t, spans, 2)
	require.Len(t, spans[0], 1)
	assert.Equal(t, FileSpan{Path: "a.go", StartLine: 29, EndLine: 33}, spans[0][0])

	require.Len(t, spans[1], 1)
	assert.Equal(t, FileSpan{Path: "a.go", StartLine: 5, EndLine: 14}, spans[1][0])
}

// TestPropagatedSpans_OverwrittenRegionDisappears verifies that a region a
// later commit fully replaces leaves no propagated span.
func TestPropagatedSpans_OverwrittenRegionDisappears(t *testing.T) {
	t.Parallel()

	commits := []CommitInput{
		{OID: "c1", Files: []FileDelta{
			modifiedDelta("a.go", HunkHeader{OldStart: 10, OldLines: 3, NewStart: 10, NewLines: 3}),
		}},
		{OID: "c2", Files: []FileDelta{
			modifiedDelta("a.go", HunkHeader{OldStart: 8, OldLines: 8, NewStart: 8, NewLines: 2}),
		}},
	}

	spans := PropagatedSpans(commits)

	assert.Empty(t, spans[0])
	require.Len(t, spans[1], 1)
}

// TestPropagatedSpans_IndependentFiles verifies that propagation never
// crosses file boundaries.
func TestPropagatedSpans_IndependentFiles(t *testing.T) {
	t.Parallel()

	commits := []CommitInput{
		{OID: "c1", Files: []FileDelta{
			modifiedDelta("a.go", HunkHeader{OldStart: 10, OldLines: 2, NewStart: 10, NewLines: 2}),
		}},
		{OID: "c2", Files: []FileDelta{
			modifiedDelta("b.go", HunkHeader{OldStart: 1, OldLines: 50, NewStart: 1, NewLines: 1}),
		}},
	}

	spans := PropagatedSpans(commits)

	require.Len(t, spans[0], 1)
	assert.Equal(t, FileSpan{Path: "a.go", StartLine: 10, EndLine: 11}, spans[0][0])
}
