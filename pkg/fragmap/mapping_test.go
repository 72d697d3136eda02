package fragmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMapStart_BeforeAndAfterHunk verifies the reference-point walk.
func TestMapStart_BeforeAndAfterHunk(t *testing.T) {
	t.Parallel()

	// Replace lines 10-14 with 10 lines: everything past the hunk shifts +5.
	hunks := []HunkHeader{{OldStart: 10, OldLines: 5, NewStart: 10, NewLines: 10}}

	assert.Equal(t, int64(3), mapStart(3, hunks))
	assert.Equal(t, int64(20), mapStart(15, hunks))
	assert.Equal(t, int64(105), mapStart(100, hunks))
}

// TestMapEnd_ExclusiveBoundary verifies that the exclusive end maps by its
// predecessor line.
func TestMapEnd_ExclusiveBoundary(t *testing.T) {
	t.Parallel()

	hunks := []HunkHeader{{OldStart: 10, OldLines: 5, NewStart: 10, NewLines: 10}}

	// End 15 means last line 14, inside nothing past the hunk start: the
	// boundary at 14 is still before old end 15, so no shift applies.
	assert.Equal(t, int64(15), mapEnd(15, hunks))
	// End 16 means last line 15, past the hunk: shifted by +5.
	assert.Equal(t, int64(21), mapEnd(16, hunks))
}

// TestMovedSpan_EmptyInput returns nothing for an empty span.
func TestMovedSpan_EmptyInput(t *testing.T) {
	t.Parallel()

	hunks := []HunkHeader{{OldStart: 1, OldLines: 2, NewStart: 1, NewLines: 2}}

	assert.Empty(t, movedSpan(Span{Start: 4, End: 4}, hunks))
}

// TestMovedSpan_Disjoint verifies the trivial round-trip: a span no hunk
// touches maps to exactly its boundary-mapped image.
func TestMovedSpan_Disjoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		span  Span
		hunks []HunkHeader
		want  Span
	}{
		{
			name:  "before the hunk",
			span:  Span{Start: 1, End: 5},
			hunks: []HunkHeader{{OldStart: 10, OldLines: 5, NewStart: 10, NewLines: 8}},
			want:  Span{Start: 1, End: 5},
		},
		{
			name:  "after a growing hunk",
			span:  Span{Start: 20, End: 30},
			hunks: []HunkHeader{{OldStart: 10, OldLines: 5, NewStart: 10, NewLines: 8}},
			want:  Span{Start: 23, End: 33},
		},
		{
			name: "between two hunks",
			span: Span{Start: 20, End: 25},
			hunks: []HunkHeader{
				{OldStart: 1, OldLines: 5, NewStart: 1, NewLines: 2},
				{OldStart: 40, OldLines: 3, NewStart: 37, NewLines: 3},
			},
			want: Span{Start: 17, End: 22},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			moved := movedSpan(tc.span, tc.hunks)
			require.Len(t, moved, 1)
			assert.Equal(t, tc.want, moved[0])
			assert.Equal(t, mapStart(tc.span.Start, tc.hunks), moved[0].Start)
			assert.Equal(t, mapEnd(tc.span.End, tc.hunks), moved[0].End)
		})
	}
}

// TestMovedSpan_SplitAroundHunk verifies overhang splitting: a span covering
// a hunk survives as the pieces on either side.
func TestMovedSpan_SplitAroundHunk(t *testing.T) {
	t.Parallel()

	// Span [5, 15) over a hunk replacing [7, 10) with [7, 10).
	hunks := []HunkHeader{{OldStart: 7, OldLines: 3, NewStart: 7, NewLines: 3}}

	moved := movedSpan(Span{Start: 5, End: 15}, hunks)
	require.Len(t, moved, 2)
	assert.Equal(t, Span{Start: 5, End: 7}, moved[0])
	assert.Equal(t, Span{Start: 10, End: 15}, moved[1])
}

// TestMovedSpan_FullyCovered verifies that a span a hunk swallows whole
// produces nothing.
func TestMovedSpan_FullyCovered(t *testing.T) {
	t.Parallel()

	hunks := []HunkHeader{{OldStart: 1, OldLines: 20, NewStart: 1, NewLines: 4}}

	assert.Empty(t, movedSpan(Span{Start: 5, End: 10}, hunks))
}

// TestMovedSpan_InsertionSplitsSpan verifies that a pure insertion splits a
// crossing span at the insertion point and shifts its tail.
func TestMovedSpan_InsertionSplitsSpan(t *testing.T) {
	t.Parallel()

	// Insert 10 lines at line 5: old span is the empty [6, 6).
	hunks := []HunkHeader{{OldStart: 5, OldLines: 0, NewStart: 5, NewLines: 10}}

	moved := movedSpan(Span{Start: 3, End: 9}, hunks)
	require.Len(t, moved, 2)
	assert.Equal(t, Span{Start: 3, End: 6}, moved[0])
	assert.Equal(t, Span{Start: 15, End: 18}, moved[1])
}

// TestMovedSpan_DeletionShrinks verifies shrink across a deleting hunk.
func TestMovedSpan_DeletionShrinks(t *testing.T) {
	t.Parallel()

	// Delete lines 10-12: the deletion point's empty new span ends at 11,
	// so trailing positions shift back relative to the old end 13.
	hunks := []HunkHeader{{OldStart: 10, OldLines: 3, NewStart: 10, NewLines: 0}}

	moved := movedSpan(Span{Start: 20, End: 25}, hunks)
	require.Len(t, moved, 1)
	assert.Equal(t, Span{Start: 18, End: 23}, moved[0])
}
