package gitlib

import (
	"fmt"

	git2go "github.com/libgit2/git2go/v34"
)

// HunkRange is one hunk's header: the old-file range it replaced and the
// new-file range it produced.
type HunkRange struct {
	OldStart int
	OldLines int
	NewStart int
	NewLines int
}

// FileDelta is one file's change inside a diff, with its hunk headers in
// diff order. OldPath is empty for added files and NewPath is empty for
// deleted files, regardless of what libgit2 reports on the missing side.
type FileDelta struct {
	Status  git2go.Delta
	OldPath string
	NewPath string
	Hunks   []HunkRange
}

// Diff wraps a libgit2 diff.
type Diff struct {
	diff *git2go.Diff
}

// FileDeltas walks the diff once and collects every delta with its hunk
// headers.
func (d *Diff) FileDeltas() ([]FileDelta, error) {
	var deltas []FileDelta

	fileCallback := func(delta git2go.DiffDelta, _ float64) (git2go.DiffForEachHunkCallback, error) {
		oldPath := delta.OldFile.Path
		newPath := delta.NewFile.Path

		// libgit2 fills both sides' paths even when one side does not
		// exist; the status is authoritative for presence.
		switch delta.Status {
		case git2go.DeltaAdded:
			oldPath = ""
		case git2go.DeltaDeleted:
			newPath = ""
		default:
		}

		deltas = append(deltas, FileDelta{
			Status:  delta.Status,
			OldPath: oldPath,
			NewPath: newPath,
		})

		idx := len(deltas) - 1

		hunkCallback := func(hunk git2go.DiffHunk) (git2go.DiffForEachLineCallback, error) {
			deltas[idx].Hunks = append(deltas[idx].Hunks, HunkRange{
				OldStart: hunk.OldStart,
				OldLines: hunk.OldLines,
				NewStart: hunk.NewStart,
				NewLines: hunk.NewLines,
			})

			return nil, nil
		}

		return hunkCallback, nil
	}

	err := d.diff.ForEach(fileCallback, git2go.DiffDetailHunks)
	if err != nil {
		return nil, fmt.Errorf("diff foreach: %w", err)
	}

	return deltas, nil
}

// Free releases the diff resources.
func (d *Diff) Free() {
	if d.diff == nil {
		return
	}

	err := d.diff.Free()
	d.diff = nil
	// Consume error - Free() errors are non-actionable in cleanup.
	if err != nil {
		return
	}
}
