// Package history turns a repository's first-parent commit range into the
// fragmap core's input stream: commit identifiers plus zero-context hunk
// headers per file.
package history

import (
	"fmt"
	"log/slog"

	git2go "github.com/libgit2/git2go/v34"

	"github.com/Sumatoshi-tech/fragmap/pkg/fragmap"
	"github.com/Sumatoshi-tech/fragmap/pkg/gitlib"
	"github.com/Sumatoshi-tech/fragmap/pkg/safeconv"
)

// CommitMeta carries the display metadata of one analyzed commit.
type CommitMeta struct {
	OID     string
	Summary string
	Author  string
}

// Collection is the ordered commit range with its extracted diffs, oldest
// first.
type Collection struct {
	Commits []CommitMeta
	Inputs  []fragmap.CommitInput
}

// ReferencePoint resolves commitish and returns the merge base between it
// and HEAD: the last commit that stays untouched by any squash or split.
func ReferencePoint(repo *gitlib.Repository, commitish string) (gitlib.Hash, error) {
	target, err := repo.RevparseSingle(commitish)
	if err != nil {
		return gitlib.Hash{}, err
	}

	head, err := repo.Head()
	if err != nil {
		return gitlib.Hash{}, err
	}

	return repo.MergeBase(head, target)
}

// Collect lists the first-parent commits from HEAD back to (excluding) the
// reference point, oldest first, and extracts each one's zero-context diff.
// Merge commits are skipped: the fragmap analyzes a linear history.
func Collect(repo *gitlib.Repository, reference gitlib.Hash) (*Collection, error) {
	hashes, err := listRange(repo, reference)
	if err != nil {
		return nil, err
	}

	collection := &Collection{
		Commits: make([]CommitMeta, 0, len(hashes)),
		Inputs:  make([]fragmap.CommitInput, 0, len(hashes)),
	}

	for _, hash := range hashes {
		commit, lookupErr := repo.LookupCommit(hash)
		if lookupErr != nil {
			return nil, lookupErr
		}

		if commit.NumParents() > 1 {
			slog.Debug("skipping merge commit", "oid", hash.String())
			commit.Free()

			continue
		}

		input, diffErr := commitInput(repo, commit)
		if diffErr != nil {
			commit.Free()

			return nil, diffErr
		}

		collection.Commits = append(collection.Commits, CommitMeta{
			OID:     hash.String(),
			Summary: commit.Summary(),
			Author:  commit.Author().Name,
		})
		collection.Inputs = append(collection.Inputs, input)

		commit.Free()
	}

	return collection, nil
}

// listRange walks first-parent history from HEAD down to reference and
// returns the hashes oldest first, with the reference itself excluded.
func listRange(repo *gitlib.Repository, reference gitlib.Hash) ([]gitlib.Hash, error) {
	head, err := repo.Head()
	if err != nil {
		return nil, err
	}

	walk, err := repo.Walk()
	if err != nil {
		return nil, err
	}
	defer walk.Free()

	walk.Sorting(git2go.SortTopological)
	walk.SimplifyFirstParent()

	if err := walk.Push(head); err != nil {
		return nil, err
	}

	var hashes []gitlib.Hash

	for {
		hash, nextErr := walk.Next()
		if nextErr != nil {
			// libgit2 signals iteration end through ErrIterOver; any other
			// termination also ends the history here.
			break
		}

		if hash == reference {
			break
		}

		hashes = append(hashes, hash)
	}

	// The walk runs newest to oldest; the fragmap wants the opposite.
	for i, j := 0, len(hashes)-1; i < j; i, j = i+1, j-1 {
		hashes[i], hashes[j] = hashes[j], hashes[i]
	}

	return hashes, nil
}

// commitInput extracts one commit's zero-context diff against its first
// parent, or against the empty tree for a root commit.
func commitInput(repo *gitlib.Repository, commit *gitlib.Commit) (fragmap.CommitInput, error) {
	newTree, err := commit.Tree()
	if err != nil {
		return fragmap.CommitInput{}, err
	}
	defer newTree.Free()

	var oldTree *gitlib.Tree

	if commit.NumParents() > 0 {
		parent, parentErr := commit.Parent(0)
		if parentErr != nil {
			return fragmap.CommitInput{}, parentErr
		}
		defer parent.Free()

		oldTree, err = parent.Tree()
		if err != nil {
			return fragmap.CommitInput{}, err
		}
		defer oldTree.Free()
	}

	diff, err := repo.DiffTreeToTree(oldTree, newTree)
	if err != nil {
		return fragmap.CommitInput{}, err
	}
	defer diff.Free()

	deltas, err := diff.FileDeltas()
	if err != nil {
		return fragmap.CommitInput{}, fmt.Errorf("extract deltas for %s: %w", commit.Hash(), err)
	}

	input := fragmap.CommitInput{OID: commit.Hash().String()}

	for _, delta := range deltas {
		file := fragmap.FileDelta{
			Status:  deltaStatus(delta.Status),
			OldPath: delta.OldPath,
			NewPath: delta.NewPath,
			Hunks:   make([]fragmap.HunkHeader, 0, len(delta.Hunks)),
		}

		for _, h := range delta.Hunks {
			file.Hunks = append(file.Hunks, fragmap.HunkHeader{
				OldStart: safeconv.MustIntToUint32(h.OldStart),
				OldLines: safeconv.MustIntToUint32(h.OldLines),
				NewStart: safeconv.MustIntToUint32(h.NewStart),
				NewLines: safeconv.MustIntToUint32(h.NewLines),
			})
		}

		input.Files = append(input.Files, file)
	}

	return input, nil
}

// deltaStatus maps libgit2 delta statuses onto the fragmap model.
func deltaStatus(status git2go.Delta) fragmap.DeltaStatus {
	switch status {
	case git2go.DeltaAdded:
		return fragmap.StatusAdded
	case git2go.DeltaDeleted:
		return fragmap.StatusDeleted
	case git2go.DeltaRenamed:
		return fragmap.StatusRenamed
	case git2go.DeltaCopied:
		return fragmap.StatusCopied
	case git2go.DeltaTypeChange:
		return fragmap.StatusTypechange
	case git2go.DeltaModified:
		return fragmap.StatusModified
	default:
		return fragmap.StatusUnmodified
	}
}
