package fragmap

import "slices"

// TouchKind classifies how one commit interacts with one cluster.
type TouchKind int

const (
	// TouchNone means the commit does not touch the cluster.
	TouchNone TouchKind = iota
	// TouchAdded means the commit created the cluster's file.
	TouchAdded
	// TouchModified means the commit changed the cluster's file with both
	// the old and the new path present (renames and copies included).
	TouchModified
	// TouchDeleted means the commit removed the cluster's file.
	TouchDeleted
)

// SquashRelation describes whether two commits touching a cluster can be
// squashed across the commits between them.
type SquashRelation int

const (
	// NoRelation means the pair does not both touch the cluster.
	NoRelation SquashRelation = iota
	// Squashable means no commit between the pair touches the cluster.
	Squashable
	// Conflicting means at least one intervening commit touches the cluster.
	Conflicting
)

// FragMap is the commits-by-clusters fragmentation map. Commits run oldest
// to newest; Matrix has one row per commit and one column per cluster.
// Immutable once built.
type FragMap struct {
	Commits  []string
	Clusters []SpanCluster
	Matrix   [][]TouchKind
}

// touchKind classifies how commit touches cluster by matching the cluster's
// spans against the commit's file deltas. The first delta naming a span's
// path decides; path presence on either side picks the kind.
func touchKind(commit CommitInput, cluster SpanCluster) TouchKind {
	for _, span := range cluster.Spans {
		for _, file := range commit.Files {
			if file.NewPath != span.Path && file.OldPath != span.Path {
				continue
			}

			switch {
			case file.OldPath == "" && file.NewPath != "":
				return TouchAdded
			case file.OldPath != "" && file.NewPath == "":
				return TouchDeleted
			default:
				return TouchModified
			}
		}
	}

	return TouchNone
}

// fillMatrix builds the touch-kind matrix for commits against clusters.
func fillMatrix(commits []CommitInput, clusters []SpanCluster) [][]TouchKind {
	matrix := make([][]TouchKind, len(commits))

	for i := range commits {
		matrix[i] = make([]TouchKind, len(clusters))

		for j := range clusters {
			if !slices.Contains(clusters[j].CommitOIDs, commits[i].OID) {
				continue
			}

			matrix[i][j] = touchKind(commits[i], clusters[j])
		}
	}

	return matrix
}

// ClusterRelation reports the squash relation between the commits at rows
// earlier and later over one cluster column. Out-of-range indices, a
// reversed pair, or an untouched cell yield NoRelation.
func (f *FragMap) ClusterRelation(earlier, later, cluster int) SquashRelation {
	if earlier < 0 || later >= len(f.Commits) || cluster < 0 || cluster >= len(f.Clusters) {
		return NoRelation
	}

	if earlier >= later {
		return NoRelation
	}

	if f.Matrix[earlier][cluster] == TouchNone || f.Matrix[later][cluster] == TouchNone {
		return NoRelation
	}

	for k := earlier + 1; k < later; k++ {
		if f.Matrix[k][cluster] != TouchNone {
			return Conflicting
		}
	}

	return Squashable
}

// SquashTarget returns the row index of the single earlier commit that the
// commit at row i may be squashed into, or -1 when no such commit exists:
// every cluster the commit touches must have the same nearest earlier
// toucher, with nothing touching those clusters in between.
func (f *FragMap) SquashTarget(i int) int {
	if i < 0 || i >= len(f.Commits) {
		return -1
	}

	target := -1
	touched := false

	for c := range f.Clusters {
		if f.Matrix[i][c] == TouchNone {
			continue
		}

		touched = true

		earlier := -1

		for e := i - 1; e >= 0; e-- {
			if f.Matrix[e][c] != TouchNone {
				earlier = e

				break
			}
		}

		if earlier < 0 {
			return -1
		}

		if f.ClusterRelation(earlier, i, c) != Squashable {
			return -1
		}

		if target >= 0 && target != earlier {
			return -1
		}

		target = earlier
	}

	if !touched {
		return -1
	}

	return target
}

// SharesClusterWith reports whether two distinct commits touch a common
// cluster.
func (f *FragMap) SharesClusterWith(a, b int) bool {
	if a == b || a < 0 || b < 0 || a >= len(f.Commits) || b >= len(f.Commits) {
		return false
	}

	for c := range f.Clusters {
		if f.Matrix[a][c] != TouchNone && f.Matrix[b][c] != TouchNone {
			return true
		}
	}

	return false
}
