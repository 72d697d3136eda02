package fragmap

// DeltaStatus mirrors the per-file change status reported by the diff
// source. Only the presence of the old and new paths influences the matrix
// touch kinds; the status is carried for adapters and consumers.
type DeltaStatus int

const (
	// StatusUnmodified means the file did not change.
	StatusUnmodified DeltaStatus = iota
	// StatusAdded means the file was created.
	StatusAdded
	// StatusDeleted means the file was removed.
	StatusDeleted
	// StatusModified means the file content changed in place.
	StatusModified
	// StatusRenamed means the file moved; treated as a modification.
	StatusRenamed
	// StatusCopied means the file was duplicated; treated as a modification.
	StatusCopied
	// StatusTypechange means the file mode or type changed.
	StatusTypechange
)

// FileDelta is one file's contribution to a commit: the change status, the
// paths on either side (empty string when absent), and the hunk headers in
// diff order. A delta with an empty NewPath contributes no spans; hunks with
// NewLines == 0 still enter the propagation graph through their old span.
type FileDelta struct {
	Status  DeltaStatus
	OldPath string
	NewPath string
	Hunks   []HunkHeader
}

// CommitInput is one commit's contribution to the stream: a stable
// identifier and the file deltas in diff order. Commits are supplied oldest
// to newest; several deltas naming the same new path within one commit have
// their hunks concatenated in order.
type CommitInput struct {
	OID   string
	Files []FileDelta
}
