package fragmap

import (
	"slices"
)

// Options controls fragmap assembly.
type Options struct {
	// Brief collapses clusters with identical commit signatures across all
	// files, matching the original fragmap's brief rendering. The zero value
	// keeps every per-file cluster.
	Brief bool
}

// Build assembles the fragmap for a commit stream, oldest first. The commit
// order is authoritative; every derived ordering is a deterministic function
// of it, so identical input produces a structurally identical FragMap.
func Build(commits []CommitInput, opts Options) *FragMap {
	byFile := groupByFile(commits)

	paths := make([]string, 0, len(byFile))
	for path := range byFile {
		paths = append(paths, path)
	}

	slices.Sort(paths)

	var clusters []SpanCluster

	for _, path := range paths {
		clusters = append(clusters, clustersForFile(path, commits, byFile[path])...)
	}

	if opts.Brief {
		clusters = briefDedupe(clusters)
	}

	oids := make([]string, len(commits))
	for i, c := range commits {
		oids[i] = c.OID
	}

	return &FragMap{
		Commits:  oids,
		Clusters: clusters,
		Matrix:   fillMatrix(commits, clusters),
	}
}

// groupByFile collects each file's touching generations in commit order.
// Spans live in new-file coordinates, so deltas without a new path drop out;
// several deltas for one path inside a commit concatenate their hunks.
func groupByFile(commits []CommitInput) map[string][]fileGeneration {
	byFile := make(map[string][]fileGeneration)

	for i, commit := range commits {
		gen := int32(i)

		for _, file := range commit.Files {
			if file.NewPath == "" || len(file.Hunks) == 0 {
				continue
			}

			generations := byFile[file.NewPath]

			if n := len(generations); n > 0 && generations[n-1].generation == gen {
				generations[n-1].hunks = append(generations[n-1].hunks, file.Hunks...)
			} else {
				generations = append(generations, fileGeneration{
					generation: gen,
					hunks:      slices.Clone(file.Hunks),
				})
			}

			byFile[file.NewPath] = generations
		}
	}

	return byFile
}
