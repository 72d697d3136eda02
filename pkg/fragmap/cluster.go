package fragmap

import (
	"slices"
	"strings"
)

// FileSpan is a user-facing inclusive line range inside one file, expressed
// in the coordinates of the file after all commits were applied.
type FileSpan struct {
	Path      string
	StartLine int64
	EndLine   int64
}

// SpanCluster is one fragmap column: a code region and the commits that
// touch it. Spans currently holds a single FileSpan.
type SpanCluster struct {
	Spans      []FileSpan
	CommitOIDs []string
}

// clustersForFile runs the propagation graph for one file and converts each
// surviving path into a cluster. commits supply the OID for a node's
// generation; fileCommits pairs each generation touching this file with its
// hunks, oldest first.
func clustersForFile(path string, commits []CommitInput, fileCommits []fileGeneration) []SpanCluster {
	graph := NewGraph()

	for _, fc := range fileCommits {
		graph.AddCommit(fc.generation, fc.hunks)
	}

	paths := graph.Paths()

	clusters := make([]SpanCluster, 0, len(paths))

	for _, p := range paths {
		active := activeNodes(p)

		oids := make([]string, 0, len(active))

		for _, n := range active {
			oid := commits[n.Generation].OID
			if !slices.Contains(oids, oid) {
				oids = append(oids, oid)
			}
		}

		last := active[len(active)-1]

		clusters = append(clusters, SpanCluster{
			Spans: []FileSpan{{
				Path:      path,
				StartLine: max(1, last.NewSpan.Start),
				EndLine:   max(1, last.NewSpan.End-1),
			}},
			CommitOIDs: oids,
		})
	}

	return clusters
}

// fileGeneration is one commit's hunks for a single file, tagged with the
// commit's global index.
type fileGeneration struct {
	generation int32
	hunks      []HunkHeader
}

// briefDedupe collapses clusters whose commit signature is identical: each
// cluster's OID list is sorted, and only the first cluster per distinct
// signature survives. Running it twice is a no-op.
func briefDedupe(clusters []SpanCluster) []SpanCluster {
	seen := make(map[string]struct{}, len(clusters))
	kept := make([]SpanCluster, 0, len(clusters))

	for i := range clusters {
		slices.Sort(clusters[i].CommitOIDs)

		key := strings.Join(clusters[i].CommitOIDs, "\x00")
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}

		kept = append(kept, clusters[i])
	}

	return kept
}
