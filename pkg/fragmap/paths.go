package fragmap

import (
	"slices"
	"strconv"
	"strings"
)

// Paths enumerates every Source → Sink path and keeps one representative per
// distinct activation: paths are keyed by the ordered (generation, new span)
// tuple of their active nodes, paths without any active node are dropped,
// and the survivors are ordered by that same tuple's (generation, start)
// projection. Enumeration order is deterministic because successors are
// visited in byNewSpan order.
func (g *Graph) Paths() [][]Node {
	var all [][]Node

	var walk func(node Node, trail []Node)

	walk = func(node Node, trail []Node) {
		trail = append(trail, node)

		if node == Sink {
			all = append(all, slices.Clone(trail))

			return
		}

		successors := slices.Clone(g.succ[node])
		slices.SortFunc(successors, byNewSpan)

		for _, s := range successors {
			walk(s, trail)
		}
	}

	walk(Source, nil)

	return dedupePaths(all)
}

// activeNodes projects a path onto its active nodes.
func activeNodes(path []Node) []Node {
	active := make([]Node, 0, len(path))

	for _, n := range path {
		if n.Active {
			active = append(active, n)
		}
	}

	return active
}

// activationKey renders a path's active (generation, new span) tuple as a
// stable dedup key.
func activationKey(active []Node) string {
	var b strings.Builder

	for _, n := range active {
		b.WriteString(strconv.FormatInt(int64(n.Generation), 10))
		b.WriteByte(':')
		b.WriteString(strconv.FormatInt(n.NewSpan.Start, 10))
		b.WriteByte(':')
		b.WriteString(strconv.FormatInt(n.NewSpan.End, 10))
		b.WriteByte(';')
	}

	return b.String()
}

// dedupePaths keeps the first path for each distinct activation key,
// dropping paths with no active nodes, then orders the survivors.
func dedupePaths(paths [][]Node) [][]Node {
	seen := make(map[string]struct{}, len(paths))
	kept := make([][]Node, 0, len(paths))

	for _, path := range paths {
		active := activeNodes(path)
		if len(active) == 0 {
			continue
		}

		key := activationKey(active)
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}

		kept = append(kept, path)
	}

	slices.SortFunc(kept, comparePathActivations)

	return kept
}

// comparePathActivations orders paths lexicographically by the
// (generation, new span start) sequence of their active nodes.
func comparePathActivations(a, b []Node) int {
	aa := activeNodes(a)
	bb := activeNodes(b)

	for i := 0; i < len(aa) && i < len(bb); i++ {
		if c := cmpInt64(int64(aa[i].Generation), int64(bb[i].Generation)); c != 0 {
			return c
		}

		if c := cmpInt64(aa[i].NewSpan.Start, bb[i].NewSpan.Start); c != 0 {
			return c
		}
	}

	return len(aa) - len(bb)
}
