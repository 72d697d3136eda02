package fragmap

import (
	"math"
	"slices"
)

// Node is a vertex in a per-file span propagation graph. Active nodes stand
// for a hunk applied by some commit; inactive nodes carry the surviving part
// of an earlier span forward through a commit that did not touch it. Nodes
// compare structurally over all four fields and serve as map keys.
type Node struct {
	Generation int32
	Active     bool
	OldSpan    Span
	NewSpan    Span
}

// Source is the sentinel every path starts from. Its new span covers the
// whole sentinel range so the first real nodes always find a predecessor.
var Source = Node{
	Generation: -1,
	OldSpan:    Span{Start: 1, End: 1},
	NewSpan:    Span{Start: 0, End: Sentinel},
}

// Sink is the sentinel every path ends in.
var Sink = Node{
	Generation: math.MaxInt32,
	OldSpan:    Span{Start: 0, End: Sentinel},
	NewSpan:    Span{Start: 1, End: 1},
}

// Graph is the span propagation graph for one file. It only ever grows,
// except that a node's edge to Sink is dropped the moment the node gains a
// real successor. Nodes whose successor list still holds Sink form the
// frontier: the candidates for linking the next commit's nodes.
type Graph struct {
	succ                 map[Node][]Node
	downstreamFromActive map[Node]bool
}

// NewGraph returns a graph holding only the Source → Sink edge.
func NewGraph() *Graph {
	return &Graph{
		succ:                 map[Node][]Node{Source: {Sink}},
		downstreamFromActive: map[Node]bool{Source: false},
	}
}

// byOldSpan orders nodes by (OldSpan.Start, NewSpan.Start, OldSpan.End,
// NewSpan.End); the linking order of a commit's new nodes.
func byOldSpan(a, b Node) int {
	if c := cmpInt64(a.OldSpan.Start, b.OldSpan.Start); c != 0 {
		return c
	}

	if c := cmpInt64(a.NewSpan.Start, b.NewSpan.Start); c != 0 {
		return c
	}

	if c := cmpInt64(a.OldSpan.End, b.OldSpan.End); c != 0 {
		return c
	}

	return cmpInt64(a.NewSpan.End, b.NewSpan.End)
}

// byNewSpan orders nodes by (NewSpan.Start, OldSpan.Start, NewSpan.End,
// OldSpan.End); the frontier snapshot and successor visit order.
func byNewSpan(a, b Node) int {
	if c := cmpInt64(a.NewSpan.Start, b.NewSpan.Start); c != 0 {
		return c
	}

	if c := cmpInt64(a.OldSpan.Start, b.OldSpan.Start); c != 0 {
		return c
	}

	if c := cmpInt64(a.NewSpan.End, b.NewSpan.End); c != 0 {
		return c
	}

	return cmpInt64(a.OldSpan.End, b.OldSpan.End)
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// frontier snapshots the nodes still connected to Sink, drops the ones whose
// new span is empty, and orders them deterministically.
func (g *Graph) frontier() []Node {
	nodes := make([]Node, 0, len(g.succ))

	for node, successors := range g.succ {
		if node.NewSpan.Empty() {
			continue
		}

		if slices.Contains(successors, Sink) {
			nodes = append(nodes, node)
		}
	}

	slices.SortFunc(nodes, byNewSpan)

	return nodes
}

// hasSinkEdge reports whether node still links directly to Sink.
func (g *Graph) hasSinkEdge(node Node) bool {
	return slices.Contains(g.succ[node], Sink)
}

// AddCommit grows the graph with one commit's hunks. gen is the commit's
// index in the global commit list; hunks must be in diff order (OldStart
// ascending).
func (g *Graph) AddCommit(gen int32, hunks []HunkHeader) {
	prev := g.frontier()

	allNew := make([]Node, 0, len(hunks)+len(prev))

	for _, h := range hunks {
		allNew = append(allNew, Node{
			Generation: gen,
			Active:     true,
			OldSpan:    h.OldSpan(),
			NewSpan:    h.NewSpan(),
		})
	}

	for _, p := range prev {
		for _, moved := range movedSpan(p.NewSpan, hunks) {
			allNew = append(allNew, Node{
				Generation: gen,
				Active:     false,
				OldSpan:    p.NewSpan,
				NewSpan:    moved,
			})
		}
	}

	slices.SortFunc(allNew, byOldSpan)

	for _, cur := range allNew {
		g.addOnTopOf(prev, cur)
	}

	// A frontier node none of the new nodes attached to would fall out of
	// the graph's reach; carry it through this generation unchanged.
	for _, p := range prev {
		if !g.hasSinkEdge(p) {
			continue
		}

		carry := Node{
			Generation: gen,
			Active:     false,
			OldSpan:    p.NewSpan,
			NewSpan:    p.NewSpan,
		}

		g.register(p, carry)
		g.register(carry, Sink)
	}
}

// onBorder reports whether r shares a start or end coordinate with s.
func onBorder(r, s Span) bool {
	return r.Start == s.Start || r.End == s.End
}

// addOnTopOf links cur under the frontier snapshot using the overlap
// priority cascade. Level 1 registers every interval overlap; each later
// level registers at most one edge, which bounds the path count on files
// with many near-adjacent hunks. cur always gains an edge to Sink, joining
// the frontier itself.
func (g *Graph) addOnTopOf(prev []Node, cur Node) {
	r := cur.OldSpan

	registered := false

	// Level 1: every interval overlap.
	for _, p := range prev {
		if Overlaps(r, p.NewSpan) == OverlapInterval {
			g.register(p, cur)

			registered = true
		}
	}

	// Level 2: first overlap, skipping point contacts on a shared border
	// with anything already downstream of an active node.
	if !registered {
		registered = g.linkFirst(prev, cur, func(p Node, ov Overlap) bool {
			return ov == OverlapPoint && onBorder(r, p.NewSpan) && g.downstreamFromActive[p]
		})
	}

	// Level 3: same, but only skipping borders of active nodes themselves.
	if !registered {
		registered = g.linkFirst(prev, cur, func(p Node, ov Overlap) bool {
			return ov == OverlapPoint && onBorder(r, p.NewSpan) && p.Active
		})
	}

	// Level 4: first overlapping inactive node.
	if !registered {
		registered = g.linkFirst(prev, cur, func(p Node, _ Overlap) bool {
			return p.Active
		})
	}

	// Level 5: first overlap of any kind.
	if !registered {
		g.linkFirst(prev, cur, func(_ Node, _ Overlap) bool {
			return false
		})
	}

	// A node no level could place is an internal invariant violation; it
	// still joins the frontier through its Sink edge.
	g.register(cur, Sink)
}

// linkFirst registers cur under the first frontier node whose new span
// overlaps cur's old span and that skip does not exclude. Reports whether an
// edge was made.
func (g *Graph) linkFirst(prev []Node, cur Node, skip func(Node, Overlap) bool) bool {
	for _, p := range prev {
		ov := Overlaps(cur.OldSpan, p.NewSpan)
		if ov == OverlapNone || skip(p, ov) {
			continue
		}

		g.register(p, cur)

		return true
	}

	return false
}

// register adds the edge from → to, displacing from's Sink edge, and folds
// the downstream-from-active mark forward.
func (g *Graph) register(from, to Node) {
	successors := g.succ[from]

	kept := successors[:0]

	for _, s := range successors {
		if s != Sink {
			kept = append(kept, s)
		}
	}

	g.succ[from] = append(kept, to)

	if _, ok := g.downstreamFromActive[from]; !ok {
		g.downstreamFromActive[from] = from.Active
	}

	if downstream, ok := g.downstreamFromActive[to]; ok {
		g.downstreamFromActive[to] = downstream || g.downstreamFromActive[from]
	} else {
		g.downstreamFromActive[to] = to.Active || g.downstreamFromActive[from]
	}
}
