// Package gonumgraph exposes a snapshot of a core.Graph through gonum's
// graph interfaces, so gonum algorithms (path, topo, traverse, ...) can run
// on the same data.
//
// Vertex ids become gonum node ids. Parallel arcs collapse to the one with
// the minimum weight. Self-loops are omitted, and Weight(x, x) is 0 for every
// node as gonum's weighted graphs define it.
//
// The snapshot does not follow later mutations of the source graph.
package gonumgraph

import (
	"maps"
	"math"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/simplegraph/core"
)

var (
	_ graph.Directed = (*Graph)(nil)
	_ graph.Weighted = (*Graph)(nil)
)

// Graph is an immutable, weighted, directed gonum view of a core.Graph.
type Graph struct {
	nodes int
	from  map[int64]map[int64]float64 // u → v → min weight
	to    map[int64]map[int64]float64 // v → u → min weight
}

// New snapshots g. weightOf maps an edge payload to its gonum weight.
//
// Complexity: O(V + E) time and space.
func New[V, E any](g core.Graph[V, E], weightOf func(E) float64) *Graph {
	// Collect first: a locked source may not allow reads from inside the
	// visitor.
	var vs []core.Vertex[V]
	g.Traverse(func(v core.Vertex[V]) { vs = append(vs, v) })

	// Ids are dense, so the collected vertices are exactly ids [0, len(vs)).
	s := &Graph{
		nodes: len(vs),
		from:  make(map[int64]map[int64]float64),
		to:    make(map[int64]map[int64]float64),
	}
	for _, v := range vs {
		// Traverse only yields registered vertices.
		cs, _ := g.Connections(v)
		for _, c := range cs {
			u, w := int64(c.From.ID()), int64(c.To.ID())
			// Self-loops are dropped, as are arcs to vertices added after
			// the walk by a concurrent writer.
			if u == w || !s.has(w) {
				continue
			}
			s.set(u, w, weightOf(c.Edge))
		}
	}

	return s
}

// set records u→v with weight x unless a cheaper parallel arc is known.
func (s *Graph) set(u, v int64, x float64) {
	if old, ok := s.from[u][v]; ok && old <= x {
		return
	}
	if s.from[u] == nil {
		s.from[u] = make(map[int64]float64)
	}
	if s.to[v] == nil {
		s.to[v] = make(map[int64]float64)
	}
	s.from[u][v] = x
	s.to[v][u] = x
}

func (s *Graph) has(id int64) bool { return id >= 0 && id < int64(s.nodes) }

// Node returns the node with the given id, or nil.
func (s *Graph) Node(id int64) graph.Node {
	if !s.has(id) {
		return nil
	}

	return simple.Node(id)
}

// Nodes returns all nodes in id order.
func (s *Graph) Nodes() graph.Nodes {
	ns := make([]graph.Node, s.nodes)
	for i := range ns {
		ns[i] = simple.Node(i)
	}

	return iterator.NewOrderedNodes(ns)
}

// From returns the successors of id in id order.
func (s *Graph) From(id int64) graph.Nodes { return ordered(s.from[id]) }

// To returns the predecessors of id in id order.
func (s *Graph) To(id int64) graph.Nodes { return ordered(s.to[id]) }

func ordered(adj map[int64]float64) graph.Nodes {
	if len(adj) == 0 {
		return graph.Empty
	}
	ids := slices.Sorted(maps.Keys(adj))
	ns := make([]graph.Node, len(ids))
	for i, id := range ids {
		ns[i] = simple.Node(id)
	}

	return iterator.NewOrderedNodes(ns)
}

// HasEdgeBetween reports an arc in either direction.
func (s *Graph) HasEdgeBetween(xid, yid int64) bool {
	return s.HasEdgeFromTo(xid, yid) || s.HasEdgeFromTo(yid, xid)
}

// HasEdgeFromTo reports an arc uid→vid.
func (s *Graph) HasEdgeFromTo(uid, vid int64) bool {
	_, ok := s.from[uid][vid]
	return ok
}

// Edge returns the arc uid→vid, or nil.
func (s *Graph) Edge(uid, vid int64) graph.Edge {
	e := s.WeightedEdge(uid, vid)
	if e == nil {
		return nil
	}

	return e
}

// WeightedEdge returns the arc uid→vid with its weight, or nil.
func (s *Graph) WeightedEdge(uid, vid int64) graph.WeightedEdge {
	w, ok := s.from[uid][vid]
	if !ok {
		return nil
	}

	return simple.WeightedEdge{F: simple.Node(uid), T: simple.Node(vid), W: w}
}

// Weight returns the weight of xid→yid. It is 0 for xid == yid and +Inf
// with ok == false when no arc exists.
func (s *Graph) Weight(xid, yid int64) (w float64, ok bool) {
	if xid == yid && s.has(xid) {
		return 0, true
	}
	if w, ok := s.from[xid][yid]; ok {
		return w, true
	}

	return math.Inf(1), false
}
