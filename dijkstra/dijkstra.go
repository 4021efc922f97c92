// Package dijkstra implements Dijkstra's shortest-path search on graphs whose
// edge payloads implement weight.Weighted.
//
// The search is generic over the weight value type T. Running costs are kept
// as distance.Distance values, so "not reached" (Unknown) always sorts after
// every real cost and the source (Zero) before every real cost, without
// sentinel numbers such as math.MaxInt64.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is finalized at most once.
//   - Each successful relaxation pushes one frontier entry (lazy decrease-key).
//   - Space: O(V + E) for the distance and predecessor maps and the frontier.
//
// Tie-break:
//
//	Entries with equal distance leave the frontier in push order. Pushes follow
//	each vertex's connection order, so results are deterministic for a given
//	build sequence.
package dijkstra

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
	pq "github.com/emirpasic/gods/queues/priorityqueue"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/simplegraph/core"
	"github.com/katalvlaran/simplegraph/distance"
	"github.com/katalvlaran/simplegraph/weight"
)

// Search finds cost-optimal paths. E is the edge payload and T the weight
// value type it reports.
type Search[V any, E weight.Weighted[T], T constraints.Ordered] struct {
	opts Options
}

var _ core.PathSearchAlgorithm[string, weight.Edge] = (*Search[string, weight.Edge, int])(nil)

// New returns a Dijkstra Search configured by opts.
func New[V any, E weight.Weighted[T], T constraints.Ordered](opts ...Option) *Search[V, E, T] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Search[V, E, T]{opts: cfg}
}

// frontierItem is one (vertex, distance) entry of the priority frontier.
// seq records push order and breaks ties between equal distances.
type frontierItem[V any, T constraints.Ordered] struct {
	vertex core.Vertex[V]
	dist   distance.Distance[T]
	seq    uint64
}

// runner holds the mutable state for a single FindPath execution.
type runner[V any, E weight.Weighted[T], T constraints.Ordered] struct {
	g       core.Graph[V, E]
	opts    Options
	dist    map[int]distance.Distance[T]  // vertex id → best known distance (absent = Unknown)
	prev    map[int]core.Connection[V, E] // vertex id → connection that achieved dist
	visited *bitset.BitSet                // finalized vertices
	pq      *pq.Queue                     // min-frontier of frontierItem
	seq     uint64
}

// FindPath returns a minimum-total-weight path from 'from' to 'to'.
//
// Preconditions and validation (in order):
//  1. from must be registered in g (core.ErrVertexNotFound).
//  2. to must be registered in g (core.ErrVertexNotFound).
//
// Behavior highlights:
//   - from == to yields the empty path (the source is popped first with Zero).
//   - Connections whose payload reports a nil Weight are impassable.
//   - A relaxed connection with a weight below the zero value of T aborts the
//     search with ErrNegativeWeight.
//   - found is false when the frontier empties before 'to' is popped.
func (s *Search[V, E, T]) FindPath(g core.Graph[V, E], from, to core.Vertex[V]) (core.Path[V, E], bool, error) {
	if !g.HasVertex(from) {
		return core.Path[V, E]{}, false, fmt.Errorf("dijkstra: start %s: %w", from, core.ErrVertexNotFound)
	}
	if !g.HasVertex(to) {
		return core.Path[V, E]{}, false, fmt.Errorf("dijkstra: target %s: %w", to, core.ErrVertexNotFound)
	}

	n := g.VertexCount()
	r := &runner[V, E, T]{
		g:       g,
		opts:    s.opts,
		dist:    make(map[int]distance.Distance[T], n),
		prev:    make(map[int]core.Connection[V, E], n),
		visited: bitset.New(uint(n)),
		pq:      pq.NewWith(compareItems[V, T]),
	}

	path, found, err := r.run(from, to)
	ev := s.opts.Logger.Debug().
		Int("from", from.ID()).
		Int("to", to.ID()).
		Bool("found", found).
		Int("hops", path.Len())
	if found {
		ev = ev.Stringer("cost", r.dist[to.ID()])
	}
	ev.Msg("dijkstra search finished")

	return path, found, err
}

// compareItems orders frontier entries by distance, then by push order.
func compareItems[V any, T constraints.Ordered](a, b interface{}) int {
	x := a.(frontierItem[V, T])
	y := b.(frontierItem[V, T])
	if c := x.dist.Compare(y.dist); c != 0 {
		return c
	}

	return cmp.Compare(x.seq, y.seq)
}

// push records a frontier entry with the next sequence number.
func (r *runner[V, E, T]) push(v core.Vertex[V], d distance.Distance[T]) {
	r.pq.Enqueue(frontierItem[V, T]{vertex: v, dist: d, seq: r.seq})
	r.seq++
}

// run is the main label-setting loop.
func (r *runner[V, E, T]) run(from, to core.Vertex[V]) (core.Path[V, E], bool, error) {
	// Seed the frontier: the source is at Zero, everything else is Unknown
	// (the zero value of a missing dist entry).
	r.dist[from.ID()] = distance.Zero[T]()
	r.push(from, distance.Zero[T]())

	for !r.pq.Empty() {
		// Cancellation is checked once per pop.
		select {
		case <-r.opts.Ctx.Done():
			return core.Path[V, E]{}, false, r.opts.Ctx.Err()
		default:
		}

		// Smallest distance first; equal distances in push order.
		top, _ := r.pq.Dequeue()
		cur := top.(frontierItem[V, T])

		// 1) Target popped: its distance is final.
		if cur.vertex.Equal(to) {
			path, err := r.reconstruct(from, to)
			return path, err == nil, err
		}

		// 2) Stale entry of an already finalized vertex.
		if r.visited.Test(uint(cur.vertex.ID())) {
			continue
		}

		// 3) Relax outgoing connections, then finalize.
		if err := r.relax(cur); err != nil {
			return core.Path[V, E]{}, false, err
		}
		r.visited.Set(uint(cur.vertex.ID()))
	}

	// Frontier exhausted without reaching the target.
	return core.Path[V, E]{}, false, nil
}

// relax examines each connection leaving cur.vertex and improves the best
// distance of unvisited destinations.
func (r *runner[V, E, T]) relax(cur frontierItem[V, T]) error {
	conns, err := r.g.Connections(cur.vertex)
	if err != nil {
		return fmt.Errorf("dijkstra: connections of %s: %w", cur.vertex, err)
	}
	r.opts.Logger.Trace().
		Int("vertex", cur.vertex.ID()).
		Stringer("dist", cur.dist).
		Int("degree", len(conns)).
		Msg("relax")

	var zero T
	for _, c := range conns {
		if r.visited.Test(uint(c.To.ID())) {
			continue
		}
		w := c.Edge.Weight()
		if w == nil {
			continue
		}
		if w.Value() < zero {
			return fmt.Errorf("%w: connection %s weight=%v", ErrNegativeWeight, c, w.Value())
		}

		candidate := cur.dist.Plus(w)
		if candidate.Less(r.dist[c.To.ID()]) {
			r.dist[c.To.ID()] = candidate
			r.prev[c.To.ID()] = c
			r.push(c.To, candidate)
		}
	}

	return nil
}

// reconstruct follows predecessor connections from 'to' back to 'from' and
// returns them in walk order. from == to yields the empty path.
func (r *runner[V, E, T]) reconstruct(from, to core.Vertex[V]) (core.Path[V, E], error) {
	var chain []core.Connection[V, E]
	for cur := to; !cur.Equal(from); {
		c, ok := r.prev[cur.ID()]
		if !ok {
			break
		}
		chain = append(chain, c)
		cur = c.From
	}
	slices.Reverse(chain)

	return core.NewPath(chain...)
}

// PathCost sums the edge weights of p. The empty path costs Zero; a
// connection reporting a nil Weight makes the cost Unknown.
func PathCost[V any, E weight.Weighted[T], T constraints.Ordered](p core.Path[V, E]) distance.Distance[T] {
	d := distance.Zero[T]()
	for _, c := range p.Connections() {
		w := c.Edge.Weight()
		if w == nil {
			return distance.Unknown[T]()
		}
		d = d.Plus(w)
	}

	return d
}
