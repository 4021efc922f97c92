// Package bfs provides breadth-first path search over a core.Graph.
//
// The search returns the first path found. Because the frontier is FIFO the
// path is shortest by hop count, though not necessarily by weight. It is the
// default algorithm behind core.Graph.GetPath.
package bfs

import (
	"context"
	"fmt"

	"github.com/bits-and-blooms/bitset"
	aq "github.com/emirpasic/gods/queues/arrayqueue"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/simplegraph/core"
)

// Search is the unweighted, first-path-found search algorithm.
// A Search holds only configuration and may be reused and shared.
type Search[V, E any] struct {
	opts BFSOptions
}

var _ core.PathSearchAlgorithm[int, int] = (*Search[int, int])(nil)

// New returns a breadth-first Search configured by opts.
func New[V, E any](opts ...Option) *Search[V, E] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Search[V, E]{opts: o}
}

// queueItem pairs a frontier vertex with the path that reached it.
type queueItem[V, E any] struct {
	vertex core.Vertex[V]
	path   core.Path[V, E]
}

// walker encapsulates mutable BFS state for a single FindPath call.
type walker[V, E any] struct {
	graph   core.Graph[V, E]
	opts    BFSOptions
	ctx     context.Context
	log     zerolog.Logger
	queue   *aq.Queue
	visited *bitset.BitSet
	target  core.Vertex[V]
}

// FindPath runs breadth-first search from 'from' until 'to' is reached.
//
// Semantics:
//   - The frontier is seeded with (from, empty path).
//   - A popped vertex that was already visited is skipped; a vertex may be
//     enqueued several times before it is first processed.
//   - A connection is followed when its destination is the target or not yet
//     visited. Reaching the target returns immediately.
//   - The popped vertex is marked visited after its connections are scanned.
//   - from == to is answered only through a real cycle (or self-loop); there
//     is no zero-hop result.
//
// Returns found == false when the frontier empties, or ErrOptionViolation,
// core.ErrVertexNotFound, or a context error.
//
// Complexity: O(V + E) frontier operations over the reachable region; every
// path extension copies the path prefix.
func (s *Search[V, E]) FindPath(g core.Graph[V, E], from, to core.Vertex[V]) (core.Path[V, E], bool, error) {
	if s.opts.err != nil {
		return core.Path[V, E]{}, false, s.opts.err
	}
	if !g.HasVertex(from) {
		return core.Path[V, E]{}, false, fmt.Errorf("bfs: start %s: %w", from, core.ErrVertexNotFound)
	}
	if !g.HasVertex(to) {
		return core.Path[V, E]{}, false, fmt.Errorf("bfs: target %s: %w", to, core.ErrVertexNotFound)
	}

	w := &walker[V, E]{
		graph:   g,
		opts:    s.opts,
		ctx:     s.opts.Ctx,
		log:     s.opts.Logger,
		queue:   aq.New(),
		visited: bitset.New(uint(g.VertexCount())),
		target:  to,
	}
	w.queue.Enqueue(queueItem[V, E]{vertex: from, path: core.EmptyPath[V, E]()})

	path, found, err := w.loop()
	w.log.Debug().
		Int("from", from.ID()).
		Int("to", to.ID()).
		Bool("found", found).
		Int("hops", path.Len()).
		Msg("bfs search finished")

	return path, found, err
}

// loop processes the queue until the target is reached, the queue empties,
// or the context is cancelled.
func (w *walker[V, E]) loop() (core.Path[V, E], bool, error) {
	for !w.queue.Empty() {
		// cancellation check (once per pop)
		select {
		case <-w.ctx.Done():
			return core.Path[V, E]{}, false, w.ctx.Err()
		default:
		}

		item := w.dequeue()
		// A vertex can be queued by several parents before it is expanded.
		if w.visited.Test(uint(item.vertex.ID())) {
			continue
		}

		path, found, err := w.expand(item)
		if err != nil || found {
			return path, found, err
		}
		w.visited.Set(uint(item.vertex.ID()))
	}

	// Queue drained: target unreachable within the depth limit.
	return core.Path[V, E]{}, false, nil
}

// dequeue pops the head item and invokes OnDequeue.
func (w *walker[V, E]) dequeue() queueItem[V, E] {
	v, _ := w.queue.Dequeue()
	item := v.(queueItem[V, E])
	w.opts.OnDequeue(item.vertex.ID(), item.path.Len())

	return item
}

// expand scans the connections of item.vertex in storage order, returning the
// extended path as soon as one reaches the target.
func (w *walker[V, E]) expand(item queueItem[V, E]) (core.Path[V, E], bool, error) {
	conns, err := w.graph.Connections(item.vertex)
	if err != nil {
		return core.Path[V, E]{}, false, fmt.Errorf("bfs: connections of %s: %w", item.vertex, err)
	}
	w.log.Trace().Int("vertex", item.vertex.ID()).Int("depth", item.path.Len()).Int("degree", len(conns)).Msg("expand")

	// Depth limit: do not grow paths past MaxDepth connections.
	nextDepth := item.path.Len() + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return core.Path[V, E]{}, false, nil
	}

	for _, c := range conns {
		// The target is accepted even when visited, so from == to can close
		// a cycle back to the source.
		reached := c.To.Equal(w.target)
		if !reached && w.visited.Test(uint(c.To.ID())) {
			continue
		}
		next, err := item.path.Append(c)
		if err != nil {
			return core.Path[V, E]{}, false, fmt.Errorf("bfs: extend %s: %w", item.path, err)
		}
		// Early exit: the first arrival is a shortest path in hops.
		if reached {
			return next, true, nil
		}
		w.queue.Enqueue(queueItem[V, E]{vertex: c.To, path: next})
	}

	return core.Path[V, E]{}, false, nil
}
