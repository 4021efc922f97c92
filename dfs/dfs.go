// Package dfs provides depth-first path search over a core.Graph.
//
// The search dives along the first unvisited connection of every vertex and
// returns the first path that reaches the target. The result is neither
// hop-optimal nor weight-optimal, but it needs only O(depth) frontier growth
// per branch and suits reachability questions on deep, narrow graphs.
//
// Endpoint semantics match package bfs: from == to is answered only through
// a real cycle or self-loop.
package dfs

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/simplegraph/core"
)

// Search is the depth-first, first-path-found search algorithm.
type Search[V, E any] struct {
	opts DFSOptions
}

var _ core.PathSearchAlgorithm[int, int] = (*Search[int, int])(nil)

// New returns a depth-first Search configured by opts.
func New[V, E any](opts ...Option) *Search[V, E] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Search[V, E]{opts: o}
}

type frame[V, E any] struct {
	vertex core.Vertex[V]
	path   core.Path[V, E]
}

// FindPath walks depth-first from 'from' until a connection reaches 'to'.
//
// Implementation:
//   - Stage 1: Validate options and endpoints.
//   - Stage 2: Pop a frame; skip it if visited, otherwise mark it visited.
//   - Stage 3: Scan its connections in storage order; a connection into the
//     target ends the search, others are pushed in reverse so the first stored
//     connection is explored first.
//
// Complexity:
//   - Time O(V + E) frontier operations; Space O(V + E) frames.
func (s *Search[V, E]) FindPath(g core.Graph[V, E], from, to core.Vertex[V]) (core.Path[V, E], bool, error) {
	if s.opts.err != nil {
		return core.Path[V, E]{}, false, s.opts.err
	}
	if !g.HasVertex(from) {
		return core.Path[V, E]{}, false, fmt.Errorf("dfs: start %s: %w", from, core.ErrVertexNotFound)
	}
	if !g.HasVertex(to) {
		return core.Path[V, E]{}, false, fmt.Errorf("dfs: target %s: %w", to, core.ErrVertexNotFound)
	}

	stack := arraystack.New()
	visited := bitset.New(uint(g.VertexCount()))
	stack.Push(frame[V, E]{vertex: from, path: core.EmptyPath[V, E]()})

	for !stack.Empty() {
		select {
		case <-s.opts.Ctx.Done():
			return core.Path[V, E]{}, false, s.opts.Ctx.Err()
		default:
		}

		top, _ := stack.Pop()
		f := top.(frame[V, E])
		if visited.Test(uint(f.vertex.ID())) {
			continue
		}
		visited.Set(uint(f.vertex.ID()))

		if s.opts.MaxDepth > 0 && f.path.Len() >= s.opts.MaxDepth {
			continue
		}

		conns, err := g.Connections(f.vertex)
		if err != nil {
			return core.Path[V, E]{}, false, fmt.Errorf("dfs: connections of %s: %w", f.vertex, err)
		}
		s.opts.Logger.Trace().Int("vertex", f.vertex.ID()).Int("depth", f.path.Len()).Msg("expand")

		for _, c := range conns {
			if !c.To.Equal(to) {
				continue
			}
			next, err := f.path.Append(c)
			if err != nil {
				return core.Path[V, E]{}, false, fmt.Errorf("dfs: extend %s: %w", f.path, err)
			}
			return next, true, nil
		}
		for i := len(conns) - 1; i >= 0; i-- {
			c := conns[i]
			if visited.Test(uint(c.To.ID())) {
				continue
			}
			next, err := f.path.Append(c)
			if err != nil {
				return core.Path[V, E]{}, false, fmt.Errorf("dfs: extend %s: %w", f.path, err)
			}
			stack.Push(frame[V, E]{vertex: c.To, path: next})
		}
	}

	return core.Path[V, E]{}, false, nil
}
