// Package concurrent provides a reader/writer-locked decorator for any
// core.Graph.
//
// Mutations (AddVertex, AddEdge) take the write lock; every query, including
// a whole path search, takes the read lock. Searches run against the wrapped
// graph, so a search never re-enters the lock it already holds. Traverse
// holds the lock only while it copies the vertex list, so its visitor runs
// unlocked.
//
// Fairness is that of sync.RWMutex: once a writer is blocked in Lock, new
// readers wait until it has finished.
package concurrent

import (
	"sync"

	"github.com/katalvlaran/simplegraph/core"
)

// Graph serializes access to an inner core.Graph.
type Graph[V, E any] struct {
	mu    sync.RWMutex
	inner core.Graph[V, E]
}

var _ core.Graph[int, int] = (*Graph[int, int])(nil)

// Wrap returns a thread-safe view of g. The caller must not use g directly
// afterwards.
func Wrap[V, E any](g core.Graph[V, E]) *Graph[V, E] {
	return &Graph[V, E]{inner: g}
}

// AddVertex registers a new vertex under the write lock.
func (g *Graph[V, E]) AddVertex(payload V) core.Vertex[V] {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.inner.AddVertex(payload)
}

// AddEdge connects from and to under the write lock.
func (g *Graph[V, E]) AddEdge(from, to core.Vertex[V], edge E) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.inner.AddEdge(from, to, edge)
}

// Connections returns v's outgoing arcs under the read lock.
// The returned slice stays valid after later mutations.
func (g *Graph[V, E]) Connections(v core.Vertex[V]) ([]core.Connection[V, E], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.inner.Connections(v)
}

// GetPath runs the inner graph's default search under the read lock.
func (g *Graph[V, E]) GetPath(from, to core.Vertex[V]) (core.Path[V, E], bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.inner.GetPath(from, to)
}

// GetPathWith runs alg against the inner graph under the read lock.
func (g *Graph[V, E]) GetPathWith(alg core.PathSearchAlgorithm[V, E], from, to core.Vertex[V]) (core.Path[V, E], bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.inner.GetPathWith(alg, from, to)
}

// Traverse snapshots the vertex list under the read lock and then calls
// visit for each snapshot vertex with the lock released. visit may call any
// method of g, mutations included. Vertices added during the walk are not
// visited.
func (g *Graph[V, E]) Traverse(visit func(core.Vertex[V])) {
	g.mu.RLock()
	vs := make([]core.Vertex[V], 0, g.inner.VertexCount())
	g.inner.Traverse(func(v core.Vertex[V]) { vs = append(vs, v) })
	g.mu.RUnlock()

	for _, v := range vs {
		visit(v)
	}
}

// HasVertex reports whether v is registered.
func (g *Graph[V, E]) HasVertex(v core.Vertex[V]) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.inner.HasVertex(v)
}

// VertexCount returns the number of registered vertices.
func (g *Graph[V, E]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.inner.VertexCount()
}

// ConnectionCount returns the number of stored arcs.
func (g *Graph[V, E]) ConnectionCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.inner.ConnectionCount()
}

// Directed never changes, but the inner graph is only read under the lock.
func (g *Graph[V, E]) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.inner.Directed()
}
