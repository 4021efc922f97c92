// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Contracts between graph storage, search algorithms and decorators.
// Policy:
//   - Algorithms consume Graph only through this interface; they never see storage.
//   - Decorators (package concurrent) implement the same interface by delegation.

package core

// Graph is a set of vertices connected by edges.
//
// Vertices hold user data of type V; edges hold user data of type E. When E
// implements weight.Weighted the graph is considered weighted and can be
// searched with dijkstra.Search.
//
// Implementations in this module are not safe for concurrent use unless
// wrapped (see package concurrent).
type Graph[V, E any] interface {
	// AddVertex registers a new vertex holding payload and returns it.
	// Ids are strictly increasing from zero. Never fails.
	AddVertex(payload V) Vertex[V]

	// AddEdge connects from and to with edge. Directed graphs store one arc,
	// undirected graphs store the arc and its mirror.
	// Returns ErrVertexNotFound if either endpoint is absent; the graph is left
	// unchanged in that case.
	AddEdge(from, to Vertex[V], edge E) error

	// Connections returns the outgoing connections of v in insertion order.
	// The returned slice must be treated as read-only.
	// Returns ErrVertexNotFound if v is absent.
	Connections(v Vertex[V]) ([]Connection[V, E], error)

	// GetPath finds a path between from and to with the graph's default
	// algorithm (breadth-first unless configured otherwise). The path is not
	// necessarily optimal by weight. found is false when to is unreachable.
	GetPath(from, to Vertex[V]) (path Path[V, E], found bool, err error)

	// GetPathWith finds a path between from and to using alg.
	GetPathWith(alg PathSearchAlgorithm[V, E], from, to Vertex[V]) (path Path[V, E], found bool, err error)

	// Traverse calls visit once for every vertex, in registration order.
	Traverse(visit func(Vertex[V]))

	// HasVertex reports whether v is registered in the graph.
	HasVertex(v Vertex[V]) bool

	// VertexCount returns the number of registered vertices.
	VertexCount() int

	// ConnectionCount returns the number of stored arcs. An undirected edge
	// counts twice.
	ConnectionCount() int

	// Directed reports whether AddEdge stores a single arc.
	Directed() bool
}

// PathSearchAlgorithm searches for a path between two vertices of a Graph.
// Whether the found path is optimal depends on the implementation.
type PathSearchAlgorithm[V, E any] interface {
	// FindPath returns a path from 'from' to 'to'. found is false (with a nil
	// error) when no path exists. Errors signal contract violations such as
	// ErrVertexNotFound.
	FindPath(g Graph[V, E], from, to Vertex[V]) (path Path[V, E], found bool, err error)
}

// SearchFunc adapts an ordinary function to the PathSearchAlgorithm contract.
type SearchFunc[V, E any] func(g Graph[V, E], from, to Vertex[V]) (Path[V, E], bool, error)

// FindPath calls f(g, from, to).
func (f SearchFunc[V, E]) FindPath(g Graph[V, E], from, to Vertex[V]) (Path[V, E], bool, error) {
	return f(g, from, to)
}
