// Package core defines the central Vertex and Connection types together with
// the sentinel errors returned by graph operations.
//
// Errors:
//
//	ErrVertexNotFound       - requested vertex does not exist in the graph.
//	ErrInvalidPathExtension - a connection does not continue a path.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex that is not
	// registered in the graph (e.g. a handle obtained from another Graph instance).
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrInvalidPathExtension indicates that an appended connection does not
	// start where the path currently ends.
	ErrInvalidPathExtension = errors.New("core: connection does not continue the path")
)

// Vertex is an identity-bearing handle wrapping a user payload.
//
// Vertices are minted by the VertexFactory owned by a Graph (see
// Graph.AddVertex); the id is assigned there and is the sole component of
// identity.
//
// When V is comparable, so is Vertex, but == and map keys of type Vertex
// compare the payload as well. Use Equal to test identity and ID() as the
// map key.
type Vertex[V any] struct {
	id      int
	payload V
}

// newVertex is the single place a Vertex is minted. Graph implementations
// reach it through VertexFactory.
func newVertex[V any](id int, payload V) Vertex[V] {
	return Vertex[V]{id: id, payload: payload}
}

// ID returns the graph-assigned identifier of the vertex.
func (v Vertex[V]) ID() int { return v.id }

// Payload returns the user data carried by the vertex.
func (v Vertex[V]) Payload() V { return v.payload }

// Equal reports whether v and other denote the same vertex.
// Only ids are compared; payloads are opaque.
func (v Vertex[V]) Equal(other Vertex[V]) bool { return v.id == other.id }

// String renders the vertex as "#id(payload)".
func (v Vertex[V]) String() string {
	return fmt.Sprintf("#%d(%v)", v.id, v.payload)
}

// VertexFactory hands out vertices with strictly increasing ids starting at zero.
// It is the id allocator embedded by graph implementations; it is not safe
// for concurrent use.
type VertexFactory[V any] struct {
	next int
}

// Next mints a vertex with the next sequential id.
// Complexity: O(1).
func (f *VertexFactory[V]) Next(payload V) Vertex[V] {
	v := newVertex(f.next, payload)
	f.next++

	return v
}

// Issued returns how many vertices the factory has minted so far.
func (f *VertexFactory[V]) Issued() int { return f.next }

// Connection is one directed arc between two vertices carrying an edge payload.
// It is an immutable value; equality is structural.
type Connection[V, E any] struct {
	// From is the source vertex of the arc.
	From Vertex[V]

	// To is the destination vertex of the arc.
	To Vertex[V]

	// Edge is the user payload attached to the arc.
	Edge E
}

// Reversed returns the same edge running in the opposite direction.
func (c Connection[V, E]) Reversed() Connection[V, E] {
	return Connection[V, E]{From: c.To, To: c.From, Edge: c.Edge}
}

// String renders the connection as "#from→#to".
func (c Connection[V, E]) String() string {
	return fmt.Sprintf("#%d→#%d", c.From.id, c.To.id)
}
