// File: adjacency_list.go
// Role: Vertex registration, edge insertion and adjacency queries.
//
// Determinism:
//   - Traverse visits vertices in registration order.
//   - Connections returns arcs in insertion order.
//
// Concurrency:
//   - None. Callers synchronize externally (see package concurrent).
package graph

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/simplegraph/core"
)

// AddVertex registers a new vertex holding payload.
//
// Implementation:
//   - Stage 1: Mint the next sequential id.
//   - Stage 2: Append the vertex and an empty adjacency list at index id.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph[V, E]) AddVertex(payload V) core.Vertex[V] {
	v := g.ids.Next(payload)
	g.vertices = append(g.vertices, v)
	g.adjacency = append(g.adjacency, nil)

	g.log.Debug().Int("vertex", v.ID()).Msg("vertex added")

	return v
}

// AddEdge connects from and to with edge.
//
// Implementation:
//   - Stage 1: Validate both endpoints before touching storage.
//   - Stage 2: Append from→to; for undirected graphs also append to→from.
//
// Behavior highlights:
//   - Parallel connections are kept; nothing is deduplicated.
//   - A self-loop on an undirected graph stores both mirrored arcs.
//
// Errors:
//   - core.ErrVertexNotFound (wrapped with the missing vertex). No mutation occurs.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph[V, E]) AddEdge(from, to core.Vertex[V], edge E) error {
	if err := g.checkVertex(from); err != nil {
		return err
	}
	if err := g.checkVertex(to); err != nil {
		return err
	}

	c := core.Connection[V, E]{From: from, To: to, Edge: edge}
	g.connect(c)
	if !g.directed {
		g.connect(c.Reversed())
	}

	g.log.Debug().
		Int("from", from.ID()).
		Int("to", to.ID()).
		Bool("directed", g.directed).
		Msg("edge added")

	return nil
}

// connect appends c to the list of c.From. Endpoints are already validated.
func (g *Graph[V, E]) connect(c core.Connection[V, E]) {
	id := c.From.ID()
	g.adjacency[id] = append(g.adjacency[id], c)
	g.connections++
}

// checkVertex returns a wrapped ErrVertexNotFound when v is not registered.
func (g *Graph[V, E]) checkVertex(v core.Vertex[V]) error {
	if !g.HasVertex(v) {
		g.log.Debug().Int("vertex", v.ID()).Msg("vertex not found")
		return fmt.Errorf("%w: %s", core.ErrVertexNotFound, v)
	}

	return nil
}

// Connections returns v's outgoing arcs in insertion order.
//
// The slice shares storage with the graph but is clipped to its length, so
// appending to it never writes into the graph. Elements must not be modified.
//
// Errors:
//   - core.ErrVertexNotFound if v is not registered.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph[V, E]) Connections(v core.Vertex[V]) ([]core.Connection[V, E], error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}

	return slices.Clip(g.adjacency[v.ID()]), nil
}

// GetPath delegates to the default search algorithm.
func (g *Graph[V, E]) GetPath(from, to core.Vertex[V]) (core.Path[V, E], bool, error) {
	return g.GetPathWith(g.search, from, to)
}

// GetPathWith delegates to alg, handing it this graph.
func (g *Graph[V, E]) GetPathWith(alg core.PathSearchAlgorithm[V, E], from, to core.Vertex[V]) (core.Path[V, E], bool, error) {
	return alg.FindPath(g, from, to)
}

// Traverse calls visit once per vertex in registration order.
// Vertices added by visit itself are visited as well.
func (g *Graph[V, E]) Traverse(visit func(core.Vertex[V])) {
	for i := 0; i < len(g.vertices); i++ {
		visit(g.vertices[i])
	}
}

// HasVertex reports whether v's id is registered.
func (g *Graph[V, E]) HasVertex(v core.Vertex[V]) bool {
	id := v.ID()
	return id >= 0 && id < len(g.vertices)
}

// VertexCount returns the number of registered vertices.
func (g *Graph[V, E]) VertexCount() int { return len(g.vertices) }

// ConnectionCount returns the number of stored arcs.
func (g *Graph[V, E]) ConnectionCount() int { return g.connections }

// Directed reports whether the graph stores a single arc per edge.
func (g *Graph[V, E]) Directed() bool { return g.directed }
