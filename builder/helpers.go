// Package builder: helpers shared by the constructors.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: every failure names the constructor and the endpoints.
package builder

import (
	"fmt"

	"github.com/katalvlaran/simplegraph/core"
)

// addVertices inserts n vertices with payloads cfg.payloadFn(0..n-1) and
// returns them in creation order.
//
// Complexity: O(n) time, O(n) space for the returned slice.
func addVertices[V, E any](g core.Graph[V, E], cfg config[V, E], n int) []core.Vertex[V] {
	vs := make([]core.Vertex[V], n)
	for i := 0; i < n; i++ {
		vs[i] = g.AddVertex(cfg.payloadFn(i))
	}

	return vs
}

// connect adds vs[i]→vs[j] with payload cfg.edgeFn(rng, i, j), wrapping a
// graph error with the method tag.
func connect[V, E any](g core.Graph[V, E], cfg config[V, E], method string, vs []core.Vertex[V], i, j int) error {
	if err := g.AddEdge(vs[i], vs[j], cfg.edgeFn(cfg.rng, i, j)); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, vs[i], vs[j], err)
	}

	return nil
}

// connectBoth adds i→j and, on directed graphs, the reverse arc j→i so that
// symmetric topologies stay symmetric regardless of shape.
func connectBoth[V, E any](g core.Graph[V, E], cfg config[V, E], method string, vs []core.Vertex[V], i, j int) error {
	if err := connect(g, cfg, method, vs, i, j); err != nil {
		return err
	}
	if g.Directed() {
		return connect(g, cfg, method, vs, j, i)
	}

	return nil
}
