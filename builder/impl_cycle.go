// SPDX-License-Identifier: MIT
// Package: simplegraph/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds vertices 0..n-1 via cfg.payloadFn.
//   • Emits edges i → (i+1)%n for i=0..n-1; on a directed graph the ring
//     is oriented, so every vertex reaches itself through n arcs.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/simplegraph/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle[V, E any](n int) Constructor[V, E] {
	return func(g core.Graph[V, E], cfg config[V, E]) ([]core.Vertex[V], error) {
		if n < minCycleNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		vs := addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			if err := connect(g, cfg, methodCycle, vs, i, (i+1)%n); err != nil {
				return nil, err
			}
		}

		return vs, nil
	}
}
