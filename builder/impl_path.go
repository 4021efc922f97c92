// SPDX-License-Identifier: MIT
// Package: simplegraph/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices 0..n-1 via cfg.payloadFn.
//   - Emits edges (i-1) → i for i=1..n-1 in increasing order.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/simplegraph/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path[V, E any](n int) Constructor[V, E] {
	return func(g core.Graph[V, E], cfg config[V, E]) ([]core.Vertex[V], error) {
		if n < minPathNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		vs := addVertices(g, cfg, n)
		for i := 1; i < n; i++ {
			if err := connect(g, cfg, methodPath, vs, i-1, i); err != nil {
				return nil, err
			}
		}

		return vs, nil
	}
}
