// SPDX-License-Identifier: MIT
// Package: simplegraph/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits one edge per unordered pair {i,j}, i<j, in lexicographic order.
//     On directed graphs both arcs i→j and j→i are emitted.
//   • No self-loops.
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/simplegraph/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete[V, E any](n int) Constructor[V, E] {
	return func(g core.Graph[V, E], cfg config[V, E]) ([]core.Vertex[V], error) {
		if n < minCompleteNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		vs := addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := connectBoth(g, cfg, methodComplete, vs, i, j); err != nil {
					return nil, err
				}
			}
		}

		return vs, nil
	}
}
