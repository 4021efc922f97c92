// SPDX-License-Identifier: MIT
// Package: simplegraph/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Vertex 0 is the hub; vertices 1..n-1 are leaves.
//   • Emits hub → leaf spokes in increasing leaf order. On directed graphs the
//     reverse spoke leaf → hub is emitted as well.
//
// Complexity:
//   • Time: O(n) vertices + O(n-1) edges (doubled when directed).

package builder

import (
	"fmt"

	"github.com/katalvlaran/simplegraph/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
	starHub      = 0
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star[V, E any](n int) Constructor[V, E] {
	return func(g core.Graph[V, E], cfg config[V, E]) ([]core.Vertex[V], error) {
		if n < minStarNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		vs := addVertices(g, cfg, n)
		for leaf := 1; leaf < n; leaf++ {
			if err := connectBoth(g, cfg, methodStar, vs, starHub, leaf); err != nil {
				return nil, err
			}
		}

		return vs, nil
	}
}
