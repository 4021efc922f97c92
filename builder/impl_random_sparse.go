// SPDX-License-Identifier: MIT
// Package: simplegraph/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each admissible edge independently
//     with probability p.
//   - Undirected: iterate unordered pairs {i,j} with i<j.
//   - Directed: iterate ordered pairs (i,j) with i≠j.
//   - No self-loops, no parallel arcs.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials.
//
// Determinism:
//   - Stable trial order: i asc, then j asc. Fixed seed ⇒ fixed edge set.

package builder

import (
	"fmt"

	"github.com/katalvlaran/simplegraph/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a graph over n vertices
// with independent edge probability p.
func RandomSparse[V, E any](n int, p float64) Constructor[V, E] {
	// The closure captures (n, p); Build supplies (g, cfg).
	return func(g core.Graph[V, E], cfg config[V, E]) ([]core.Vertex[V], error) {
		// 1) Validate before touching g: an invalid call leaves it unchanged.
		if n < minRandomSparseVertices {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		// Probability must lie in the closed interval [0,1].
		if p < probMin || p > probMax {
			return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}

		// 2) Add all vertices first; ids follow creation index.
		vs := addVertices(g, cfg, n)

		// 3) Sample pairs in stable order: i asc, then j asc.
		directed := g.Directed()
		for i := 0; i < n; i++ {
			// Undirected: unordered pairs only (j > i). Directed: every j.
			j := i + 1
			if directed {
				j = 0
			}
			for ; j < n; j++ {
				if i == j {
					continue // no self-loops
				}
				// Bernoulli trial. Float64 is in [0,1): p=0 never adds, p=1 always adds.
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := connect(g, cfg, methodRandomSparse, vs, i, j); err != nil {
					return nil, err
				}
			}
		}

		return vs, nil
	}
}
