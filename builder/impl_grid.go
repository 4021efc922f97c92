// SPDX-License-Identifier: MIT
// Package: simplegraph/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood.
//   • Vertices are created in row-major order; cell (r,c) has creation index
//     r*cols + c, which is also its position in the returned slice.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each cell emits Right then Bottom neighbor edges where they exist.
//     On directed graphs the reverse arc is emitted as well.
//
// Complexity:
//   • Time: O(rows*cols) vertices + O(rows*cols) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/simplegraph/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols grid.
func Grid[V, E any](rows, cols int) Constructor[V, E] {
	return func(g core.Graph[V, E], cfg config[V, E]) ([]core.Vertex[V], error) {
		if rows < minGridDim || cols < minGridDim {
			return nil, fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		vs := addVertices(g, cfg, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cell := r*cols + c
				if c+1 < cols {
					if err := connectBoth(g, cfg, methodGrid, vs, cell, cell+1); err != nil {
						return nil, err
					}
				}
				if r+1 < rows {
					if err := connectBoth(g, cfg, methodGrid, vs, cell, cell+cols); err != nil {
						return nil, err
					}
				}
			}
		}

		return vs, nil
	}
}
