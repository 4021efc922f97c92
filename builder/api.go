// SPDX-License-Identifier: MIT
// Package: simplegraph/builder
//
// api.go - the public entry-point Build and the Constructor contract.
//
// Design contract:
//   - One orchestrator: Build(g, con, opts...). Resolves cfg, runs con once.
//   - Functional options resolve into a config passed by value.
//   - Determinism: same inputs, options and seed yield identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/simplegraph/core"
)

// Constructor applies a deterministic mutation to g using the resolved
// config and returns the vertices it created in creation order.
// Constructors validate their parameters before the first AddVertex call.
type Constructor[V, E any] func(g core.Graph[V, E], cfg config[V, E]) ([]core.Vertex[V], error)

// Build resolves opts and applies con to g.
//
// Errors:
//   - ErrNilConstructor if con is nil.
//   - Constructor errors wrapped as "Build: %w".
//
// Complexity:
//   - O(len(opts)) to resolve options plus the cost of con.
func Build[V, E any](g core.Graph[V, E], con Constructor[V, E], opts ...Option[V, E]) ([]core.Vertex[V], error) {
	// A nil constructor has nothing to run.
	if con == nil {
		return nil, fmt.Errorf("Build: %w", ErrNilConstructor)
	}

	// Resolve defaults, then apply options in order (last wins).
	cfg := newConfig(opts...)

	// Run the constructor. It validates its own parameters before mutating g.
	vs, err := con(g, cfg)
	if err != nil {
		// Keep the constructor's context and add the entry point.
		return nil, fmt.Errorf("Build: %w", err)
	}

	return vs, nil
}
