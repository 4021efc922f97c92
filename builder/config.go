// SPDX-License-Identifier: MIT
// Package: simplegraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • payloadFn = zero value of V
//   • edgeFn    = zero value of E
//   • rng       = seeded with defaultSeed

package builder

import "math/rand"

// defaultSeed seeds the RNG when WithSeed is not given.
const defaultSeed int64 = 1

// config aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type config[V, E any] struct {
	// payloadFn maps a creation index to the vertex payload.
	payloadFn func(i int) V
	// edgeFn maps an index pair to the edge payload; rng is the shared stream.
	edgeFn func(rng *rand.Rand, i, j int) E
	// rng drives RandomSparse trials and is handed to edgeFn.
	rng *rand.Rand
}

// newConfig constructs a config with deterministic defaults and applies all
// options in order (last wins).
func newConfig[V, E any](opts ...Option[V, E]) config[V, E] {
	cfg := config[V, E]{
		payloadFn: func(int) V { var zero V; return zero },
		edgeFn:    func(*rand.Rand, int, int) E { var zero E; return zero },
		rng:       rand.New(rand.NewSource(defaultSeed)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
