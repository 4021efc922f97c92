// SPDX-License-Identifier: MIT
// Package: simplegraph/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed.

package builder

import "math/rand"

// Option customizes a Build call by mutating its config.
type Option[V, E any] func(*config[V, E])

// WithPayloadFn sets the vertex payload generator: creation index -> payload.
// Panics on nil.
func WithPayloadFn[V, E any](fn func(i int) V) Option[V, E] {
	if fn == nil {
		panic("builder: WithPayloadFn(nil)")
	}
	return func(c *config[V, E]) { c.payloadFn = fn }
}

// WithEdgeFn sets the edge payload generator. i and j are the creation
// indices of the endpoints. fn must draw only from rng to stay deterministic.
// Panics on nil.
func WithEdgeFn[V, E any](fn func(rng *rand.Rand, i, j int) E) Option[V, E] {
	if fn == nil {
		panic("builder: WithEdgeFn(nil)")
	}
	return func(c *config[V, E]) { c.edgeFn = fn }
}

// WithSeed replaces the RNG with one seeded by seed.
func WithSeed[V, E any](seed int64) Option[V, E] {
	return func(c *config[V, E]) { c.rng = rand.New(rand.NewSource(seed)) }
}
