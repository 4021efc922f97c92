// Package builder assembles deterministic fixture topologies on any
// core.Graph: paths, cycles, stars, complete graphs, grids and sparse random
// graphs.
//
// The package offers:
//
//   - Build: the single orchestrator. It resolves options into a config,
//     runs one Constructor against the target graph and returns the vertices
//     the constructor created, in creation order.
//   - Constructors: Path, Cycle, Star, Complete, Grid, RandomSparse.
//   - Options:
//     – WithPayloadFn: vertex payload per creation index (default: zero V).
//     – WithEdgeFn:    edge payload per (rng, i, j) index pair (default: zero E).
//     – WithSeed:      seed of the RNG shared by RandomSparse and WithEdgeFn.
//
// Guarantees:
//
//   - Determinism: equal inputs, options and seed yield equal graphs.
//   - Parameters are validated before the graph is touched; a rejected
//     constructor adds nothing.
//   - The target graph's shape is honored: on undirected graphs every emitted
//     edge is stored with its mirror by the graph itself.
//
// Errors:
//
//   - ErrTooFewVertices     size parameter below the constructor's minimum.
//   - ErrInvalidProbability RandomSparse probability outside [0,1].
//   - ErrNilConstructor     Build called without a constructor.
//   - Graph errors (core.ErrVertexNotFound) are wrapped with constructor context.
package builder
