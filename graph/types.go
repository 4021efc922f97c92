// Package graph provides the in-memory, unsynchronized implementation of
// core.Graph in its two shapes, directed and undirected.
//
// Both shapes share one storage type; the only difference is the connect step
// of AddEdge (one arc vs. an arc plus its mirror), selected by a flag at
// construction.
package graph

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/simplegraph/bfs"
	"github.com/katalvlaran/simplegraph/core"
)

// Options holds construction-time configuration of a Graph.
type Options[V, E any] struct {
	// Logger receives Debug events for vertex and edge insertion.
	// Defaults to zerolog.Nop().
	Logger zerolog.Logger

	// DefaultSearch is used by GetPath. Defaults to bfs.New().
	DefaultSearch core.PathSearchAlgorithm[V, E]

	// Capacity pre-sizes vertex storage. Zero means no pre-sizing.
	Capacity int
}

// Option configures a Graph before creation.
type Option[V, E any] func(*Options[V, E])

// WithLogger attaches a logger for mutation events.
func WithLogger[V, E any](l zerolog.Logger) Option[V, E] {
	return func(o *Options[V, E]) { o.Logger = l }
}

// WithDefaultSearch replaces the algorithm used by GetPath.
// A nil algorithm keeps the breadth-first default.
func WithDefaultSearch[V, E any](alg core.PathSearchAlgorithm[V, E]) Option[V, E] {
	return func(o *Options[V, E]) {
		if alg != nil {
			o.DefaultSearch = alg
		}
	}
}

// WithCapacity pre-sizes storage for n vertices.
// Panics on negative n; option constructors validate early.
func WithCapacity[V, E any](n int) Option[V, E] {
	if n < 0 {
		panic("graph: WithCapacity(n < 0)")
	}
	return func(o *Options[V, E]) { o.Capacity = n }
}

// defaultOptions returns Nop logging, breadth-first search and no pre-sizing.
func defaultOptions[V, E any]() Options[V, E] {
	return Options[V, E]{
		Logger:        zerolog.Nop(),
		DefaultSearch: bfs.New[V, E](),
	}
}

// Graph is the adjacency-list store behind core.Graph.
//
// Storage is indexed by vertex id: ids are dense and sequential, so
// vertices[id] is the vertex and adjacency[id] its outgoing connections in
// insertion order. The key set only grows.
//
// Graph carries no synchronization. Use package concurrent to share it
// between goroutines.
type Graph[V, E any] struct {
	directed bool

	ids         core.VertexFactory[V]
	vertices    []core.Vertex[V]
	adjacency   [][]core.Connection[V, E]
	connections int

	search core.PathSearchAlgorithm[V, E]
	log    zerolog.Logger
}

var (
	_ core.Graph[int, int] = (*Graph[int, int])(nil)
)

// NewDirected creates an empty graph whose AddEdge stores a single arc.
func NewDirected[V, E any](opts ...Option[V, E]) *Graph[V, E] {
	return newGraph(true, opts)
}

// NewUndirected creates an empty graph whose AddEdge stores an arc and its mirror.
func NewUndirected[V, E any](opts ...Option[V, E]) *Graph[V, E] {
	return newGraph(false, opts)
}

func newGraph[V, E any](directed bool, opts []Option[V, E]) *Graph[V, E] {
	o := defaultOptions[V, E]()
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph[V, E]{
		directed:  directed,
		vertices:  make([]core.Vertex[V], 0, o.Capacity),
		adjacency: make([][]core.Connection[V, E], 0, o.Capacity),
		search:    o.DefaultSearch,
		log:       o.Logger,
	}
}
