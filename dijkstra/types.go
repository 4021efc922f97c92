// Package dijkstra defines error sentinels and configuration options
// for Dijkstra's shortest-path search on weighted graphs.
//
// Options:
//
//	– WithContext: cancellation, checked once per frontier pop.
//	– WithLogger:  Trace per relaxation round, Debug per search.
//
// Errors (sentinel):
//
//	– core.ErrVertexNotFound if an endpoint is not registered in the graph.
//	– ErrNegativeWeight      if a relaxed connection carries a weight below zero.
package dijkstra

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

// ErrNegativeWeight indicates that a negative edge weight was met during
// relaxation. Label-setting search cannot guarantee optimality with such
// weights, so the search is aborted instead of returning a possibly wrong path.
var ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

// Options configures the behavior of the Dijkstra search.
type Options struct {
	Ctx    context.Context // cancellation
	Logger zerolog.Logger  // diagnostics sink
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithContext sets a context checked once per frontier pop.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns background context and a Nop logger.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: zerolog.Nop(),
	}
}
