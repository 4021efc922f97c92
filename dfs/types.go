// Package dfs defines options and errors for depth-first path search.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of the DFS search.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS search.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// Logger receives Trace events per expansion.
	Logger zerolog.Logger

	// MaxDepth, if positive, limits paths to the given number of hops.
	// Zero means no limit.
	MaxDepth int

	err error
}

// DefaultOptions returns DFSOptions with background context, Nop logger and
// no depth limit.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:    context.Background(),
		Logger: zerolog.Nop(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *DFSOptions) { o.Logger = l }
}

// WithMaxDepth limits recursion depth. Negative values are recorded and
// surfaced as ErrOptionViolation by FindPath.
func WithMaxDepth(d int) Option {
	return func(o *DFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}
