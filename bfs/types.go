// Package bfs provides tunable options and error definitions
// for breadth-first path search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Sentinel errors for BFS execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when FindPath is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Logger receives Trace events per expansion and a Debug event per search.
	Logger zerolog.Logger

	// OnDequeue is called when a vertex is popped from the frontier,
	// before its visited check. Receives the vertex id and its depth.
	OnDequeue func(id int, depth int)

	// MaxDepth, if > 0, stops extending paths beyond this many hops.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - context.Background()
//   - zerolog.Nop()
//   - no depth limit (MaxDepth == 0)
//   - no-op OnDequeue hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		Logger:    zerolog.Nop(),
		OnDequeue: func(int, int) {},
		MaxDepth:  0,
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *BFSOptions) { o.Logger = l }
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id int, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithMaxDepth stops the search from building paths longer than d hops.
//
//	d > 0: limit to d hops
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}
