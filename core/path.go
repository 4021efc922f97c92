// SPDX-License-Identifier: MIT
//
// File: path.go
// Role: Immutable, contiguous walk through a graph.
// Policy:
//   - Every mutation-looking method returns a fresh Path; receivers never change.
//   - Contiguity (c[i].To == c[i+1].From) is validated on every construction path.

package core

import (
	"fmt"
	"strings"
)

// Path is an ordered, contiguous sequence of Connections.
//
// The zero value is the empty Path, which is a valid path from any vertex to
// itself. Paths are values: Append and NewPath copy, so sharing a Path
// between goroutines is safe.
type Path[V, E any] struct {
	connections []Connection[V, E]
}

// EmptyPath returns a path with no connections.
func EmptyPath[V, E any]() Path[V, E] {
	return Path[V, E]{}
}

// NewPath builds a Path from conns, validating contiguity.
//
// Implementation:
//   - Stage 1: Walk conns pairwise and compare c[i].To with c[i+1].From by id.
//   - Stage 2: Copy conns so the caller's slice is never aliased.
//
// Errors:
//   - ErrInvalidPathExtension (wrapped with the offending index) on a gap.
//
// Complexity:
//   - Time O(n), Space O(n).
func NewPath[V, E any](conns ...Connection[V, E]) (Path[V, E], error) {
	for i := 1; i < len(conns); i++ {
		if !conns[i-1].To.Equal(conns[i].From) {
			return Path[V, E]{}, fmt.Errorf("%w: connection %d (%s) does not start at %s",
				ErrInvalidPathExtension, i, conns[i], conns[i-1].To)
		}
	}
	if len(conns) == 0 {
		return Path[V, E]{}, nil
	}

	cp := make([]Connection[V, E], len(conns))
	copy(cp, conns)

	return Path[V, E]{connections: cp}, nil
}

// Append returns a new Path extended by c. The receiver is left untouched.
// An empty path accepts any first connection.
//
// Errors:
//   - ErrInvalidPathExtension if c.From differs from the current terminus.
//
// Complexity:
//   - Time O(n), Space O(n): the backing array is always copied so that two
//     paths grown from a common prefix never share storage.
func (p Path[V, E]) Append(c Connection[V, E]) (Path[V, E], error) {
	if n := len(p.connections); n > 0 && !p.connections[n-1].To.Equal(c.From) {
		return p, fmt.Errorf("%w: %s does not start at %s",
			ErrInvalidPathExtension, c, p.connections[n-1].To)
	}

	next := make([]Connection[V, E], len(p.connections)+1)
	copy(next, p.connections)
	next[len(p.connections)] = c

	return Path[V, E]{connections: next}, nil
}

// Connections returns a copy of the path's connections in walk order.
func (p Path[V, E]) Connections() []Connection[V, E] {
	if len(p.connections) == 0 {
		return nil
	}
	cp := make([]Connection[V, E], len(p.connections))
	copy(cp, p.connections)

	return cp
}

// Len is the number of connections (hops) in the path.
func (p Path[V, E]) Len() int { return len(p.connections) }

// IsEmpty reports whether the path has no connections.
func (p Path[V, E]) IsEmpty() bool { return len(p.connections) == 0 }

// Start returns the first vertex of the walk; ok is false for an empty path.
func (p Path[V, E]) Start() (v Vertex[V], ok bool) {
	if len(p.connections) == 0 {
		return v, false
	}

	return p.connections[0].From, true
}

// End returns the terminus of the walk; ok is false for an empty path.
func (p Path[V, E]) End() (v Vertex[V], ok bool) {
	if len(p.connections) == 0 {
		return v, false
	}

	return p.connections[len(p.connections)-1].To, true
}

// Vertices lists every vertex on the walk, starting vertex included.
// A path of n connections yields n+1 vertices; the empty path yields none.
func (p Path[V, E]) Vertices() []Vertex[V] {
	if len(p.connections) == 0 {
		return nil
	}
	out := make([]Vertex[V], 0, len(p.connections)+1)
	out = append(out, p.connections[0].From)
	for _, c := range p.connections {
		out = append(out, c.To)
	}

	return out
}

// String renders the walk as "#0→#1→#2", or "∅" when empty.
func (p Path[V, E]) String() string {
	if len(p.connections) == 0 {
		return "∅"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "#%d", p.connections[0].From.id)
	for _, c := range p.connections {
		fmt.Fprintf(&sb, "→#%d", c.To.id)
	}

	return sb.String()
}
