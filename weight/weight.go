// Package weight defines the capability contracts that make an edge payload
// usable by weighted search, plus two illustrative instantiations.
//
// A Weight is a comparable, summable magnitude. For dijkstra.Search to return
// cost-optimal paths, Plus must be associative and monotonic: adding a weight
// never decreases a total.
package weight

import "golang.org/x/exp/constraints"

// Weight is the magnitude of an edge.
type Weight[T constraints.Ordered] interface {
	// Value is the comparable magnitude, e.g. 42 for an integer weight.
	Value() T

	// Plus returns the sum of this and other.
	Plus(other Weight[T]) Weight[T]
}

// Weighted is implemented by edge payloads that report a Weight.
type Weighted[T constraints.Ordered] interface {
	Weight() Weight[T]
}

// Int is an integer Weight.
type Int int

// Value implements Weight.
func (w Int) Value() int { return int(w) }

// Plus implements Weight.
func (w Int) Plus(other Weight[int]) Weight[int] { return w + Int(other.Value()) }

// Float is a floating-point Weight.
type Float float64

// Value implements Weight.
func (w Float) Value() float64 { return float64(w) }

// Plus implements Weight.
func (w Float) Plus(other Weight[float64]) Weight[float64] { return w + Float(other.Value()) }

// Edge is an edge payload carrying an integer weight.
type Edge int

// Weight implements Weighted.
func (e Edge) Weight() Weight[int] { return Int(e) }

// FloatEdge is an edge payload carrying a floating-point weight.
type FloatEdge float64

// Weight implements Weighted.
func (e FloatEdge) Weight() Weight[float64] { return Float(e) }
