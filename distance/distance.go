// Package distance implements the running-cost algebra used by weighted search.
//
// A Distance is one of three variants:
//
//	Zero         – the cost of the source vertex to itself.
//	Positive(w)  – a known, accumulated weight.
//	Unknown      – not reached yet.
//
// The variants are totally ordered Zero < Positive(*) < Unknown, regardless of
// the sign of w, so a priority-ordered frontier defers unreached vertices
// without sentinel magic numbers. Unknown is absorbing under Plus.
//
// The zero value of Distance is Unknown, which lets a plain map lookup
// (missing key) stand for "not reached".
package distance

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/simplegraph/weight"
)

// Kind tags the variant of a Distance.
type Kind uint8

const (
	// KindUnknown is a distance not yet calculated. It is the zero Kind.
	KindUnknown Kind = iota
	// KindZero is the distance of the source to itself.
	KindZero
	// KindPositive is a known accumulated weight.
	KindPositive
)

// rank orders the kinds: Zero < Positive < Unknown.
func (k Kind) rank() int {
	switch k {
	case KindZero:
		return 0
	case KindPositive:
		return 1
	default:
		return 2
	}
}

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindZero:
		return "Zero"
	case KindPositive:
		return "Positive"
	default:
		return "Unknown"
	}
}

// Distance is the closed sum {Zero, Positive(weight), Unknown}.
type Distance[T constraints.Ordered] struct {
	kind   Kind
	weight weight.Weight[T] // set only for KindPositive
}

// Zero returns the distance of a vertex to itself.
func Zero[T constraints.Ordered]() Distance[T] {
	return Distance[T]{kind: KindZero}
}

// Unknown returns the distance of a vertex that has not been reached.
func Unknown[T constraints.Ordered]() Distance[T] {
	return Distance[T]{}
}

// Positive returns a known distance holding w.
// A nil w yields Unknown.
func Positive[T constraints.Ordered](w weight.Weight[T]) Distance[T] {
	if w == nil {
		return Distance[T]{}
	}

	return Distance[T]{kind: KindPositive, weight: w}
}

// Kind reports the variant.
func (d Distance[T]) Kind() Kind { return d.kind }

// Weight returns the accumulated weight; ok is false unless d is Positive.
func (d Distance[T]) Weight() (w weight.Weight[T], ok bool) {
	if d.kind != KindPositive {
		return nil, false
	}

	return d.weight, true
}

// Compare returns -1, 0 or +1 as d is less than, equal to or greater than o.
//
// Order:
//   - Zero < Positive(w) for every w, including negative-valued ones.
//   - Positive(a) vs Positive(b) compares a.Value() with b.Value().
//   - Positive(w) < Unknown for every w.
//   - Zero == Zero, Unknown == Unknown.
func (d Distance[T]) Compare(o Distance[T]) int {
	if c := cmp.Compare(d.kind.rank(), o.kind.rank()); c != 0 {
		return c
	}
	if d.kind != KindPositive {
		return 0
	}

	return cmp.Compare(d.weight.Value(), o.weight.Value())
}

// Less reports whether d sorts strictly before o.
func (d Distance[T]) Less(o Distance[T]) bool { return d.Compare(o) < 0 }

// Equal reports whether d and o are the same variant and, for Positive,
// carry weights of equal value.
func (d Distance[T]) Equal(o Distance[T]) bool { return d.Compare(o) == 0 }

// Plus extends d by w:
//
//	Zero + w        = Positive(w)
//	Positive(a) + w = Positive(a + w)
//	Unknown + w     = Unknown
//	d + nil         = Unknown
//
// A nil weight marks an impassable connection, so it is absorbing too.
func (d Distance[T]) Plus(w weight.Weight[T]) Distance[T] {
	if w == nil {
		return Unknown[T]()
	}
	switch d.kind {
	case KindZero:
		return Positive(w)
	case KindPositive:
		return Distance[T]{kind: KindPositive, weight: d.weight.Plus(w)}
	default:
		return d
	}
}

// String renders "Zero", "Unknown" or "Positive(v)".
func (d Distance[T]) String() string {
	if d.kind == KindPositive {
		return fmt.Sprintf("Positive(%v)", d.weight.Value())
	}

	return d.kind.String()
}
