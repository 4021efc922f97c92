package weight_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/simplegraph/weight"
)

func TestInt_Plus(t *testing.T) {
	sum := weight.Int(1).Plus(weight.Int(41))
	assert.Equal(t, 42, sum.Value())
	assert.Equal(t, weight.Int(42), sum)
}

func TestInt_PlusIsAssociative(t *testing.T) {
	a, b, c := weight.Int(3), weight.Int(5), weight.Int(7)
	assert.Equal(t, a.Plus(b).Plus(c), a.Plus(b.Plus(c)))
}

func TestFloat_Plus(t *testing.T) {
	sum := weight.Float(0.5).Plus(weight.Float(1.25))
	assert.InDelta(t, 1.75, sum.Value(), 1e-12)
}

func TestEdges_ReportWeights(t *testing.T) {
	var w weight.Weighted[int] = weight.Edge(10)
	assert.Equal(t, 10, w.Weight().Value())

	var fw weight.Weighted[float64] = weight.FloatEdge(2.5)
	assert.InDelta(t, 2.5, fw.Weight().Value(), 1e-12)
}
