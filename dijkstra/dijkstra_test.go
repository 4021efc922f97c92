package dijkstra_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplegraph/core"
	"github.com/katalvlaran/simplegraph/dijkstra"
	"github.com/katalvlaran/simplegraph/distance"
	"github.com/katalvlaran/simplegraph/graph"
	"github.com/katalvlaran/simplegraph/weight"
)

// hops renders a path as "from-to" payload pairs for readable assertions.
func hops[V any](p core.Path[V, weight.Edge]) [][2]V {
	out := make([][2]V, 0, p.Len())
	for _, c := range p.Connections() {
		out = append(out, [2]V{c.From.Payload(), c.To.Payload()})
	}

	return out
}

// weighted builds a graph of the given shape from payloads and weighted arcs.
func weighted[V comparable](t *testing.T, directed bool, payloads []V, arcs []arc[V]) (*graph.Graph[V, weight.Edge], map[V]core.Vertex[V]) {
	t.Helper()
	var g *graph.Graph[V, weight.Edge]
	if directed {
		g = graph.NewDirected[V, weight.Edge]()
	} else {
		g = graph.NewUndirected[V, weight.Edge]()
	}
	byPayload := make(map[V]core.Vertex[V], len(payloads))
	for _, p := range payloads {
		byPayload[p] = g.AddVertex(p)
	}
	for _, a := range arcs {
		require.NoError(t, g.AddEdge(byPayload[a.u], byPayload[a.v], weight.Edge(a.w)))
	}

	return g, byPayload
}

// arc is one weighted edge between two payloads.
type arc[V any] struct {
	u, v V
	w    int
}

func TestDijkstra_SingleEdge(t *testing.T) {
	g, v := weighted(t, false, []string{"First", "Second"}, []arc[string]{{"First", "Second", 42}})

	path, found, err := dijkstra.New[string, weight.Edge, int]().FindPath(g, v["First"], v["Second"])
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, [][2]string{{"First", "Second"}}, hops(path))
}

func TestDijkstra_Unreachable(t *testing.T) {
	g, v := weighted(t, false, []string{"First", "Second", "Third"}, []arc[string]{{"First", "Second", 42}})

	path, found, err := dijkstra.New[string, weight.Edge, int]().FindPath(g, v["First"], v["Third"])
	require.NoError(t, err)
	require.False(t, found)
	require.True(t, path.IsEmpty())
}

func TestDijkstra_PathToSelfIsEmpty(t *testing.T) {
	g, v := weighted(t, false, []string{"First", "Second"}, []arc[string]{{"First", "Second", 42}})

	path, found, err := dijkstra.New[string, weight.Edge, int]().FindPath(g, v["First"], v["First"])
	require.NoError(t, err)
	require.True(t, found)
	require.True(t, path.IsEmpty())
}

// TestDijkstra_Baeldung prefers a→b→d→e (24) over a→c→e (25).
func TestDijkstra_Baeldung(t *testing.T) {
	g, v := weighted(t, true, []string{"A", "B", "C", "D", "E", "F"}, []arc[string]{
		{"A", "B", 10}, {"A", "C", 15}, {"B", "D", 12}, {"B", "F", 15},
		{"C", "E", 10}, {"D", "E", 2}, {"D", "F", 1}, {"F", "E", 5},
	})

	path, found, err := dijkstra.New[string, weight.Edge, int]().FindPath(g, v["A"], v["E"])
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, [][2]string{{"A", "B"}, {"B", "D"}, {"D", "E"}}, hops(path))

	cost := dijkstra.PathCost[string, weight.Edge, int](path)
	w, ok := cost.Weight()
	require.True(t, ok)
	require.Equal(t, 24, w.Value())
}

func TestDijkstra_GeeksForGeeks(t *testing.T) {
	g, v := weighted(t, false, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, []arc[int]{
		{0, 1, 4}, {0, 7, 8}, {1, 2, 8}, {1, 7, 11}, {2, 3, 7}, {2, 5, 4}, {2, 8, 2},
		{3, 4, 9}, {3, 5, 14}, {4, 5, 10}, {5, 6, 2}, {6, 7, 1}, {6, 8, 6}, {7, 8, 7},
	})
	alg := dijkstra.New[int, weight.Edge, int]()

	path, found, err := alg.FindPath(g, v[0], v[8])
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 8}}, hops(path))

	// the same Search value is reusable
	path, found, err = alg.FindPath(g, v[0], v[4])
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, [][2]int{{0, 7}, {7, 6}, {6, 5}, {5, 4}}, hops(path))
}

func TestDijkstra_Wikipedia(t *testing.T) {
	g, v := weighted(t, false, []int{1, 2, 3, 4, 5, 6}, []arc[int]{
		{1, 2, 7}, {1, 3, 9}, {1, 6, 14}, {2, 3, 10}, {2, 4, 15},
		{3, 4, 11}, {3, 6, 2}, {4, 5, 6}, {5, 6, 9},
	})

	path, found, err := g.GetPathWith(dijkstra.New[int, weight.Edge, int](), v[1], v[5])
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, [][2]int{{1, 3}, {3, 6}, {6, 5}}, hops(path))
}

// TestDijkstra_ParallelConnections picks the cheaper of two parallel arcs.
func TestDijkstra_ParallelConnections(t *testing.T) {
	g, v := weighted(t, true, []string{"A", "B"}, []arc[string]{{"A", "B", 9}, {"A", "B", 3}})

	path, found, err := dijkstra.New[string, weight.Edge, int]().FindPath(g, v["A"], v["B"])
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, weight.Edge(3), path.Connections()[0].Edge)
}

// TestDijkstra_EqualCostTieBreak returns the route discovered first.
func TestDijkstra_EqualCostTieBreak(t *testing.T) {
	g, v := weighted(t, true, []string{"S", "X", "Y", "T"}, []arc[string]{
		{"S", "X", 1}, {"S", "Y", 1}, {"Y", "T", 1}, {"X", "T", 1},
	})

	path, found, err := dijkstra.New[string, weight.Edge, int]().FindPath(g, v["S"], v["T"])
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, [][2]string{{"S", "X"}, {"X", "T"}}, hops(path))
}

func TestDijkstra_ZeroWeightEdges(t *testing.T) {
	g, v := weighted(t, true, []string{"A", "B", "C"}, []arc[string]{{"A", "B", 0}, {"B", "C", 0}, {"A", "C", 1}})

	path, found, err := dijkstra.New[string, weight.Edge, int]().FindPath(g, v["A"], v["C"])
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, [][2]string{{"A", "B"}, {"B", "C"}}, hops(path))
}

func TestDijkstra_NegativeWeightRejected(t *testing.T) {
	g, v := weighted(t, true, []string{"A", "B", "C"}, []arc[string]{{"A", "B", 2}, {"B", "C", -5}})

	_, found, err := dijkstra.New[string, weight.Edge, int]().FindPath(g, v["A"], v["C"])
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	require.False(t, found)
}

func TestDijkstra_VertexNotFound(t *testing.T) {
	g, v := weighted(t, true, []string{"A"}, nil)
	_, w := weighted(t, true, []string{"x", "y", "z"}, nil)

	_, _, err := dijkstra.New[string, weight.Edge, int]().FindPath(g, v["A"], w["z"])
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, _, err = dijkstra.New[string, weight.Edge, int]().FindPath(g, w["z"], v["A"])
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestDijkstra_Cancelled(t *testing.T) {
	g, v := weighted(t, true, []string{"A", "B"}, []arc[string]{{"A", "B", 1}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := dijkstra.New[string, weight.Edge, int](dijkstra.WithContext(ctx)).FindPath(g, v["A"], v["B"])
	require.ErrorIs(t, err, context.Canceled)
}

// floatRoad is an edge payload with a name and a float weight.
type floatRoad struct {
	name string
	km   float64
}

func (r floatRoad) Weight() weight.Weight[float64] { return weight.Float(r.km) }

func TestDijkstra_CustomWeightedPayload(t *testing.T) {
	g := graph.NewUndirected[string, floatRoad]()
	a, b, c := g.AddVertex("A"), g.AddVertex("B"), g.AddVertex("C")
	require.NoError(t, g.AddEdge(a, c, floatRoad{"highway", 10.5}))
	require.NoError(t, g.AddEdge(a, b, floatRoad{"lane", 4.25}))
	require.NoError(t, g.AddEdge(b, c, floatRoad{"lane", 4.25}))

	path, found, err := dijkstra.New[string, floatRoad, float64]().FindPath(g, c, a)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 2, path.Len())

	w, ok := dijkstra.PathCost[string, floatRoad, float64](path).Weight()
	require.True(t, ok)
	assert.InDelta(t, 8.5, w.Value(), 1e-9)
}

func TestPathCost_Empty(t *testing.T) {
	cost := dijkstra.PathCost[string, weight.Edge, int](core.EmptyPath[string, weight.Edge]())
	assert.Equal(t, distance.KindZero, cost.Kind())
}
