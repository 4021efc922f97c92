package concurrent_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplegraph/builder"
	"github.com/katalvlaran/simplegraph/concurrent"
	"github.com/katalvlaran/simplegraph/core"
	"github.com/katalvlaran/simplegraph/dijkstra"
	"github.com/katalvlaran/simplegraph/graph"
	"github.com/katalvlaran/simplegraph/weight"
)

func TestWrap_Delegates(t *testing.T) {
	g := concurrent.Wrap[string, string](graph.NewUndirected[string, string]())
	a, b := g.AddVertex("A"), g.AddVertex("B")
	require.NoError(t, g.AddEdge(a, b, "a-b"))

	require.False(t, g.Directed())
	require.True(t, g.HasVertex(a))
	require.Equal(t, 2, g.VertexCount())
	require.Equal(t, 2, g.ConnectionCount())

	cs, err := g.Connections(b)
	require.NoError(t, err)
	require.Equal(t, []core.Connection[string, string]{{From: b, To: a, Edge: "a-b"}}, cs)

	path, found, err := g.GetPath(a, b)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 1, path.Len())

	var seen []int
	g.Traverse(func(v core.Vertex[string]) { seen = append(seen, v.ID()) })
	require.Equal(t, []int{0, 1}, seen)
}

// TestTraverse_VisitorCallsWrapper checks that a visitor may read and mutate
// the wrapper it is walking, and that vertices added mid-walk are not visited.
func TestTraverse_VisitorCallsWrapper(t *testing.T) {
	g := concurrent.Wrap[int, int](graph.NewDirected[int, int]())
	for i := 0; i < 3; i++ {
		g.AddVertex(i)
	}

	var seen []int
	g.Traverse(func(v core.Vertex[int]) {
		seen = append(seen, v.ID())
		_, err := g.Connections(v)
		require.NoError(t, err)
		w := g.AddVertex(10 + v.ID())
		require.NoError(t, g.AddEdge(v, w, 0))
	})

	require.Equal(t, []int{0, 1, 2}, seen)
	require.Equal(t, 6, g.VertexCount())
	require.Equal(t, 3, g.ConnectionCount())
}

// TestConcurrentWriters checks that parallel AddVertex calls yield distinct,
// dense ids and that parallel AddEdge calls are all stored.
func TestConcurrentWriters(t *testing.T) {
	const workers, perWorker = 8, 200
	g := concurrent.Wrap[int, int](graph.NewDirected[int, int]())
	hub := g.AddVertex(-1)

	var wg sync.WaitGroup
	ids := make(chan int, workers*perWorker)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				v := g.AddVertex(w*perWorker + i)
				ids <- v.ID()
				if err := g.AddEdge(hub, v, i); err != nil {
					t.Error(err)
				}
			}
		}(w)
	}
	wg.Wait()
	close(ids)

	seen := map[int]bool{}
	for id := range ids {
		require.False(t, seen[id], "id %d issued twice", id)
		seen[id] = true
	}
	require.Len(t, seen, workers*perWorker)
	require.Equal(t, workers*perWorker+1, g.VertexCount())
	require.Equal(t, workers*perWorker, g.ConnectionCount())
}

// TestReadersDuringWrites runs searches while the graph grows. Every search
// must see a consistent prefix of the chain.
func TestReadersDuringWrites(t *testing.T) {
	inner := graph.NewDirected[int, weight.Edge]()
	_, err := builder.Build[int, weight.Edge](inner, builder.Path[int, weight.Edge](10),
		builder.WithPayloadFn[int, weight.Edge](func(i int) int { return i }))
	require.NoError(t, err)
	g := concurrent.Wrap[int, weight.Edge](inner)

	var first, last core.Vertex[int]
	g.Traverse(func(v core.Vertex[int]) {
		if v.ID() == 0 {
			first = v
		}
		last = v
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		prev := last
		for i := 0; i < 500; i++ {
			v := g.AddVertex(100 + i)
			if err := g.AddEdge(prev, v, 1); err != nil {
				t.Error(err)
				return
			}
			prev = v
		}
	}()

	alg := dijkstra.New[int, weight.Edge, int]()
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				path, found, err := g.GetPathWith(alg, first, last)
				if err != nil || !found || path.Len() != 9 {
					t.Errorf("search %d: len=%d found=%v err=%v", i, path.Len(), found, err)
					return
				}
				if _, err := g.Connections(first); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 510, g.VertexCount())
}

// TestUndirectedEdgeIsAtomic runs readers against a writer that keeps adding
// undirected edges. Within one read lock, every arc must have its mirror and
// the arc count must be even.
func TestUndirectedEdgeIsAtomic(t *testing.T) {
	const n = 16
	g := concurrent.Wrap[int, int](graph.NewUndirected[int, int]())
	vs := make([]core.Vertex[int], n)
	for i := range vs {
		vs[i] = g.AddVertex(i)
	}

	// mirrored counts u→w arcs and requires the same number of w→u arcs.
	mirrored := core.SearchFunc[int, int](func(inner core.Graph[int, int], _, _ core.Vertex[int]) (core.Path[int, int], bool, error) {
		if c := inner.ConnectionCount(); c%2 != 0 {
			return core.EmptyPath[int, int](), false, fmt.Errorf("odd arc count %d", c)
		}
		arcs := map[[2]int]int{}
		for _, v := range vs {
			cs, err := inner.Connections(v)
			if err != nil {
				return core.EmptyPath[int, int](), false, err
			}
			for _, c := range cs {
				arcs[[2]int{c.From.ID(), c.To.ID()}]++
			}
		}
		for k, cnt := range arcs {
			if back := arcs[[2]int{k[1], k[0]}]; back != cnt {
				return core.EmptyPath[int, int](), false, fmt.Errorf("%d→%d stored %d times, mirror %d times", k[0], k[1], cnt, back)
			}
		}
		return core.EmptyPath[int, int](), false, nil
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			a, b := vs[i%n], vs[(i*7+1)%n]
			if a.Equal(b) {
				continue
			}
			if err := g.AddEdge(a, b, i); err != nil {
				t.Error(err)
				return
			}
		}
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				if _, _, err := g.GetPathWith(mirrored, vs[0], vs[1]); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()

	require.Zero(t, g.ConnectionCount()%2)
}

func BenchmarkGetPath_Parallel(b *testing.B) {
	inner := graph.NewUndirected[int, int]()
	vs, err := builder.Build[int, int](inner, builder.Grid[int, int](20, 20))
	require.NoError(b, err)
	g := concurrent.Wrap[int, int](inner)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _, _ = g.GetPath(vs[0], vs[len(vs)-1])
		}
	})
}
