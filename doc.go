// Package simplegraph is an in-memory, generic graph library with pluggable
// path search.
//
// Vertices carry a payload of any type V and edges a payload of any type E.
// When E reports a weight (weight.Weighted) the graph can be searched for
// cost-optimal paths.
//
// Subpackages, leaves first:
//
//	core/       — Vertex, Connection, Path and the Graph / PathSearchAlgorithm contracts
//	weight/     — the Weight and Weighted capabilities plus int and float64 weights
//	distance/   — Zero < Positive(w) < Unknown, the running cost of weighted search
//	graph/      — the adjacency-list store, directed and undirected
//	bfs/        — breadth-first search, fewest hops (the default for GetPath)
//	dfs/        — depth-first search, first path found
//	dijkstra/   — Dijkstra's shortest path over weighted edges
//	concurrent/ — reader/writer-locked decorator for any core.Graph
//	builder/    — deterministic fixture topologies (path, cycle, grid, random, ...)
//	gonumgraph/ — read-only gonum view for running gonum algorithms on the same data
//
// Quick start:
//
//	g := graph.NewUndirected[string, weight.Edge]()
//	a, b := g.AddVertex("A"), g.AddVertex("B")
//	_ = g.AddEdge(a, b, 7)
//	path, found, err := g.GetPathWith(dijkstra.New[string, weight.Edge, int](), a, b)
//
// Graphs are append-only: vertices and edges are never removed. A plain graph
// is not safe for concurrent use; wrap it with concurrent.Wrap to share it.
package simplegraph
