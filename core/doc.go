// Package core defines the value types and contracts shared by every part of
// simplegraph: Vertex, Connection, Path, the Graph contract and the
// PathSearchAlgorithm contract.
//
// The Graph G = (V,E) is parameterized over two types:
//
//   - V – the payload carried by every Vertex (opaque user data).
//   - E – the payload carried by every Connection (the "edge").
//
// Identity model:
//
//	A Vertex is identified by an integer id assigned by the Graph that created it.
//	Ids start at zero, grow strictly by one, and are never reused. Equality of two
//	vertices is decided by id alone; the payload never participates.
//
// Adjacency model:
//
//	Every vertex owns an ordered list of outgoing Connections (from, to, edge).
//	Insertion order is preserved and is the order in which search algorithms
//	expand neighbors, so results are deterministic for a given build sequence.
//
//	  Directed:   AddEdge(a, b, e) stores a→b.
//	  Undirected: AddEdge(a, b, e) stores a→b and b→a.
//
// Path model:
//
//	A Path is an immutable, contiguous walk: for adjacent connections c[i], c[i+1]
//	it holds that c[i].To == c[i+1].From. The empty Path is valid.
//
// Errors:
//
//	ErrVertexNotFound       – a referenced vertex is absent from the graph.
//	ErrInvalidPathExtension – an appended connection does not continue the path.
//
// Concurrency:
//
//	Types in this package are immutable values. Graph implementations are not
//	required to be safe for concurrent use; see package concurrent for a
//	reader/writer-locked decorator.
package core
