package planarity

// Graph is the minimal read-only view Planar needs of its input: vertex
// and edge counts, a directedness flag, and iteration over vertices and
// edges. It deliberately asks for nothing else — no mutation, no lookup
// by id, no neighbor queries — so that any graph ADT can satisfy it with
// a thin adapter (see FromGraph for the one this module ships).
//
// Vertex ids exposed by EachVertex must be the dense integers
// 0..VertexCount()-1: the global adjacency and visited tables Planar
// builds are flat arrays indexed by vertex id, and every table both DFS
// passes read is a flat array indexed by local vertex or edge id, which
// keeps the passes off the hot path of hashing.
type Graph interface {
	// VertexCount returns the number of vertices, n.
	VertexCount() int
	// EdgeCount returns the number of edges, m.
	EdgeCount() int
	// Directed reports whether the underlying graph is directed. Planar
	// rejects directed input outright; this flag is read once, at the
	// very start of Planar, before any traversal.
	Directed() bool
	// EachVertex calls fn once per vertex id, in any order.
	EachVertex(fn func(id int))
	// EachEdge calls fn once per edge, in any order, with that edge's
	// (source, target) vertex ids. Edges are treated as undirected:
	// Planar never distinguishes source from target.
	EachEdge(fn func(source, target int))
}
