// File: api.go
// Role: read-only getters over construction-time configuration flags.
package graph

// Directed reports whether new edges default to directed.
// Complexity: O(1). Concurrency: safe; read lock.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Weighted reports whether the graph treats edge weights as meaningful.
// Complexity: O(1). Concurrency: safe; read lock.
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Looped reports whether self-loops are permitted.
// Complexity: O(1). Concurrency: safe; read lock.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted.
// Complexity: O(1). Concurrency: safe; read lock.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}
