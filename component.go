package planarity

// globalEdge is one input edge before component partitioning, keyed by
// the Graph interface's own vertex ids (dense 0..n-1 across the whole
// input, not yet renumbered per component).
type globalEdge struct {
	u, v int
}

// Planar reports whether g is planar: whether it admits a plane
// embedding without edge crossings. It is a pure function of g — no I/O,
// no shared state, safe to call concurrently on distinct Graph values
// (or the same read-only one).
//
// Boundary semantics, checked in order before any traversal:
//   - n <= 0: true.
//   - g.Directed(): false (directed input is rejected as a domain
//     restriction, not analyzed).
//   - n <= 4: true (every graph on at most 4 vertices is planar).
//   - n > 2 and m > 3n-6: false (Euler's formula bounds a simple planar
//     graph's edge count; anything over it cannot be planar, so phase 1
//     and phase 2 never run).
//   - otherwise: every connected component is tested independently via
//     the two-phase DFS (orientation, then the left-right test); the
//     first non-planar component short-circuits the whole result to
//     false.
func Planar(g Graph, opts ...Option) bool {
	n := g.VertexCount()
	if n <= 0 {
		return true
	}
	if g.Directed() {
		return false
	}
	if n <= 4 {
		return true
	}

	cfg := resolveOptions(opts)
	m := g.EdgeCount()
	if cfg.eulerBound && n > 2 && m > 3*n-6 {
		return false
	}

	edges := make([]globalEdge, 0, m)
	g.EachEdge(func(source, target int) {
		edges = append(edges, globalEdge{u: source, v: target})
	})

	adj := make([][]int, n)
	for i, e := range edges {
		adj[e.u] = append(adj[e.u], i)
		if e.u != e.v {
			adj[e.v] = append(adj[e.v], i)
		}
	}

	visited := make([]bool, n)
	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}

		members := bfsComponent(adj, edges, visited, start)
		if len(members) < 3 {
			continue // trivially planar: too few vertices to contain a cycle
		}
		if !testComponent(members, adj, edges) {
			return false
		}
	}

	return true
}

// bfsComponent enumerates the connected component containing start via
// breadth-first discovery over the undirected adjacency built from
// edges, marking every member visited.
func bfsComponent(adj [][]int, edges []globalEdge, visited []bool, start int) []int {
	visited[start] = true
	members := []int{start}
	queue := []int{start}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		for _, eid := range adj[v] {
			e := edges[eid]
			w := e.u
			if w == v {
				w = e.v
			}
			if !visited[w] {
				visited[w] = true
				members = append(members, w)
				queue = append(queue, w)
			}
		}
	}

	return members
}

// testComponent renumbers members to dense local indices, builds a fresh
// per-component state from the induced edge set, and runs both DFS
// phases against it.
func testComponent(members []int, adj [][]int, edges []globalEdge) bool {
	local := make(map[int]int, len(members))
	for i, v := range members {
		local[v] = i
	}

	comp := newComponent(len(members))

	seen := make(map[int]bool)
	for _, v := range members {
		for _, eid := range adj[v] {
			if seen[eid] {
				continue
			}
			seen[eid] = true

			e := edges[eid]
			comp.addRawEdge(local[e.u], local[e.v])
		}
	}
	comp.finalizeEdgeTables()

	orient(comp)
	sortAdjacencyByNestingDepth(comp)

	return testLR(comp)
}
