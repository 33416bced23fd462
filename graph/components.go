// File: components.go
// Role: general-purpose connected-component listing for callers who just
// want component membership, independent of any particular algorithm
// that might also walk the graph (e.g. planarity.Planar, which performs
// its own component discovery per its own contract).
package graph

import "github.com/spakin/disjoint"

// Components groups every vertex ID by connected component, treating all
// edges as undirected for the purpose of grouping (directed edges still
// connect their endpoints). Components are returned in an unspecified
// order; within a component, vertex IDs are sorted ascending.
//
// Implementation: each vertex gets a disjoint-set element; every edge
// unions its endpoints' sets; elements are then grouped by their
// representative.
//
// Complexity: O((V+E) * alpha(V)) with path compression and union by
// rank, plus O(V log V) for the sorted vertex list; members are appended
// in that sorted order, which keeps each component's IDs ascending.
func (g *Graph) Components() [][]string {
	ids := g.Vertices()
	elems := make(map[string]*disjoint.Element, len(ids))
	for _, id := range ids {
		elems[id] = disjoint.NewElement()
	}

	for _, e := range g.Edges() {
		disjoint.Union(elems[e.From], elems[e.To])
	}

	groups := make(map[*disjoint.Element][]string)
	for _, id := range ids {
		root := elems[id].Find()
		groups[root] = append(groups[root], id)
	}

	out := make([][]string, 0, len(groups))
	for _, members := range groups {
		out = append(out, members)
	}

	return out
}
