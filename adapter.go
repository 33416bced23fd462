package planarity

import "github.com/katalvlaran/planarity/graph"

// FromGraph adapts a *graph.Graph — whose vertices are string-identified —
// to the int-identified Graph interface Planar requires. Ids are assigned
// by ascending sorted vertex-ID order (graph.Vertices() already returns
// that order), so the mapping is deterministic for a given snapshot and
// Planar's result does not depend on map iteration order anywhere.
//
// The adapter is a snapshot: it reads g once, at FromGraph's call time.
// Mutating g afterward does not affect a Graph value already handed to
// Planar.
func FromGraph(g *graph.Graph) Graph {
	ids := g.Vertices()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	return &graphAdapter{
		n:        len(ids),
		edges:    g.Edges(),
		index:    index,
		directed: g.Directed(),
	}
}

type graphAdapter struct {
	n        int
	edges    []*graph.Edge
	index    map[string]int
	directed bool
}

func (a *graphAdapter) VertexCount() int { return a.n }
func (a *graphAdapter) EdgeCount() int   { return len(a.edges) }
func (a *graphAdapter) Directed() bool   { return a.directed }

func (a *graphAdapter) EachVertex(fn func(id int)) {
	for i := 0; i < a.n; i++ {
		fn(i)
	}
}

func (a *graphAdapter) EachEdge(fn func(source, target int)) {
	for _, e := range a.edges {
		fn(a.index[e.From], a.index[e.To])
	}
}
