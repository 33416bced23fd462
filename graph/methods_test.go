package graph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarity/graph"
)

func TestAddRemoveVertex(t *testing.T) {
	g := graph.NewGraph()

	require.ErrorIs(t, g.AddVertex(""), graph.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("a"))
	require.True(t, g.HasVertex("a"))
	require.Equal(t, 1, g.VertexCount())

	// idempotent
	require.NoError(t, g.AddVertex("a"))
	require.Equal(t, 1, g.VertexCount())

	require.ErrorIs(t, g.RemoveVertex("missing"), graph.ErrVertexNotFound)
	require.NoError(t, g.RemoveVertex("a"))
	require.False(t, g.HasVertex("a"))
}

func TestAddEdgeConstraints(t *testing.T) {
	g := graph.NewGraph()

	_, err := g.AddEdge("a", "b", 5)
	require.ErrorIs(t, err, graph.ErrBadWeight)

	_, err = g.AddEdge("a", "a", 0)
	require.ErrorIs(t, err, graph.ErrLoopNotAllowed)

	eid, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)
	require.True(t, g.HasEdge("a", "b"))
	require.True(t, g.HasEdge("b", "a")) // mirrored: undirected by default

	e, err := g.GetEdge(eid)
	require.NoError(t, err)
	require.Equal(t, "a", e.From)
	require.Equal(t, "b", e.To)

	_, err = g.AddEdge("a", "b", 0)
	require.ErrorIs(t, err, graph.ErrMultiEdgeNotAllowed)
}

func TestNeighborsSortedAndDeduped(t *testing.T) {
	g := graph.NewGraph()
	_, _ = g.AddEdge("a", "c", 0)
	_, _ = g.AddEdge("a", "b", 0)

	ids, err := g.NeighborIDs("a")
	require.NoError(t, err)
	require.Equal(t, []string{"b", "c"}, ids)
}

func TestRemoveVertexDropsIncidentEdges(t *testing.T) {
	g := graph.NewGraph()
	_, _ = g.AddEdge("a", "b", 0)
	_, _ = g.AddEdge("b", "c", 0)

	require.NoError(t, g.RemoveVertex("b"))
	require.Equal(t, 0, g.EdgeCount())
	require.False(t, g.HasEdge("a", "b"))
}

func TestDirectedGraphDoesNotMirror(t *testing.T) {
	g := graph.NewGraph(graph.WithDirected(true))
	_, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)
	require.True(t, g.HasEdge("a", "b"))
	require.False(t, g.HasEdge("b", "a"))
}

func TestWeightedAndLoopsOptions(t *testing.T) {
	g := graph.NewGraph(graph.WithWeighted(), graph.WithLoops(), graph.WithMultiEdges())
	_, err := g.AddEdge("a", "a", 3)
	require.NoError(t, err)

	_, err = g.AddEdge("a", "a", 3)
	require.NoError(t, err, "multi-edges permit a second parallel loop")
}

func TestErrorsAreSentinels(t *testing.T) {
	var err error = graph.ErrVertexNotFound
	require.True(t, errors.Is(err, graph.ErrVertexNotFound))
}
