package graph_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarity/graph"
)

func TestComponentsGroupsDisconnectedVertices(t *testing.T) {
	g := graph.NewGraph()
	_, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("c", "d", 0)
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("e")) // isolated

	got := g.Components()
	sort.Slice(got, func(i, j int) bool { return got[i][0] < got[j][0] })

	want := [][]string{{"a", "b"}, {"c", "d"}, {"e"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Components() mismatch (-want +got):\n%s", diff)
	}
}

func TestComponentsSingleVertexGraph(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddVertex("only"))

	got := g.Components()
	require.Equal(t, [][]string{{"only"}}, got)
}
