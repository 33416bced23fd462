package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarity/builder"
)

func TestCompleteGraphShape(t *testing.T) {
	g, err := builder.BuildGraph([]builder.Constructor{builder.Complete(5)})
	require.NoError(t, err)
	require.Equal(t, 5, g.VertexCount())
	require.Equal(t, 10, g.EdgeCount()) // C(5,2)
}

func TestCompleteTooFewVertices(t *testing.T) {
	_, err := builder.BuildGraph([]builder.Constructor{builder.Complete(0)})
	require.True(t, errors.Is(err, builder.ErrTooFewVertices))
}

func TestCycleShape(t *testing.T) {
	g, err := builder.BuildGraph([]builder.Constructor{builder.Cycle(6)})
	require.NoError(t, err)
	require.Equal(t, 6, g.VertexCount())
	require.Equal(t, 6, g.EdgeCount())
}

func TestWheelShape(t *testing.T) {
	g, err := builder.BuildGraph([]builder.Constructor{builder.Wheel(6)})
	require.NoError(t, err)
	require.Equal(t, 6, g.VertexCount()) // 5 rim + 1 hub
	require.Equal(t, 10, g.EdgeCount())  // 5 rim edges + 5 spokes
}

func TestCompleteBipartiteShape(t *testing.T) {
	g, err := builder.BuildGraph([]builder.Constructor{builder.CompleteBipartite(3, 3)})
	require.NoError(t, err)
	require.Equal(t, 6, g.VertexCount())
	require.Equal(t, 9, g.EdgeCount())
}

func TestStarShape(t *testing.T) {
	g, err := builder.BuildGraph([]builder.Constructor{builder.Star(5)})
	require.NoError(t, err)
	require.Equal(t, 5, g.VertexCount())
	require.Equal(t, 4, g.EdgeCount())
}

func TestPathShape(t *testing.T) {
	g, err := builder.BuildGraph([]builder.Constructor{builder.Path(4)})
	require.NoError(t, err)
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 3, g.EdgeCount())
}

func TestPlatonicTetrahedronIsK4(t *testing.T) {
	g, err := builder.BuildGraph([]builder.Constructor{builder.PlatonicSolid(builder.Tetrahedron, false)})
	require.NoError(t, err)
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 6, g.EdgeCount())
}

func TestPlatonicUnknownName(t *testing.T) {
	_, err := builder.BuildGraph([]builder.Constructor{builder.PlatonicSolid("sphere", false)})
	require.True(t, errors.Is(err, builder.ErrUnknownPlatonic))
}

func TestSubdivideEdgePreservesVertexAndEdgeDelta(t *testing.T) {
	g, err := builder.BuildGraph([]builder.Constructor{
		builder.Complete(4),
		builder.SubdivideEdge("0", "1", "via"),
	})
	require.NoError(t, err)
	require.Equal(t, 5, g.VertexCount()) // +1 for the subdivision vertex
	require.Equal(t, 7, g.EdgeCount())   // K4 has 6 edges, one split into 2: net +1
	require.False(t, g.HasEdge("0", "1"))
	require.True(t, g.HasEdge("0", "via"))
	require.True(t, g.HasEdge("via", "1"))
}

func TestSubdivideEdgeMissingEdge(t *testing.T) {
	_, err := builder.BuildGraph([]builder.Constructor{
		builder.Path(3),
		builder.SubdivideEdge("0", "2", "via"),
	})
	require.True(t, errors.Is(err, builder.ErrConstructFailed))
}

func TestWithIDScheme(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.Constructor{builder.Path(3)},
		builder.WithIDScheme(func(idx int) string { return "v" + string(rune('a'+idx)) }),
	)
	require.NoError(t, err)
	require.True(t, g.HasVertex("va"))
	require.True(t, g.HasVertex("vb"))
	require.True(t, g.HasVertex("vc"))
}
