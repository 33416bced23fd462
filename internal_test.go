package planarity

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// buildPath returns an oriented, phase-1-annotated path component
// 0-1-...-(n-1).
func buildPath(n int) *component {
	comp := newComponent(n)
	for i := 0; i < n-1; i++ {
		comp.addRawEdge(i, i+1)
	}
	comp.finalizeEdgeTables()
	orient(comp)
	return comp
}

// buildStar returns an oriented, phase-1-annotated star component with
// hub 0 and leaves spokes..1.
func buildStar(spokes int) *component {
	comp := newComponent(spokes + 1)
	for i := 1; i <= spokes; i++ {
		comp.addRawEdge(0, i)
	}
	comp.finalizeEdgeTables()
	orient(comp)
	return comp
}

// assertPerEdgeInvariants checks, for every edge of comp, the two
// per-edge invariants orient must establish before phase 2 ever runs:
// lowpt never exceeds the height of the edge's source, and lowpt2 is
// never below lowpt.
func assertPerEdgeInvariants(t *testing.T, comp *component) {
	t.Helper()
	for e := 0; e < comp.m; e++ {
		src := comp.orientedFrom[e]
		require.LessOrEqualf(t, comp.lowpt[e], comp.height[src],
			"edge %d: lowpt=%d > height[source]=%d", e, comp.lowpt[e], comp.height[src])
		require.GreaterOrEqualf(t, comp.lowpt2[e], comp.lowpt[e],
			"edge %d: lowpt2=%d < lowpt=%d", e, comp.lowpt2[e], comp.lowpt[e])
	}
}

// assertEachEdgeOnce checks that every edge id of comp appears in
// exactly one vertex's adjOriented list, since orient assigns each edge
// to its source's outgoing list exactly once.
func assertEachEdgeOnce(t *testing.T, comp *component) {
	t.Helper()
	seen := make(map[int]int, comp.m)
	for v := 0; v < comp.n; v++ {
		for _, e := range comp.adjOriented[v] {
			seen[e]++
		}
	}
	for e := 0; e < comp.m; e++ {
		require.Equalf(t, 1, seen[e], "edge %d appears %d times across adjOriented, want 1", e, seen[e])
	}
}

func TestOrientLowptRespectsSourceHeight(t *testing.T) {
	comp := buildPath(3) // 0-1-2, edge 0: (0,1), edge 1: (1,2)

	assertPerEdgeInvariants(t, comp)

	wantLowpt := []int{0, 1}
	wantLowpt2 := []int{0, 1}
	if diff := cmp.Diff(wantLowpt, comp.lowpt); diff != "" {
		t.Errorf("lowpt mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantLowpt2, comp.lowpt2); diff != "" {
		t.Errorf("lowpt2 mismatch (-want +got):\n%s", diff)
	}
}

func TestOrientInvariantsOnStar(t *testing.T) {
	comp := buildStar(5)

	assertPerEdgeInvariants(t, comp)
	assertEachEdgeOnce(t, comp)

	// Every spoke is a leaf edge from the hub: its subtree never returns,
	// so lowpt must settle at height[0] == 0 for every one of them.
	for e := 0; e < comp.m; e++ {
		require.Equal(t, 0, comp.lowpt[e])
		require.Equal(t, 0, comp.lowpt2[e])
	}
}

func TestSortedAdjacencyIsNestingDepthMonotone(t *testing.T) {
	comp := buildStar(6)
	sortAdjacencyByNestingDepth(comp)

	for v := 0; v < comp.n; v++ {
		edges := comp.adjOriented[v]
		for i := 1; i < len(edges); i++ {
			require.LessOrEqualf(t, comp.nestingDepth[edges[i-1]], comp.nestingDepth[edges[i]],
				"vertex %d: adjOriented not nesting_depth-sorted at position %d", v, i)
		}
	}
}

func TestEachEdgeAppearsExactlyOnceInAdjOriented(t *testing.T) {
	comp := buildPath(5)
	assertEachEdgeOnce(t, comp)

	comp = buildStar(4)
	assertEachEdgeOnce(t, comp)
}

func TestPathPassesLRTest(t *testing.T) {
	comp := buildPath(4)
	sortAdjacencyByNestingDepth(comp)
	require.True(t, testLR(comp))

	// A tree has no back edges, so phase 2 must leave every conflict
	// pair untouched: the stack started and finished empty.
	require.True(t, comp.pairStackEmpty())
}
