package builder

import (
	"fmt"

	"github.com/katalvlaran/planarity/graph"
)

const methodStar = "Star"

// Star returns a Constructor building K_{1,n-1}: a hub vertex (ID
// CenterVertexID) joined to n-1 leaves.
func Star(n int) Constructor {
	return func(g *graph.Graph, cfg *builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: %w (need at least %d, got %d)", methodStar, ErrTooFewVertices, MinStarNodes, n)
		}

		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: %w", methodStar, err)
		}

		for i := 0; i < n-1; i++ {
			leaf := cfg.idFn(i)
			if err := g.AddVertex(leaf); err != nil {
				return fmt.Errorf("%s: %w", methodStar, err)
			}
			if _, err := g.AddEdge(CenterVertexID, leaf, DefaultEdgeWeight); err != nil {
				return fmt.Errorf("%s: %w", methodStar, err)
			}
		}

		return nil
	}
}
