package builder

import (
	"fmt"

	"github.com/katalvlaran/planarity/graph"
)

const methodBipartite = "CompleteBipartite"

// CompleteBipartite returns a Constructor building K_{n1,n2}: two vertex
// sets, "L0".."L(n1-1)" and "R0".."R(n2-1)", with every cross-pair joined
// and no intra-set edges.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *graph.Graph, cfg *builderConfig) error {
		if n1 < MinBipartiteSide || n2 < MinBipartiteSide {
			return fmt.Errorf("%s: %w (need at least %d per side, got %d and %d)", methodBipartite, ErrTooFewVertices, MinBipartiteSide, n1, n2)
		}

		left := make([]string, n1)
		for i := 0; i < n1; i++ {
			left[i] = "L" + cfg.idFn(i)
			if err := g.AddVertex(left[i]); err != nil {
				return fmt.Errorf("%s: %w", methodBipartite, err)
			}
		}

		right := make([]string, n2)
		for i := 0; i < n2; i++ {
			right[i] = "R" + cfg.idFn(i)
			if err := g.AddVertex(right[i]); err != nil {
				return fmt.Errorf("%s: %w", methodBipartite, err)
			}
		}

		for _, l := range left {
			for _, r := range right {
				if _, err := g.AddEdge(l, r, DefaultEdgeWeight); err != nil {
					return fmt.Errorf("%s: %w", methodBipartite, err)
				}
			}
		}

		return nil
	}
}
