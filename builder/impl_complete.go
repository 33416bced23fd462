package builder

import (
	"fmt"

	"github.com/katalvlaran/planarity/graph"
)

// methodComplete names this constructor for error messages.
const methodComplete = "Complete"

// Complete returns a Constructor building K_n: n vertices, every pair
// joined by an edge.
func Complete(n int) Constructor {
	return func(g *graph.Graph, cfg *builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: %w (need at least %d, got %d)", methodComplete, ErrTooFewVertices, MinCompleteNodes, n)
		}

		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := g.AddVertex(ids[i]); err != nil {
				return fmt.Errorf("%s: %w", methodComplete, err)
			}
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if _, err := g.AddEdge(ids[i], ids[j], DefaultEdgeWeight); err != nil {
					return fmt.Errorf("%s: %w", methodComplete, err)
				}
			}
		}

		return nil
	}
}
