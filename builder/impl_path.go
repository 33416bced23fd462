package builder

import (
	"fmt"

	"github.com/katalvlaran/planarity/graph"
)

const methodPath = "Path"

// Path returns a Constructor building P_n: n vertices in a line, vertex
// i-1 joined to vertex i.
func Path(n int) Constructor {
	return func(g *graph.Graph, cfg *builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: %w (need at least %d, got %d)", methodPath, ErrTooFewVertices, MinPathNodes, n)
		}

		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := g.AddVertex(ids[i]); err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
		}

		for i := 1; i < n; i++ {
			if _, err := g.AddEdge(ids[i-1], ids[i], DefaultEdgeWeight); err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
		}

		return nil
	}
}
