package builder

import (
	"fmt"

	"github.com/katalvlaran/planarity/graph"
)

const methodCycle = "Cycle"

// Cycle returns a Constructor building C_n: n vertices in a single ring,
// vertex i joined to vertex (i+1) mod n.
func Cycle(n int) Constructor {
	return func(g *graph.Graph, cfg *builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: %w (need at least %d, got %d)", methodCycle, ErrTooFewVertices, MinCycleNodes, n)
		}

		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := g.AddVertex(ids[i]); err != nil {
				return fmt.Errorf("%s: %w", methodCycle, err)
			}
		}

		for i := 0; i < n; i++ {
			j := (i + 1) % n
			if _, err := g.AddEdge(ids[i], ids[j], DefaultEdgeWeight); err != nil {
				return fmt.Errorf("%s: %w", methodCycle, err)
			}
		}

		return nil
	}
}
