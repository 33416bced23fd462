package builder

import (
	"fmt"

	"github.com/katalvlaran/planarity/graph"
)

const methodWheel = "Wheel"

// Wheel returns a Constructor building W_n: a cycle of n-1 vertices plus a
// hub (ID CenterVertexID) joined to every rim vertex.
func Wheel(n int) Constructor {
	return func(g *graph.Graph, cfg *builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: %w (need at least %d, got %d)", methodWheel, ErrTooFewVertices, MinWheelNodes, n)
		}

		rim := n - 1
		if err := Cycle(rim)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}

		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}

		for i := 0; i < rim; i++ {
			rimID := cfg.idFn(i)
			if _, err := g.AddEdge(CenterVertexID, rimID, DefaultEdgeWeight); err != nil {
				return fmt.Errorf("%s: %w", methodWheel, err)
			}
		}

		return nil
	}
}
