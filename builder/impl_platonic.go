package builder

import (
	"fmt"

	"github.com/katalvlaran/planarity/graph"
)

const methodPlatonic = "PlatonicSolid"

// PlatonicSolid returns a Constructor building the 1-skeleton (vertices and
// edges) of one of the five Platonic solids. When withCenter is true, an
// extra hub vertex (CenterVertexID) is added and joined to every other
// vertex — useful for constructing a non-planar variant of an otherwise
// planar solid graph for boundary testing.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(g *graph.Graph, cfg *builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: %w: %q", methodPlatonic, ErrUnknownPlatonic, name)
		}
		edges, ok := platonicEdgeSets[name]
		if !ok {
			return fmt.Errorf("%s: %w: %q", methodPlatonic, ErrUnknownPlatonic, name)
		}

		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := g.AddVertex(ids[i]); err != nil {
				return fmt.Errorf("%s: %w", methodPlatonic, err)
			}
		}

		for _, pair := range edges {
			if _, err := g.AddEdge(ids[pair[0]], ids[pair[1]], DefaultEdgeWeight); err != nil {
				return fmt.Errorf("%s: %w", methodPlatonic, err)
			}
		}

		if withCenter {
			if err := g.AddVertex(CenterVertexID); err != nil {
				return fmt.Errorf("%s: %w", methodPlatonic, err)
			}
			for _, id := range ids {
				if _, err := g.AddEdge(CenterVertexID, id, DefaultEdgeWeight); err != nil {
					return fmt.Errorf("%s: %w", methodPlatonic, err)
				}
			}
		}

		return nil
	}
}
