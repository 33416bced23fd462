package builder

import (
	"fmt"

	"github.com/katalvlaran/planarity/graph"
)

const methodSubdivide = "SubdivideEdge"

// SubdivideEdge returns a Constructor that replaces the edge between from
// and to with a new vertex viaID joined to both: from-to becomes
// from-viaID-to. Planarity is subdivision invariant, so this gives
// boundary tests a cheap way to check that subdividing an edge of a
// planar graph never flips the verdict.
//
// SubdivideEdge must run after a Constructor that already created from and
// to and the edge between them; it fails if that edge is not present.
func SubdivideEdge(from, to, viaID string) Constructor {
	return func(g *graph.Graph, _ *builderConfig) error {
		if !g.HasEdge(from, to) {
			return fmt.Errorf("%s: %w: no edge between %q and %q", methodSubdivide, ErrConstructFailed, from, to)
		}

		edges, err := g.Neighbors(from)
		if err != nil {
			return fmt.Errorf("%s: %w", methodSubdivide, err)
		}
		var target string
		for _, e := range edges {
			if (e.From == from && e.To == to) || (e.To == from && e.From == to) {
				target = e.ID
				break
			}
		}
		if target == "" {
			return fmt.Errorf("%s: %w: edge ID between %q and %q not found", methodSubdivide, ErrConstructFailed, from, to)
		}
		if err := g.RemoveEdge(target); err != nil {
			return fmt.Errorf("%s: %w", methodSubdivide, err)
		}

		if err := g.AddVertex(viaID); err != nil {
			return fmt.Errorf("%s: %w", methodSubdivide, err)
		}
		if _, err := g.AddEdge(from, viaID, DefaultEdgeWeight); err != nil {
			return fmt.Errorf("%s: %w", methodSubdivide, err)
		}
		if _, err := g.AddEdge(viaID, to, DefaultEdgeWeight); err != nil {
			return fmt.Errorf("%s: %w", methodSubdivide, err)
		}

		return nil
	}
}
