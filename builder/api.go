package builder

import "github.com/katalvlaran/planarity/graph"

// Constructor populates g with a canonical topology given the resolved
// builderConfig. Constructors are returned by the Complete/Cycle/... family
// below rather than called directly, so that BuildGraph can apply
// BuilderOption values uniformly across however many Constructors it runs.
type Constructor func(g *graph.Graph, cfg *builderConfig) error

// BuildGraph creates a new graph.Graph, applies every option once to build
// a shared builderConfig, then runs each Constructor against it in order.
// Later constructors can add edges between vertices earlier ones created
// (e.g. SubdivideEdge splits an edge that an earlier Complete created).
func BuildGraph(constructors []Constructor, opts ...BuilderOption) (*graph.Graph, error) {
	cfg := newBuilderConfig(opts...)
	g := graph.NewGraph()

	for _, construct := range constructors {
		if err := construct(g, cfg); err != nil {
			return nil, err
		}
	}

	return g, nil
}
