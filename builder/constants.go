package builder

// Canonical vertex IDs and feasibility floors, one per constructor family.
const (
	FirstVertexID  = "0"
	CenterVertexID = "Center"

	MinCompleteNodes  = 1
	MinCycleNodes     = 3
	MinPathNodes      = 2
	MinStarNodes      = 2
	MinWheelNodes     = 4
	MinBipartiteSide  = 1
	DefaultEdgeWeight = int64(0)
)
