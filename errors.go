package planarity

import "errors"

// ErrConflictingConstraints is add_constraints's internal failure: a
// conflict pair cannot be expressed with L and R on opposite sides. This
// is itself a proof of non-planarity, not a diagnostic about malformed
// input; Planar collapses it to false. Only the unexported addConstraints
// returns it; testLR and Planar report the outcome as a bool.
var ErrConflictingConstraints = errors.New("planarity: conflicting constraints in add_constraints")
