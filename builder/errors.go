package builder

import "errors"

// Sentinel errors returned by constructors when their arguments are
// infeasible. Wrap with fmt.Errorf("%w: ...") for added context; callers
// can still unwrap with errors.Is.
var (
	ErrTooFewVertices  = errors.New("builder: too few vertices")
	ErrUnknownPlatonic = errors.New("builder: unknown Platonic solid")
	ErrConstructFailed = errors.New("builder: constructor failed")
)
