// Package dfswalk provides an explicit work-stack frame type shared by the
// planarity package's two depth-first traversals (orientation and the LR
// test). Both traversals are naturally recursive, but must tolerate DFS
// paths longer than the host's native call-stack budget, so both are
// written iteratively against this shared Frame/Stack pair instead of
// recursing directly.
//
// A recursive walker normally bundles "current vertex, neighbor iteration
// state, parent bookkeeping" into one struct consulted by a loop.
// dfswalk.Frame generalizes that bundle with an index-based neighbor
// cursor so either traversal can suspend mid-vertex and resume later,
// which a flat call-stack frame does for free but an explicit stack
// cannot without saving that cursor itself.
package dfswalk
