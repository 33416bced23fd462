package planarity

import "github.com/katalvlaran/planarity/dfswalk"

// orient runs phase 1 on comp: it orients every undirected edge into a
// tree edge or a back edge of a palm tree rooted at local vertex 0,
// computing height, lowpt, lowpt2, lowptEdge and nestingDepth along the
// way. comp.rawEdges and comp.incident must already be populated;
// finalizeEdgeTables must have been called.
//
// Recursion is unrolled onto a dfswalk.Stack: the component may be
// larger than the host's native call-stack budget. Skipping the reverse
// traversal of parent_edge[v] is subsumed by the oriented[] check below
// — an edge is marked oriented the instant either of its two traversal
// attempts claims it, so the second attempt (from either direction)
// always finds it already claimed.
func orient(comp *component) {
	root := 0
	comp.height[root] = 0

	stack := dfswalk.NewStack(comp.n)
	stack.Push(root, -1, comp.incident[root])

	for !stack.Empty() {
		top := stack.Top()
		v := top.Vertex

		if top.Done() {
			finishVertexOrientation(comp, v)
			stack.Pop()

			if stack.Empty() {
				break
			}

			// The tree edge that led into v is now fully finalized;
			// merge it into v's parent's own parent edge, continuing
			// the upward propagation of lowpt/lowpt2/lowptEdge.
			pe := comp.parentEdge[v]
			if pe != -1 {
				u := comp.orientedFrom[pe]
				if grandparentEdge := comp.parentEdge[u]; grandparentEdge != -1 {
					mergeLowpt(comp, grandparentEdge, comp.lowpt[pe], comp.lowpt2[pe], comp.lowptEdge[pe])
				}
			}

			continue
		}

		eid := top.Next()
		if comp.oriented[eid] {
			continue
		}

		w := comp.other(eid, v)
		if w == v {
			// Self-loop on otherwise simple input: drop it rather than
			// orient a degenerate edge.
			comp.oriented[eid] = true
			continue
		}

		comp.oriented[eid] = true
		comp.orientedFrom[eid] = v
		comp.orientedTo[eid] = w
		comp.adjOriented[v] = append(comp.adjOriented[v], eid)

		if comp.height[w] == -1 {
			// Tree edge: descend. lowpt/lowpt2 start at height[v], the
			// source, not height[w]: a leaf or dead-end subtree never
			// lowers them further, so anything else would leave
			// lowpt[e] > height[source(e)] once the subtree finishes.
			comp.isTree[eid] = true
			hw := comp.height[v] + 1
			comp.lowpt[eid] = comp.height[v]
			comp.lowpt2[eid] = comp.height[v]
			comp.lowptEdge[eid] = eid // trivial placeholder until a real back edge overwrites it

			comp.parentEdge[w] = eid
			comp.height[w] = hw

			stack.Push(w, eid, comp.incident[w])
		} else {
			// Back edge: fully determined immediately, no recursion.
			comp.lowpt[eid] = comp.height[w]
			comp.lowpt2[eid] = comp.height[v]
			comp.lowptEdge[eid] = eid

			if pe := comp.parentEdge[v]; pe != -1 {
				mergeLowpt(comp, pe, comp.lowpt[eid], comp.lowpt2[eid], comp.lowptEdge[eid])
			}
		}
	}
}

// finishVertexOrientation sets nesting_depth for every edge leaving v,
// once all of v's incident edges have been classified.
func finishVertexOrientation(comp *component, v int) {
	for _, e := range comp.adjOriented[v] {
		nd := 2 * comp.lowpt[e]
		if comp.isTree[e] && comp.lowpt2[e] < comp.height[v] {
			nd++
		}
		comp.nestingDepth[e] = nd
	}
}

// mergeLowpt folds a child contribution (ell, ell2, realized by ellEdge)
// into target's (lowpt, lowpt2, lowptEdge) using the standard three-case
// comparison. lowptEdge propagates alongside lowpt: whichever edge currently
// realizes the minimum is remembered, so a tree edge's lowptEdge always
// names the actual back edge responsible, even across several tree-edge
// hops — this is what makes the Brandes-paper form lowpt[lowpt_edge[e]]
// in Step B of add_constraints meaningful for tree-edge-originated
// constraints, not just back edges (see the add_constraints doc comment).
func mergeLowpt(comp *component, target, ell, ell2, ellEdge int) {
	switch {
	case ell < comp.lowpt[target]:
		comp.lowpt2[target] = min(comp.lowpt[target], ell2)
		comp.lowpt[target] = ell
		comp.lowptEdge[target] = ellEdge
	case ell > comp.lowpt[target]:
		comp.lowpt2[target] = min(comp.lowpt2[target], ell)
	default:
		comp.lowpt2[target] = min(comp.lowpt2[target], ell2)
	}
}
