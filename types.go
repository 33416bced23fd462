package planarity

// Interval is a chain of back edges drawn on the same side of the palm
// tree, represented by its two ends: High (nearest the current vertex)
// and Low (deepest toward the root). Both fields hold dense edge ids
// local to the component under test; -1 means absent. An interval is
// empty iff both ends are absent.
type Interval struct {
	High, Low int
}

// Empty reports whether iv has neither endpoint.
func (iv Interval) Empty() bool {
	return iv.High == -1 && iv.Low == -1
}

// ConflictPair is two intervals that must be drawn on opposite sides of
// the tree edge currently being tested: L on one side, R on the other.
type ConflictPair struct {
	L, R Interval
}

// rawEdge is one undirected input edge before phase 1 assigns it a
// direction, keyed by dense local vertex indices within one component.
type rawEdge struct {
	u, v int
}

// component holds every table the two-phase test reads and writes for a
// single connected component. It is built fresh by the driver, consumed
// by orient and testLR, and discarded once a verdict is known: no
// component's state outlives its own test.
//
// Edge-keyed tables (lowpt, lowpt2, nestingDepth, ref, side, lowptEdge,
// orientedFrom, orientedTo, isTree) are parallel arrays indexed by the
// dense edge id assigned when the edge was first recorded in rawEdges,
// rather than a map keyed by (source, target): the component's edge
// count is fixed before either traversal starts, so a flat array avoids
// hashing on what is the hot path of both DFS passes.
type component struct {
	n int // vertex count
	m int // edge count

	rawEdges []rawEdge
	incident [][]int // incident[v] = edge ids touching v, any fixed order

	// phase 1: orientation + lowpoints
	height       []int
	parentEdge   []int // edge id entering v; -1 at the DFS root
	oriented     []bool
	orientedFrom []int
	orientedTo   []int
	isTree       []bool
	lowpt        []int
	lowpt2       []int
	lowptEdge    []int
	adjOriented  [][]int // per-vertex outgoing edges, discovery order until sorted for phase 2
	nestingDepth []int

	// phase 2: LR test
	ref         []int
	side        []int
	stackBottom []*ConflictPair
	stack       []*ConflictPair
}

func newComponent(n int) *component {
	c := &component{
		n:        n,
		incident: make([][]int, n),
		height:   make([]int, n),
		parentEdge: make([]int, n),
		adjOriented: make([][]int, n),
	}
	for i := range c.height {
		c.height[i] = -1
		c.parentEdge[i] = -1
	}
	return c
}

// addRawEdge records one undirected edge between local vertices u and v,
// assigning it the next dense edge id and linking it into both
// endpoints' incident lists (once, for a self-loop).
func (c *component) addRawEdge(u, v int) {
	eid := len(c.rawEdges)
	c.rawEdges = append(c.rawEdges, rawEdge{u: u, v: v})
	c.incident[u] = append(c.incident[u], eid)
	if u != v {
		c.incident[v] = append(c.incident[v], eid)
	}
}

// finalizeEdgeTables allocates the edge-keyed tables once m is known, with
// ref absent (-1), side defaulting to +1, and everything else zeroed.
func (c *component) finalizeEdgeTables() {
	c.m = len(c.rawEdges)
	c.oriented = make([]bool, c.m)
	c.orientedFrom = make([]int, c.m)
	c.orientedTo = make([]int, c.m)
	c.isTree = make([]bool, c.m)
	c.lowpt = make([]int, c.m)
	c.lowpt2 = make([]int, c.m)
	c.lowptEdge = make([]int, c.m)
	c.nestingDepth = make([]int, c.m)
	c.ref = make([]int, c.m)
	c.side = make([]int, c.m)
	c.stackBottom = make([]*ConflictPair, c.m)

	for e := 0; e < c.m; e++ {
		c.ref[e] = -1
		c.side[e] = 1
	}
}

// other returns the endpoint of raw edge eid that is not v (v itself, for
// a self-loop).
func (c *component) other(eid, v int) int {
	e := c.rawEdges[eid]
	if e.u == v {
		return e.v
	}
	return e.u
}

//-- conflict-pair stack S --

func (c *component) pushPair(p *ConflictPair) {
	c.stack = append(c.stack, p)
}

func (c *component) popPair() *ConflictPair {
	p := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return p
}

// topPair returns the current top of S, or nil if S is empty. Frames
// compare against this pointer for identity, not value equality, since
// stack_bottom markers must recognize the exact pair instance observed
// before a descent, even if later pairs happen to hold equal fields.
func (c *component) topPair() *ConflictPair {
	if len(c.stack) == 0 {
		return nil
	}
	return c.stack[len(c.stack)-1]
}

func (c *component) pairStackEmpty() bool {
	return len(c.stack) == 0
}
