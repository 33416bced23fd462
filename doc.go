// Package planarity implements the left-right planarity test: a
// linear-time decision procedure, after Brandes' reformulation of the
// Hopcroft-Tarjan algorithm, for whether a finite simple undirected graph
// admits a plane embedding without edge crossings.
//
// The public surface is one pure predicate, Planar, over the Graph
// interface:
//
//	if planarity.Planar(planarity.FromGraph(g)) {
//		// g can be drawn without crossings
//	}
//
// Internally the test runs in two depth-first passes per connected
// component:
//
//  1. orient.go — orients the component into a palm tree rooted at an
//     arbitrary vertex, classifying each edge as a tree edge or a back
//     edge, and computes lowpt/lowpt2/nesting_depth for every oriented
//     edge.
//  2. lrtest.go — re-traverses the palm tree in nesting-depth order,
//     maintaining a stack of conflict pairs that encode which back edges
//     must be drawn on opposite sides of each tree edge; a conflict that
//     cannot be resolved is a proof of non-planarity.
//
// component.go drives both passes per component, after two fast
// rejections that never need a traversal: a directed graph is rejected
// outright, and a graph with more edges than Euler's formula allows for
// a planar graph (m > 3n-6, counted over the whole input) is rejected
// without running either phase.
//
// No component's working state outlives its own test: everything built
// in types.go is local to one call into testComponent and is discarded
// once that component's verdict is known. The package performs no I/O
// and holds no state between calls to Planar.
package planarity
