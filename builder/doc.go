// Package builder provides canonical graph constructors used to build
// fixtures quickly and deterministically: complete graphs, cycles, wheels,
// bipartite graphs, paths, stars, and Platonic solids.
//
// Every constructor returns a Constructor, a closure that populates a
// github.com/katalvlaran/planarity/graph.Graph. BuildGraph runs one or more
// constructors against a freshly created graph and returns it.
//
// The package deliberately has no stochastic machinery (random sources,
// weight functions, sequence generators): Planar only cares about
// topology, so every edge here carries weight 0.
package builder
