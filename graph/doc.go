// Package graph provides a small, thread-safe, in-memory Graph ADT:
// vertices and edges identified by string IDs, with configurable
// directedness, weights, self-loops, and parallel edges.
//
// It exists to give the sibling planarity package (and the builder
// package's canonical fixtures) a concrete, reusable graph store to run
// against in tests and examples; planarity.FromGraph adapts it to the
// planarity.Graph interface, which Graph does not implement itself. The package
// does not know anything about planarity; it is a general-purpose
// graph store usable on its own.
//
// Concurrency: two separate sync.RWMutex locks protect vertex and
// edge/adjacency state respectively, so graphs can be built and
// queried safely from multiple goroutines.
package graph
