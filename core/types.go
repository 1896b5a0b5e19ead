// Package core defines the central Graph, Vertex, and Edge types of a keyed,
// directed, weighted graph.
//
// This file declares the Weight constraint, Vertex, Edge, Graph, sentinel
// errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrDuplicateVertex - vertex key is already present.
//	ErrDuplicateEdge   - an edge for the ordered (src, dest) pair is already present.
//	ErrUnknownVertex   - requested vertex does not exist.
//	ErrBadWeight       - weight is NaN or ±Inf.
package core

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for core graph operations.
var (
	// ErrDuplicateVertex indicates an AddVertex with a key that already exists.
	ErrDuplicateVertex = errors.New("core: vertex already exists")

	// ErrDuplicateEdge indicates a second edge for the same ordered (src, dest) pair.
	ErrDuplicateEdge = errors.New("core: edge already exists")

	// ErrUnknownVertex indicates an operation referenced a non-existent vertex.
	ErrUnknownVertex = errors.New("core: vertex does not exist")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: weight must be finite")
)

// Weight is the set of numeric types usable as edge weights.
// Any integer or floating-point type qualifies; "no edge" is never encoded
// in the weight itself.
type Weight interface {
	constraints.Integer | constraints.Float
}

// arc is one outgoing edge stored inside its source vertex.
// to is the arena index of the destination vertex.
type arc[W Weight] struct {
	to     int
	weight W
}

// Vertex is a uniquely keyed node owned by exactly one Graph.
//
// Outgoing arcs are kept in insertion order; byDest maps a destination
// index to its position in out for O(1) duplicate checks.
type Vertex[K comparable, W Weight] struct {
	key    K
	index  int
	out    []arc[W]
	byDest map[int]int
	owner  *Graph[K, W]
}

// Edge is a read-only view of one directed edge.
type Edge[K comparable, W Weight] struct {
	// From is the source vertex key.
	From K

	// To is the destination vertex key.
	To K

	// Weight is the stored edge weight.
	Weight W
}

// Graph is a directed weighted graph with at most one edge per ordered pair.
//
// Vertices live in an arena (vertices) in insertion order; index resolves a
// key to its arena position. Vertices are never removed, so indices are
// stable for the lifetime of the graph.
//
// Graph is not safe for concurrent mutation.
type Graph[K comparable, W Weight] struct {
	vertices  []*Vertex[K, W] // arena, insertion order
	index     map[K]int       // key → arena index
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph[K comparable, W Weight]() *Graph[K, W] {
	return &Graph[K, W]{
		index: make(map[K]int),
	}
}
