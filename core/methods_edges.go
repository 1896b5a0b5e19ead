// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/EdgeWeight/Edges/EdgeCount.
// Determinism:
//   - Edges() yields edges grouped by source vertex (insertion order), then
//     by arc insertion order within each source.
// AI-HINT (file):
//   - At most one edge per ordered (src, dest) pair; a second AddEdge returns
//     ErrDuplicateEdge and keeps the first weight.
//   - Endpoints are never auto-created; add vertices first.

package core

import (
	"fmt"
	"iter"
	"math"
)

// AddEdge records a directed edge src→dest with the given weight.
//
// Steps:
//  1. Validate the weight is finite (ErrBadWeight).
//  2. Resolve both endpoints (ErrUnknownVertex names the missing key).
//  3. Reject an existing (src, dest) pair (ErrDuplicateEdge).
//  4. Append the arc to src and index it by destination.
//
// Self-loops are accepted. A failed call never mutates the graph.
// Complexity: O(1) amortized.
func (g *Graph[K, W]) AddEdge(src, dest K, weight W) error {
	// 1) Weight validation: NaN or ±Inf would poison any distance table.
	if f := float64(weight); math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: %v", ErrBadWeight, weight)
	}

	// 2) Both endpoints must already be vertices.
	from, ok := g.index[src]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownVertex, src)
	}
	to, ok := g.index[dest]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownVertex, dest)
	}

	// 3) No parallel edges.
	v := g.vertices[from]
	if _, exists := v.byDest[to]; exists {
		return fmt.Errorf("%w: %v→%v", ErrDuplicateEdge, src, dest)
	}

	// 4) Store.
	v.byDest[to] = len(v.out)
	v.out = append(v.out, arc[W]{to: to, weight: weight})
	g.edgeCount++

	return nil
}

// HasEdge reports whether an edge src→dest exists.
// Unknown endpoints simply yield false.
// Complexity: O(1).
func (g *Graph[K, W]) HasEdge(src, dest K) bool {
	_, ok := g.EdgeWeight(src, dest)

	return ok
}

// EdgeWeight returns the weight of edge src→dest, or false if there is none.
// Complexity: O(1).
func (g *Graph[K, W]) EdgeWeight(src, dest K) (W, bool) {
	var zero W
	from, ok := g.index[src]
	if !ok {
		return zero, false
	}
	to, ok := g.index[dest]
	if !ok {
		return zero, false
	}
	v := g.vertices[from]
	pos, ok := v.byDest[to]
	if !ok {
		return zero, false
	}

	return v.out[pos].weight, true
}

// EdgeCount returns the number of edges.
func (g *Graph[K, W]) EdgeCount() int { return g.edgeCount }

// Edges returns a lazy sequence over every edge in deterministic order.
func (g *Graph[K, W]) Edges() iter.Seq[Edge[K, W]] {
	return func(yield func(Edge[K, W]) bool) {
		for v := range g.Vertices() {
			for n, w := range v.Neighbors() {
				if !yield(Edge[K, W]{From: v.key, To: n.key, Weight: w}) {
					return
				}
			}
		}
	}
}
