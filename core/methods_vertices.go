// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() yields vertices in insertion order.
//   - Neighbors() yields arcs in insertion order.
package core

import (
	"fmt"
	"iter"
)

// AddVertex inserts a new vertex with the given key.
//
// Implementation:
//   - Stage 1: Reject keys already present in the index (ErrDuplicateVertex).
//   - Stage 2: Append a fresh Vertex to the arena and record its index.
//
// Behavior highlights:
//   - Not idempotent: callers are expected to check HasVertex first and treat
//     ErrDuplicateVertex as a recoverable usage error.
//   - A failed call leaves the graph untouched.
//
// Errors:
//   - ErrDuplicateVertex: key already exists.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[K, W]) AddVertex(key K) error {
	if _, exists := g.index[key]; exists {
		return fmt.Errorf("%w: %v", ErrDuplicateVertex, key)
	}

	idx := len(g.vertices)
	g.vertices = append(g.vertices, &Vertex[K, W]{
		key:    key,
		index:  idx,
		byDest: make(map[int]int),
		owner:  g,
	})
	g.index[key] = idx

	return nil
}

// HasVertex reports whether key is a vertex of g.
// Complexity: O(1).
func (g *Graph[K, W]) HasVertex(key K) bool {
	_, ok := g.index[key]

	return ok
}

// Vertex returns the vertex stored under key, or ErrUnknownVertex.
// Complexity: O(1).
func (g *Graph[K, W]) Vertex(key K) (*Vertex[K, W], error) {
	idx, ok := g.index[key]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownVertex, key)
	}

	return g.vertices[idx], nil
}

// VertexAt returns the vertex at arena position i.
// Indices run from 0 to VertexCount()-1 in insertion order.
func (g *Graph[K, W]) VertexAt(i int) (*Vertex[K, W], bool) {
	if i < 0 || i >= len(g.vertices) {
		return nil, false
	}

	return g.vertices[i], true
}

// VertexCount returns the number of vertices.
func (g *Graph[K, W]) VertexCount() int { return len(g.vertices) }

// Vertices returns a lazy sequence over all vertices in insertion order.
//
// Each call starts a fresh iteration. The sequence observes the arena length
// at the moment iteration begins.
func (g *Graph[K, W]) Vertices() iter.Seq[*Vertex[K, W]] {
	return func(yield func(*Vertex[K, W]) bool) {
		snapshot := g.vertices[:len(g.vertices):len(g.vertices)]
		for _, v := range snapshot {
			if !yield(v) {
				return
			}
		}
	}
}

// Key returns the immutable key of v.
func (v *Vertex[K, W]) Key() K { return v.key }

// Index returns the stable arena position of v inside its graph.
func (v *Vertex[K, W]) Index() int { return v.index }

// OutDegree returns the number of outgoing edges of v.
func (v *Vertex[K, W]) OutDegree() int { return len(v.out) }

// Neighbors returns a lazy sequence of (neighbor, weight) pairs for every
// outgoing edge of v, in the order the edges were added.
//
// Complexity: O(1) to create, O(deg(v)) to drain.
func (v *Vertex[K, W]) Neighbors() iter.Seq2[*Vertex[K, W], W] {
	return func(yield func(*Vertex[K, W], W) bool) {
		out := v.out[:len(v.out):len(v.out)]
		for _, a := range out {
			if !yield(v.owner.vertices[a.to], a.weight) {
				return
			}
		}
	}
}

// PointsTo reports whether v has an outgoing edge to dest.
func (v *Vertex[K, W]) PointsTo(dest *Vertex[K, W]) bool {
	if dest == nil || dest.owner != v.owner {
		return false
	}
	_, ok := v.byDest[dest.index]

	return ok
}
