// Package core provides a compact, generic in-memory directed weighted graph.
//
// The Graph G = (V,E) is keyed by any comparable type K and weighted by any
// integer or floating-point type W:
//
//   - Vertices live in an arena in insertion order; a key→index map resolves
//     keys, so every vertex has a stable integer Index().
//   - A directed edge (u, v, w) is stored only as an arc inside u pointing to
//     v's index. There is no separate edge entity.
//   - At most one edge per ordered pair; self-loops are allowed.
//   - Graphs only grow: no vertex or edge removal, no weight updates.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(key K) error                 // O(1), ErrDuplicateVertex
//	HasVertex(key K) bool                  // O(1)
//	Vertex(key K) (*Vertex, error)         // O(1), ErrUnknownVertex
//	VertexAt(i int) (*Vertex, bool)        // O(1)
//
//	// Edge lifecycle
//	AddEdge(src, dest K, w W) error        // O(1), ErrUnknownVertex / ErrDuplicateEdge / ErrBadWeight
//	HasEdge(src, dest K) bool              // O(1)
//	EdgeWeight(src, dest K) (W, bool)      // O(1)
//
//	// Enumeration (lazy, restartable, insertion order)
//	Vertices() iter.Seq[*Vertex]
//	Edges() iter.Seq[Edge]
//	(*Vertex).Neighbors() iter.Seq2[*Vertex, W]
//
//	// Counts
//	VertexCount() int
//	EdgeCount() int
//
// Errors are sentinels matched with errors.Is; the wrapped message names the
// offending key. The package performs no I/O and no logging.
package core
