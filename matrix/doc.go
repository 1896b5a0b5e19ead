// Package matrix offers dense square tables keyed by integer positions.
//
// The matrix package provides:
//
//   - Square[T], an n×n row-major table with bounds-checked At/Set and live
//     Row views for hot loops.
//   - Clone/Equal helpers used to snapshot and compare derived tables.
//
// Tables are best for dense or small graphs where O(V²) memory is
// acceptable; the floyd package stores its distance and next-hop tables here.
package matrix
