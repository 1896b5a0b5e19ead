// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Public indexers (At/Set/Row) MUST return these sentinels, never panic.
// Callers match them via errors.Is; methods wrap them with
// "Square.<Method>(row,col)" context.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested order is negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
