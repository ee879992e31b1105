// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
// Cells are fixed-width signed integers (int64). Products are not guarded
// against overflow: int64 arithmetic wraps silently, callers that feed very
// large values must range-check upstream.
package matrix

// Matrix is a mutable rows×cols grid of int64 cells. Implementations keep
// At and Set O(1).
type Matrix interface {
	Rows() int
	Cols() int

	// At returns cell (i, j), or ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (int64, error)

	// Set writes v to cell (i, j); bad indices give ErrOutOfRange.
	Set(i, j int, v int64) error

	// Clone returns an independent copy.
	Clone() Matrix
}
