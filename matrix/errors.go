// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors (plus the typed
// DimensionError) used across the matrix package. Algorithms return these
// sentinels and tests check them via errors.Is. No exported function panics
// on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so log lines are easy to grep.
// Call sites wrap with fmt.Errorf("ctx: %w", ErrX); callers match via errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> dimension mismatch -> symmetry.

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0, c<=0
	// or ragged rows on ingestion).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNotSymmetric signals that M[i][j] != M[j][i] for some pair.
	ErrNotSymmetric = errors.New("matrix: matrix is not symmetric")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// Shape is a (rows, cols) pair used in diagnostics.
type Shape struct {
	Rows int
	Cols int
}

// String renders the shape as "RxC".
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

// ShapeOf returns the shape of m. A nil matrix has shape 0x0.
func ShapeOf(m Matrix) Shape {
	if m == nil {
		return Shape{}
	}

	return Shape{Rows: m.Rows(), Cols: m.Cols()}
}

// DimensionError carries both operand shapes of a failed product.
// errors.Is(err, ErrDimensionMismatch) holds for every *DimensionError.
type DimensionError struct {
	Op string // operation tag, e.g. "Mul"
	A  Shape  // left operand
	B  Shape  // right operand
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: first matrix size: %s, second matrix size: %s: %v",
		e.Op, e.A, e.B, ErrDimensionMismatch)
}

// Unwrap exposes ErrDimensionMismatch to errors.Is.
func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }
