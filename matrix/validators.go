// SPDX-License-Identifier: MIT
// Package matrix - validators.
//
// Every check returns a sentinel tagged with the validator name, so callers
// match with errors.Is. Composite checks run in a fixed order:
// NotNil, then Square, then Symmetric. Nothing allocates on success.

package matrix

import "fmt"

// validatorErrorf prefixes err with the validator name.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports a nil interface or a typed-nil *Dense hidden inside it.
func isNil(m Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*Dense)

	return ok && d == nil
}

// ValidateNotNil rejects a nil matrix.
//
// Returns ErrNilMatrix if m == nil (including a typed-nil *Dense).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// IsSymmetric reports whether m is square and M[i][j] == M[j][i] for every
// 0 ≤ i, j < n. A nil or non-square matrix is never symmetric.
// Complexity: O(n²) time, O(1) space.
func IsSymmetric(m Matrix) bool {
	if ValidateSquare(m) != nil {
		return false
	}
	// Fast path on the flat buffer.
	if d, ok := m.(*Dense); ok {
		return denseSymmetric(d)
	}

	n := m.Rows()
	var (
		i, j     int
		aij, aji int64
		err      error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ { // strict upper triangle
			if aij, err = m.At(i, j); err != nil {
				return false
			}
			if aji, err = m.At(j, i); err != nil {
				return false
			}
			if aij != aji {
				return false
			}
		}
	}

	return true
}

// denseSymmetric compares mirrored cells directly on the row-major buffer.
func denseSymmetric(d *Dense) bool {
	n := d.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if d.data[i*n+j] != d.data[j*n+i] {
				return false
			}
		}
	}

	return true
}

// ValidateSymmetric is the gate form of IsSymmetric: NotNil → Square → Symmetric.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNotSymmetric.
// Complexity: O(n²).
func ValidateSymmetric(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if !IsSymmetric(m) {
		return validatorErrorf("ValidateSymmetric", ErrNotSymmetric)
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
//
// A shape mismatch is reported as *DimensionError carrying both shapes.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return &DimensionError{Op: "ValidateMulCompatible", A: ShapeOf(a), B: ShapeOf(b)}
	}

	return nil
}
