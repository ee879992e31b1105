// SPDX-License-Identifier: MIT
// Package matrix provides operations on any Matrix implementation: matrix
// multiplication and transpose. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Kernels never mutate their inputs; every call allocates a fresh *Dense.
//   - Accumulation is plain int64; overflow wraps (documented limitation).

package matrix

import (
	"errors"
	"fmt"
)

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
)

// matrixErrorf prefixes err with the operation tag.
// A *DimensionError is re-tagged with the operation instead of wrapped, so the
// diagnostic keeps reading "Mul: first matrix size: ...".
func matrixErrorf(tag string, err error) error {
	var de *DimensionError
	if errors.As(err, &de) {
		return &DimensionError{Op: tag, A: de.A, B: de.B}
	}

	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the product a×b for a of shape r×l and b of shape l×c.
// result[i][j] = Σ_k a[i][k]*b[k][j].
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: allocate Dense(r, c).
//   - Stage 3: i-k-j loop on flat buffers when both operands are *Dense,
//     generic i-j-k loop through At otherwise.
//
// Errors:
//   - ErrNilMatrix.
//   - *DimensionError (errors.Is ErrDimensionMismatch) when a.Cols != b.Rows.
//
// Complexity:
//   - Time O(r*l*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k int
		av, bv  int64
		current int64
	)
	// both *Dense: walk the flat buffers directly
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // zero contributes nothing; common in banded operands
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// any other Matrix goes through At
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = 0
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a new Dense; m is left as is.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	r, c := m.Rows(), m.Cols()
	res, err := NewDense(c, r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var (
		i, j int
		v    int64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*r+i] = v
		}
	}

	return res, nil
}
