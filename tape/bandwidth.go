// SPDX-License-Identifier: MIT

package tape

import "github.com/katalvlaran/tapematrix/matrix"

// DetectBandwidth returns the band width m for a square matrix.
//
// Scan order (kept exactly; stored data depends on it):
//   - only cells with row + col <= n-1 are inspected;
//   - rows run from n-1 down to 0, columns from 0 up to n-1-row;
//   - the first non-zero cell (r, c) yields |r-c| + 1;
//   - no non-zero cell yields 1.
//
// Mirrored cells share row+col, so the scanned region is closed under
// transposition. The order is not monotone in |row-col| and the region skips
// the far triangle, so for some inputs the result is smaller than the true
// maximum offset + 1 (see MaxOffsetBandwidth). Encoding with such a result
// drops the entries outside the band.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
// Complexity: O(n²) worst case.
func DetectBandwidth(a matrix.Matrix) (int, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return 0, codecErrorf(opDetect, err)
	}

	n := a.Rows()
	var (
		i, j int
		v    int64
		err  error
	)
	for i = n - 1; i >= 0; i-- {
		for j = 0; j < n-i; j++ {
			if v, err = a.At(i, j); err != nil {
				return 0, codecErrorf(opDetect, err)
			}
			if v != 0 {
				return absInt(i-j) + 1, nil
			}
		}
	}

	return 1, nil
}

// MaxOffsetBandwidth returns max(|i-j|) + 1 over every non-zero cell, or 1
// for an all-zero matrix: the narrowest band that holds the matrix losslessly.
// It backs the strict encoders and never replaces DetectBandwidth.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
// Complexity: O(n²).
func MaxOffsetBandwidth(a matrix.Matrix) (int, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return 0, codecErrorf(opMaxOffset, err)
	}

	n := a.Rows()
	best := 1
	var (
		i, j int
		v    int64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if absInt(i-j)+1 <= best {
				continue
			}
			if v, err = a.At(i, j); err != nil {
				return 0, codecErrorf(opMaxOffset, err)
			}
			if v != 0 {
				best = absInt(i-j) + 1
			}
		}
	}

	return best, nil
}
