// SPDX-License-Identifier: MIT

// Package tape - BandCodec: dense ⇄ compact band conversion.
//
// Index map for bandwidth m and diagonal offset k in [0, m):
//
//	storage[i][m-1-k] = dense[i][i-k] = dense[i-k][i]   for i in [k, n)
//
// Encode reads the lower triangle only; Decode writes both halves from the
// same cell, so a decoded matrix is symmetric whatever the storage holds.

package tape

import (
	"fmt"

	"github.com/katalvlaran/tapematrix/matrix"
)

// Encode packs a symmetric matrix into compact storage of bandwidth bw.
//
// Implementation:
//   - Stage 1: matrix.ValidateSymmetric (nil → square → symmetric).
//   - Stage 2: check 1 <= bw <= n.
//   - Stage 3: copy diagonal k into column bw-1-k, rows k..n-1.
//
// Behavior highlights:
//   - A bw narrower than the matrix's band silently drops the outer
//     diagonals. Use EncodeStrict to reject that instead.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNotSymmetric.
//   - ErrBandwidthRange.
//
// Complexity: O(n*bw).
func Encode(a matrix.Matrix, bw int) (*Storage, error) {
	if err := matrix.ValidateSymmetric(a); err != nil {
		return nil, codecErrorf(opEncode, err)
	}

	return encode(a, bw, opEncode)
}

// encode assumes a is a validated symmetric square matrix.
func encode(a matrix.Matrix, bw int, tag string) (*Storage, error) {
	n := a.Rows()
	if bw < 1 || bw > n {
		return nil, codecErrorf(tag, fmt.Errorf("bandwidth %d for order %d: %w", bw, n, ErrBandwidthRange))
	}

	s := newStorage(n, bw)
	var (
		i, k int
		v    int64
		err  error
	)
	for k = 0; k < bw; k++ {
		for i = k; i < n; i++ {
			if v, err = a.At(i, i-k); err != nil {
				return nil, codecErrorf(tag, err)
			}
			s.data[i*bw+bw-1-k] = v
		}
	}

	return s, nil
}

// EncodeStrict is the opt-in validating encoder: identical to Encode, but it
// fails with ErrBandTruncated instead of dropping non-zero entries that lie
// outside the band.
//
// Errors: those of Encode, plus ErrBandTruncated.
// Complexity: O(n²).
func EncodeStrict(a matrix.Matrix, bw int) (*Storage, error) {
	if err := matrix.ValidateSymmetric(a); err != nil {
		return nil, codecErrorf(opEncodeStrict, err)
	}
	need, err := MaxOffsetBandwidth(a)
	if err != nil {
		return nil, codecErrorf(opEncodeStrict, err)
	}
	if need > bw && bw >= 1 && bw <= a.Rows() {
		return nil, codecErrorf(opEncodeStrict,
			fmt.Errorf("bandwidth %d, matrix needs %d: %w", bw, need, ErrBandTruncated))
	}

	return encode(a, bw, opEncodeStrict)
}

// Compress validates symmetry, detects the bandwidth with DetectBandwidth and
// encodes with it. This is the path every loaded or computed matrix takes.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNotSymmetric.
func Compress(a matrix.Matrix) (*Storage, error) {
	if err := matrix.ValidateSymmetric(a); err != nil {
		return nil, codecErrorf(opCompress, err)
	}
	bw, err := DetectBandwidth(a)
	if err != nil {
		return nil, codecErrorf(opCompress, err)
	}

	return encode(a, bw, opCompress)
}

// CompressStrict is Compress followed by the EncodeStrict check: it refuses
// matrices whose detected bandwidth would lose entries.
func CompressStrict(a matrix.Matrix) (*Storage, error) {
	bw, err := DetectBandwidth(a)
	if err != nil {
		return nil, codecErrorf(opCompress, err)
	}

	return EncodeStrict(a, bw)
}

// Decode rebuilds the dense symmetric n×n matrix from compact storage.
// The result is freshly allocated; s is never modified.
//
// Errors:
//   - ErrMalformedStorage (nil, m <= 0, m > n, cell count mismatch).
//
// Complexity: O(n²) for allocation, O(n*m) for the band copy.
func Decode(s *Storage) (*matrix.Dense, error) {
	if err := s.validate(); err != nil {
		return nil, codecErrorf(opDecode, err)
	}

	n, m := s.n, s.m
	rows := make([][]int64, n)
	var i, k int
	for i = 0; i < n; i++ {
		rows[i] = make([]int64, n)
	}
	for k = 0; k < m; k++ {
		for i = k; i < n; i++ {
			v := s.data[i*m+m-1-k]
			rows[i][i-k] = v
			rows[i-k][i] = v
		}
	}

	d, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, codecErrorf(opDecode, err)
	}

	return d, nil
}
