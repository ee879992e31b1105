// SPDX-License-Identifier: MIT

// Package matrix: constructors that ingest plain Go data.
package matrix

import "fmt"

// NewDenseFromRows builds an r×c Dense from a slice of equal-length rows.
// The input is copied; later mutations of rows do not affect the result.
//
// Errors:
//   - ErrBadShape when rows is empty, a row is empty, or rows are ragged.
//
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]int64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewDenseFromRows: %w", ErrBadShape)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("NewDenseFromRows: %w", err)
	}
	var i int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d values, want %d: %w",
				i, len(rows[i]), c, ErrBadShape)
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Identity returns the n×n identity matrix (bandwidth 1, unit diagonal).
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Identity: %w", err)
	}
	var i int
	for i = 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}
