// SPDX-License-Identifier: MIT

// Package tape - compact diagonal-band storage.
//
// Layout (n rows, m columns, row-major, offset = i*m + j):
//   - column m-1 holds the main diagonal, column m-1-k holds diagonal k
//     (the k-th sub-diagonal, equal to the k-th super-diagonal by symmetry);
//   - cell (i, j) with i + j < m - 1 is padding: diagonal m-1-j does not
//     reach row i. Padding is zero and rendered blank.
//
// A Storage is immutable once built; every transformation returns a new one.

package tape

import (
	"fmt"
	"strconv"
	"strings"
)

// Storage is the compact n×m band of a symmetric n×n matrix.
type Storage struct {
	n, m int     // matrix order and bandwidth
	data []int64 // row-major n*m cells
}

var _ fmt.Stringer = (*Storage)(nil)

// newStorage allocates a zero n×m storage. Callers validate n and m.
func newStorage(n, m int) *Storage {
	return &Storage{n: n, m: m, data: make([]int64, n*m)}
}

// NewStorage builds a Storage from parsed rows.
//
// The bandwidth m is the length of the longest row. A shorter row is
// right-aligned: its missing leading cells are padding, which is legal only
// when every missing cell is a padding cell (len(row) >= min(m, i+1)).
//
// Errors:
//   - ErrMalformedStorage for no rows, an empty row, m > n, or a short row
//     that would drop a band cell.
//
// Complexity: O(n*m).
func NewStorage(rows [][]int64) (*Storage, error) {
	n := len(rows)
	if n == 0 {
		return nil, codecErrorf(opNewStorage, fmt.Errorf("no rows: %w", ErrMalformedStorage))
	}
	m := 0
	for _, row := range rows {
		if len(row) > m {
			m = len(row)
		}
	}
	if m == 0 {
		return nil, codecErrorf(opNewStorage, fmt.Errorf("empty rows: %w", ErrMalformedStorage))
	}
	if m > n {
		return nil, codecErrorf(opNewStorage,
			fmt.Errorf("bandwidth %d exceeds order %d: %w", m, n, ErrMalformedStorage))
	}

	s := newStorage(n, m)
	var i int
	for i = 0; i < n; i++ {
		row := rows[i]
		if len(row) < minInt(m, i+1) {
			return nil, codecErrorf(opNewStorage,
				fmt.Errorf("row %d has %d values, want at least %d: %w", i, len(row), minInt(m, i+1), ErrMalformedStorage))
		}
		// right-align: leading cells stay zero padding
		copy(s.data[i*m+m-len(row):(i+1)*m], row)
	}

	return s, nil
}

// validate checks the structural invariants Decode relies on.
func (s *Storage) validate() error {
	if s == nil {
		return fmt.Errorf("nil storage: %w", ErrMalformedStorage)
	}
	if s.n <= 0 || s.m <= 0 {
		return fmt.Errorf("shape %dx%d: %w", s.n, s.m, ErrMalformedStorage)
	}
	if s.m > s.n {
		return fmt.Errorf("bandwidth %d exceeds order %d: %w", s.m, s.n, ErrMalformedStorage)
	}
	if len(s.data) != s.n*s.m {
		return fmt.Errorf("%d cells for shape %dx%d: %w", len(s.data), s.n, s.m, ErrMalformedStorage)
	}

	return nil
}

// Order returns n, the order of the represented square matrix.
func (s *Storage) Order() int { return s.n }

// Bandwidth returns m, the number of stored diagonals (main diagonal included).
func (s *Storage) Bandwidth() int { return s.m }

// At returns storage cell (i, j); padding cells read as zero.
func (s *Storage) At(i, j int) (int64, error) {
	if i < 0 || i >= s.n || j < 0 || j >= s.m {
		return 0, fmt.Errorf("Storage.At(%d,%d): out of range %dx%d", i, j, s.n, s.m)
	}

	return s.data[i*s.m+j], nil
}

// IsPadding reports whether storage cell (i, j) is unused padding.
func (s *Storage) IsPadding(i, j int) bool { return i+j < s.m-1 }

// Rows2D exports the cells, padding included, as fresh rows.
func (s *Storage) Rows2D() [][]int64 {
	out := make([][]int64, s.n)
	var i int
	for i = 0; i < s.n; i++ {
		row := make([]int64, s.m)
		copy(row, s.data[i*s.m:(i+1)*s.m])
		out[i] = row
	}

	return out
}

// Equal reports whether both storages have the same shape and cells.
func (s *Storage) Equal(o *Storage) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.n != o.n || s.m != o.m {
		return false
	}
	for i := range s.data {
		if s.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String is a debug rendering: one bracketed row per line, padding as "_".
func (s *Storage) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < s.n; i++ {
		sb.WriteString("[")
		for j = 0; j < s.m; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			if s.IsPadding(i, j) {
				sb.WriteString("_")
				continue
			}
			sb.WriteString(strconv.FormatInt(s.data[i*s.m+j], 10))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// InBand reports whether dense cell (i, j) lies inside a band of width m,
// i.e. |i-j| <= m-1. Used to blank out-of-band cells on display.
func InBand(i, j, m int) bool {
	return absInt(i-j) <= m-1
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
