// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for Dense kernels.
//   • Offer a wrapper that hides *Dense so fallback paths get exercised.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/tapematrix/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Wrap ONLY the operand you want to de-opt; keep the other one *Dense to
// isolate path differences.
type hide struct{ matrix.Matrix }

// MustDense builds a *Dense from literal rows or fails the test.
func MustDense(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// requireRows asserts m holds exactly want.
func requireRows(t *testing.T, want [][]int64, m *matrix.Dense) {
	t.Helper()
	require.NotNil(t, m)
	require.Equal(t, want, m.Rows2D())
}
