package matrix_test

import (
	"testing"

	"github.com/katalvlaran/tapematrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestMul_Basic checks the 2×2 textbook product on both code paths.
func TestMul_Basic(t *testing.T) {
	a := MustDense(t, [][]int64{{1, 2}, {3, 4}})
	b := MustDense(t, [][]int64{{5, 6}, {7, 8}})
	want := [][]int64{{19, 22}, {43, 50}}

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	requireRows(t, want, got)

	got, err = matrix.Mul(hide{a}, b)
	require.NoError(t, err)
	requireRows(t, want, got)
}

// TestMul_Rectangular multiplies 2×3 by 3×1.
func TestMul_Rectangular(t *testing.T) {
	a := MustDense(t, [][]int64{{1, 0, -1}, {2, 3, 4}})
	b := MustDense(t, [][]int64{{1}, {2}, {3}})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	requireRows(t, [][]int64{{-2}, {20}}, got)
}

// TestMul_Identity verifies A×I == A and I×A == A.
func TestMul_Identity(t *testing.T) {
	a := MustDense(t, [][]int64{{4, 1, 0}, {1, 4, 1}, {0, 1, 4}})
	id, err := matrix.Identity(3)
	require.NoError(t, err)

	right, err := matrix.Mul(a, id)
	require.NoError(t, err)
	require.True(t, right.Equal(a))

	left, err := matrix.Mul(id, hide{a})
	require.NoError(t, err)
	require.True(t, left.Equal(a))
}

// TestMul_DimensionMismatch: a 2×3 times a 2×2 must fail with both shapes attached.
func TestMul_DimensionMismatch(t *testing.T) {
	a := MustDense(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	b := MustDense(t, [][]int64{{1, 2}, {3, 4}})

	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	var de *matrix.DimensionError
	require.ErrorAs(t, err, &de)
	require.Equal(t, "Mul", de.Op)
	require.Equal(t, "2x3", de.A.String())
	require.Equal(t, "2x2", de.B.String())
	require.Contains(t, err.Error(), "first matrix size: 2x3")
}

// TestMul_DoesNotMutateInputs guards the pure-function contract.
func TestMul_DoesNotMutateInputs(t *testing.T) {
	a := MustDense(t, [][]int64{{1, 2}, {2, 1}})
	b := MustDense(t, [][]int64{{3, 0}, {0, 3}})

	_, err := matrix.Mul(a, b)
	require.NoError(t, err)
	requireRows(t, [][]int64{{1, 2}, {2, 1}}, a)
	requireRows(t, [][]int64{{3, 0}, {0, 3}}, b)
}

func TestMul_Nil(t *testing.T) {
	_, err := matrix.Mul(nil, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTranspose(t *testing.T) {
	a := MustDense(t, [][]int64{{1, 2, 3}, {4, 5, 6}})

	got, err := matrix.Transpose(a)
	require.NoError(t, err)
	requireRows(t, [][]int64{{1, 4}, {2, 5}, {3, 6}}, got)

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
