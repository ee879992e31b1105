package tape_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tapematrix/matrix"
	"github.com/katalvlaran/tapematrix/tape"
	"github.com/stretchr/testify/require"
)

func mustDense(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

func mustStorage(t *testing.T, rows [][]int64) *tape.Storage {
	t.Helper()
	s, err := tape.NewStorage(rows)
	require.NoError(t, err)

	return s
}

// randomBanded returns a symmetric n×n matrix whose entries with |i-j| < bw
// are drawn from [-9, 9] and all others are zero.
func randomBanded(rng *rand.Rand, n, bw int) *matrix.Dense {
	m, _ := matrix.NewDense(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			if i-j >= bw {
				continue
			}
			v := int64(rng.Intn(19) - 9)
			_ = m.Set(i, j, v)
			_ = m.Set(j, i, v)
		}
	}

	return m
}

func TestEncode_Tridiagonal(t *testing.T) {
	m := mustDense(t, [][]int64{{4, 1, 0}, {1, 4, 1}, {0, 1, 4}})

	bw, err := tape.DetectBandwidth(m)
	require.NoError(t, err)
	require.Equal(t, 2, bw)

	s, err := tape.Encode(m, bw)
	require.NoError(t, err)
	require.Equal(t, 3, s.Order())
	require.Equal(t, 2, s.Bandwidth())
	require.Equal(t, [][]int64{{0, 4}, {1, 4}, {1, 4}}, s.Rows2D())
	require.True(t, s.IsPadding(0, 0))
	require.False(t, s.IsPadding(1, 0))
	require.Equal(t, "[_, 4]\n[1, 4]\n[1, 4]\n", s.String())

	back, err := tape.Decode(s)
	require.NoError(t, err)
	require.True(t, back.Equal(m))
}

func TestEncode_DiagonalOnly(t *testing.T) {
	m := mustDense(t, [][]int64{{2, 0}, {0, 3}})

	bw, err := tape.DetectBandwidth(m)
	require.NoError(t, err)
	require.Equal(t, 1, bw)

	s, err := tape.Encode(m, bw)
	require.NoError(t, err)
	require.Equal(t, [][]int64{{2}, {3}}, s.Rows2D())
}

func TestEncode_ZeroMatrixIsDiagonal(t *testing.T) {
	m, err := matrix.NewDense(4, 4)
	require.NoError(t, err)

	s, err := tape.Compress(m)
	require.NoError(t, err)
	require.Equal(t, 1, s.Bandwidth())
	require.Equal(t, [][]int64{{0}, {0}, {0}, {0}}, s.Rows2D())
}

func TestEncode_Errors(t *testing.T) {
	_, err := tape.Encode(nil, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = tape.Encode(mustDense(t, [][]int64{{1, 2}}), 1)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = tape.Encode(mustDense(t, [][]int64{{1, 2}, {3, 1}}), 2)
	require.ErrorIs(t, err, matrix.ErrNotSymmetric)

	sym := mustDense(t, [][]int64{{1, 2}, {2, 1}})
	_, err = tape.Encode(sym, 0)
	require.ErrorIs(t, err, tape.ErrBandwidthRange)
	_, err = tape.Encode(sym, 3)
	require.ErrorIs(t, err, tape.ErrBandwidthRange)
}

// A narrow band drops outer diagonals without error.
func TestEncode_NarrowBandTruncates(t *testing.T) {
	m := mustDense(t, [][]int64{{4, 1, 0}, {1, 4, 1}, {0, 1, 4}})

	s, err := tape.Encode(m, 1)
	require.NoError(t, err)
	require.Equal(t, [][]int64{{4}, {4}, {4}}, s.Rows2D())

	back, err := tape.Decode(s)
	require.NoError(t, err)
	require.Equal(t, [][]int64{{4, 0, 0}, {0, 4, 0}, {0, 0, 4}}, back.Rows2D())

	_, err = tape.EncodeStrict(m, 1)
	require.ErrorIs(t, err, tape.ErrBandTruncated)

	s, err = tape.EncodeStrict(m, 2)
	require.NoError(t, err)
	require.Equal(t, 2, s.Bandwidth())
}

func TestCompress_Errors(t *testing.T) {
	_, err := tape.Compress(mustDense(t, [][]int64{{1, 5}, {0, 1}}))
	require.ErrorIs(t, err, matrix.ErrNotSymmetric)

	_, err = tape.CompressStrict(mustDense(t, [][]int64{{1, 5}, {0, 1}}))
	require.ErrorIs(t, err, matrix.ErrNotSymmetric)
}

// Round-trip: decode(encode(M, b)) == M for the true bandwidth b and any wider band.
func TestRoundTrip_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 200; iter++ {
		n := 1 + rng.Intn(8)
		m := randomBanded(rng, n, 1+rng.Intn(n))

		b, err := tape.MaxOffsetBandwidth(m)
		require.NoError(t, err)

		for bw := b; bw <= n; bw++ {
			s, err := tape.Encode(m, bw)
			require.NoError(t, err)
			back, err := tape.Decode(s)
			require.NoError(t, err)
			require.True(t, back.Equal(m), "n=%d bw=%d\n%v", n, bw, m)
		}
	}
}

// Fully populated bands are always detected exactly, so Compress round-trips.
func TestCompress_RoundTripFullBand(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for bw := 1; bw <= n; bw++ {
			m, err := matrix.NewDense(n, n)
			require.NoError(t, err)
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					d := i - j
					if d < 0 {
						d = -d
					}
					if d < bw {
						require.NoError(t, m.Set(i, j, int64(10*d+1)))
					}
				}
			}

			s, err := tape.Compress(m)
			require.NoError(t, err)
			require.Equal(t, bw, s.Bandwidth(), "n=%d", n)

			back, err := tape.Decode(s)
			require.NoError(t, err)
			require.True(t, back.Equal(m))
		}
	}
}

// Decode is symmetric for every well-formed storage, padding garbage included.
func TestDecode_AlwaysSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 100; iter++ {
		n := 1 + rng.Intn(7)
		bw := 1 + rng.Intn(n)
		rows := make([][]int64, n)
		for i := range rows {
			rows[i] = make([]int64, bw)
			for j := range rows[i] {
				rows[i][j] = int64(rng.Intn(201) - 100)
			}
		}

		d, err := tape.Decode(mustStorage(t, rows))
		require.NoError(t, err)
		require.True(t, matrix.IsSymmetric(d))
	}
}

func TestDecode_Malformed(t *testing.T) {
	_, err := tape.Decode(nil)
	require.ErrorIs(t, err, tape.ErrMalformedStorage)

	_, err = tape.Decode(&tape.Storage{})
	require.ErrorIs(t, err, tape.ErrMalformedStorage)
}

func TestDecode_DoesNotShareStorage(t *testing.T) {
	s := mustStorage(t, [][]int64{{0, 4}, {1, 4}, {1, 4}})

	d, err := tape.Decode(s)
	require.NoError(t, err)
	require.NoError(t, d.Set(0, 0, 99))
	require.Equal(t, [][]int64{{0, 4}, {1, 4}, {1, 4}}, s.Rows2D())
}
