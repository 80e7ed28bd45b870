// Package kernel_test contains unit tests for the sequential kernels.
package kernel_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/blockmul/kernel"
	"github.com/katalvlaran/blockmul/matrix"
	"github.com/katalvlaran/blockmul/partition"
	"github.com/stretchr/testify/require"
)

// mustRows builds a Dense from literal rows or fails the test.
func mustRows(t testing.TB, rows [][]int32) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	return m
}

// mustRandom builds a seeded n×n matrix with values in [0, max).
func mustRandom(t testing.TB, n int, seed int64, max int32) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewRandom(n, rand.New(rand.NewSource(seed)), max)
	require.NoError(t, err)
	return m
}

// naive is an independent i→j→k oracle built on At.
func naive(t testing.TB, a, b *matrix.Dense) [][]int32 {
	t.Helper()
	n := a.Rows()
	out := make([][]int32, n)
	for i := 0; i < n; i++ {
		out[i] = make([]int32, n)
		for j := 0; j < n; j++ {
			var sum int32
			for k := 0; k < n; k++ {
				av, err := a.At(i, k)
				require.NoError(t, err)
				bv, err := b.At(k, j)
				require.NoError(t, err)
				sum += av * bv
			}
			out[i][j] = sum
		}
	}
	return out
}

// TestMultiplyTwoByTwo pins the canonical scenario [[1,2],[3,4]]².
func TestMultiplyTwoByTwo(t *testing.T) {
	a := mustRows(t, [][]int32{{1, 2}, {3, 4}})
	c, err := kernel.Multiply(a, a)
	require.NoError(t, err)
	require.Equal(t, [][]int32{{7, 10}, {15, 22}}, c.ToRows())
}

// TestMultiplyMatchesNaive checks random inputs against the At-based oracle.
func TestMultiplyMatchesNaive(t *testing.T) {
	for _, n := range []int{1, 3, 8, 17} {
		a := mustRandom(t, n, int64(n), 100)
		b := mustRandom(t, n, int64(n)+1000, 100)
		c, err := kernel.Multiply(a, b)
		require.NoError(t, err)
		require.Equal(t, naive(t, a, b), c.ToRows(), "n=%d", n)
	}
}

// TestMultiplyIdentity A·I == I·A == A.
func TestMultiplyIdentity(t *testing.T) {
	a := mustRandom(t, 6, 7, 1000)
	id, err := matrix.NewIdentity(6)
	require.NoError(t, err)

	left, err := kernel.Multiply(id, a)
	require.NoError(t, err)
	require.True(t, left.Equal(a))

	right, err := kernel.Multiply(a, id)
	require.NoError(t, err)
	require.True(t, right.Equal(a))
}

// TestMultiplyValidation covers the operand sentinels.
func TestMultiplyValidation(t *testing.T) {
	sq := mustRows(t, [][]int32{{1, 2}, {3, 4}})
	rect := mustRows(t, [][]int32{{1, 2, 3}, {4, 5, 6}})
	big := mustRandom(t, 3, 1, 10)

	_, err := kernel.Multiply(nil, sq)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = kernel.Multiply(sq, rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = kernel.Multiply(sq, big)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMultiplyWrapsByDefault mirrors int32 two's-complement arithmetic.
func TestMultiplyWrapsByDefault(t *testing.T) {
	a := mustRows(t, [][]int32{{math.MaxInt32}})
	b := mustRows(t, [][]int32{{2}})

	c, err := kernel.Multiply(a, b)
	require.NoError(t, err)
	v, err := c.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, int32(-2), v)
}

// TestMultiplyOverflowCheck fails instead of wrapping in checked mode, and
// agrees with the wrapping mode when nothing overflows.
func TestMultiplyOverflowCheck(t *testing.T) {
	a := mustRows(t, [][]int32{{math.MaxInt32, 0}, {1, 1}})
	b := mustRows(t, [][]int32{{1, 1}, {1, 1}})

	_, err := kernel.Multiply(a, b, kernel.WithOverflowCheck())
	require.NoError(t, err) // MaxInt32 * 1 still fits

	b2 := mustRows(t, [][]int32{{2, 0}, {0, 0}})
	_, err = kernel.Multiply(a, b2, kernel.WithOverflowCheck())
	require.ErrorIs(t, err, kernel.ErrOverflow)

	// last option wins
	_, err = kernel.Multiply(a, b2, kernel.WithOverflowCheck(), kernel.WithWrapping())
	require.NoError(t, err)

	x := mustRandom(t, 9, 3, 100)
	y := mustRandom(t, 9, 4, 100)
	wrapped, err := kernel.Multiply(x, y)
	require.NoError(t, err)
	checked, err := kernel.Multiply(x, y, kernel.WithOverflowCheck())
	require.NoError(t, err)
	require.True(t, wrapped.Equal(checked))
}

// TestMultiplyRowsWritesOnlyBand fills the output with a sentinel and checks
// that rows outside the band are untouched.
func TestMultiplyRowsWritesOnlyBand(t *testing.T) {
	const n = 6
	a := mustRandom(t, n, 11, 50)
	b := mustRandom(t, n, 12, 50)
	want, err := kernel.Multiply(a, b)
	require.NoError(t, err)

	out, err := matrix.NewSquare(n)
	require.NoError(t, err)
	out.Do(func(i, j int, _ int32) bool {
		require.NoError(t, out.Set(i, j, -1))
		return true
	})
	band, err := out.View(2, 2)
	require.NoError(t, err)
	require.NoError(t, kernel.MultiplyRows(a, b, band, kernel.NewOptions()))

	for i := 0; i < n; i++ {
		got, err := out.Row(i)
		require.NoError(t, err)
		if i >= 2 && i < 4 {
			exp, err := want.Row(i)
			require.NoError(t, err)
			require.Equal(t, exp, got, "row %d", i)
			continue
		}
		for _, v := range got {
			require.Equal(t, int32(-1), v, "row %d touched", i)
		}
	}
}

// TestMultiplyRowsZeroesBandOnOverflow leaves no partial sums behind.
func TestMultiplyRowsZeroesBandOnOverflow(t *testing.T) {
	a := mustRows(t, [][]int32{{1, 1}, {math.MaxInt32, math.MaxInt32}})
	b := mustRows(t, [][]int32{{1, 1}, {1, 1}})
	out, err := matrix.NewSquare(2)
	require.NoError(t, err)
	band, err := out.View(0, 2)
	require.NoError(t, err)

	err = kernel.MultiplyRows(a, b, band, kernel.NewOptions(kernel.WithOverflowCheck()))
	require.ErrorIs(t, err, kernel.ErrOverflow)
	require.Equal(t, [][]int32{{0, 0}, {0, 0}}, out.ToRows())
}

// TestAccumulatorBlockRow sums tile products along k and compares one block
// row of the result with the reference product.
func TestAccumulatorBlockRow(t *testing.T) {
	const n, threads = 8, 4
	size := n / threads
	a := mustRandom(t, n, 21, 100)
	b := mustRandom(t, n, 22, 100)
	want, err := kernel.Multiply(a, b)
	require.NoError(t, err)

	o := kernel.NewOptions()
	for r := 0; r < threads; r++ {
		acc := kernel.NewAccumulator(size, n)
		for j := 0; j < threads; j++ {
			for k := 0; k < threads; k++ {
				require.NoError(t, acc.AddTile(a, partition.Block{Row: r, Col: k}, b, partition.Block{Row: k, Col: j}, size, j*size, o))
			}
		}
		got, err := matrix.NewSquare(n)
		require.NoError(t, err)
		band, err := got.View(r*size, size)
		require.NoError(t, err)
		require.NoError(t, acc.Store(band, o))

		for i := r * size; i < (r+1)*size; i++ {
			exp, _ := want.Row(i)
			row, _ := got.Row(i)
			require.Equal(t, exp, row, "row %d", i)
		}
	}
}

// TestAccumulatorBounds rejects tiles and windows that do not fit.
func TestAccumulatorBounds(t *testing.T) {
	a := mustRandom(t, 4, 1, 10)
	acc := kernel.NewAccumulator(2, 4)
	o := kernel.NewOptions()

	err := acc.AddTile(a, partition.Block{Row: 2, Col: 0}, a, partition.Block{}, 2, 0, o)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = acc.AddTile(a, partition.Block{}, a, partition.Block{}, 2, 3, o)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	out, err := matrix.NewSquare(4)
	require.NoError(t, err)
	band, err := out.View(0, 1)
	require.NoError(t, err)
	require.ErrorIs(t, acc.Store(band, o), matrix.ErrDimensionMismatch)
}

// TestAccumulatorStoreOverflow narrows with a range check in checked mode.
func TestAccumulatorStoreOverflow(t *testing.T) {
	a := mustRows(t, [][]int32{{math.MaxInt32}})
	b := mustRows(t, [][]int32{{3}})
	out, err := matrix.NewSquare(1)
	require.NoError(t, err)
	band, err := out.View(0, 1)
	require.NoError(t, err)

	checked := kernel.NewOptions(kernel.WithOverflowCheck())
	acc := kernel.NewAccumulator(1, 1)
	require.NoError(t, acc.AddTile(a, partition.Block{}, b, partition.Block{}, 1, 0, checked))
	require.ErrorIs(t, acc.Store(band, checked), kernel.ErrOverflow)

	require.NoError(t, acc.Store(band, kernel.NewOptions()))
	v, err := out.At(0, 0)
	require.NoError(t, err)
	big := int32(math.MaxInt32)
	require.Equal(t, big*3, v) // wrapped
}
