package shift_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/blockmul/shift"
	"github.com/stretchr/testify/require"
)

// seq returns an n×n grid with cell (i,j) = i*n + j.
func seq(n int) [][]int32 {
	g := make([][]int32, n)
	for i := range g {
		g[i] = make([]int32, n)
		for j := range g[i] {
			g[i][j] = int32(i*n + j)
		}
	}
	return g
}

func TestWrap(t *testing.T) {
	require.Equal(t, 0, shift.Wrap(0, 3))
	require.Equal(t, 2, shift.Wrap(-1, 3))
	require.Equal(t, 1, shift.Wrap(7, 3))
	require.Equal(t, 2, shift.Wrap(-7, 3))
}

// TestShiftFormula checks out[i][j] = g[(i-r) mod n][(j-c) mod n].
func TestShiftFormula(t *testing.T) {
	g := seq(3)
	got, err := shift.Shift(g, 1, 2)
	require.NoError(t, err)
	want := [][]int32{
		{7, 8, 6},
		{1, 2, 0},
		{4, 5, 3},
	}
	require.Empty(t, cmp.Diff(want, got))
	// input untouched
	require.Empty(t, cmp.Diff(seq(3), g))
}

// TestShiftRoundTrip shifts by (r,c) then (-r,-c) for every offset, including
// offsets larger than the grid and negative ones.
func TestShiftRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5} {
		g := seq(n)
		for r := -2 * n; r <= 2*n; r++ {
			for c := -n; c <= n; c++ {
				s, err := shift.Shift(g, r, c)
				require.NoError(t, err)
				back, err := shift.Shift(s, -r, -c)
				require.NoError(t, err)
				require.Empty(t, cmp.Diff(g, back), "n=%d r=%d c=%d", n, r, c)
			}
		}
	}
}

// TestShiftFullTurnIsIdentity shifting by n in either axis is a no-op.
func TestShiftFullTurnIsIdentity(t *testing.T) {
	g := seq(4)
	s, err := shift.Shift(g, 4, -8)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(g, s))
}

func TestSkew(t *testing.T) {
	g := seq(3)

	rows, err := shift.SkewRows(g)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff([][]int32{
		{0, 1, 2},
		{4, 5, 3},
		{8, 6, 7},
	}, rows))

	cols, err := shift.SkewCols(g)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff([][]int32{
		{0, 4, 8},
		{3, 7, 2},
		{6, 1, 5},
	}, cols))
}

func TestNotSquare(t *testing.T) {
	_, err := shift.Shift([][]int{}, 0, 0)
	require.ErrorIs(t, err, shift.ErrNotSquare)

	_, err = shift.Shift([][]int{{1, 2}, {3}}, 1, 1)
	require.ErrorIs(t, err, shift.ErrNotSquare)

	_, err = shift.SkewRows([][]int{{1, 2}})
	require.ErrorIs(t, err, shift.ErrNotSquare)

	_, err = shift.SkewCols([][]int{{1}, {2}})
	require.ErrorIs(t, err, shift.ErrNotSquare)
}
