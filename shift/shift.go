// SPDX-License-Identifier: MIT
// Package shift implements toroidal index remaps over square grids.
//
// Purpose:
//   - Realign tiles of two operands without moving data between workers:
//     a shifted grid is a new [][]T whose cells are copied from the source
//     under a wraparound index map.
//
// Contract:
//   - Shift:    out[i][j] = g[(i - r) mod n][(j - c) mod n]
//   - SkewRows: out[i][j] = g[i][(i + j) mod n]   (row i rotated left by i)
//   - SkewCols: out[i][j] = g[(i + j) mod n][j]   (column j rotated up by j)
//   - Shifts of any sign are legal; results are always in range.
//   - Shift(Shift(g, r, c), -r, -c) equals g.
//
// Complexity:
//   - Every function is O(n^2) time and space and allocates a fresh grid.
//     Inputs are never mutated.
package shift

import (
	"errors"
	"fmt"
)

// ErrNotSquare is returned for empty, ragged or non-square grids.
var ErrNotSquare = errors.New("shift: grid is not square")

const (
	methodShift    = "Shift"
	methodSkewRows = "SkewRows"
	methodSkewCols = "SkewCols"
)

// Wrap returns i mod n in [0, n) for any sign of i. n must be > 0.
func Wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}

	return i
}

// order returns len(g) after checking that g is a non-empty square grid.
func order[T any](tag string, g [][]T) (int, error) {
	n := len(g)
	if n == 0 {
		return 0, fmt.Errorf("%s: empty grid: %w", tag, ErrNotSquare)
	}
	for i, row := range g {
		if len(row) != n {
			return 0, fmt.Errorf("%s: row %d has %d cells, want %d: %w", tag, i, len(row), n, ErrNotSquare)
		}
	}

	return n, nil
}

// remap builds out[i][j] = g[src(i,j)] for every cell.
func remap[T any](g [][]T, n int, src func(i, j int) (int, int)) [][]T {
	out := make([][]T, n)
	for i := 0; i < n; i++ {
		out[i] = make([]T, n)
		for j := 0; j < n; j++ {
			si, sj := src(i, j)
			out[i][j] = g[si][sj]
		}
	}

	return out
}

// Shift returns g toroidally shifted down by shiftRows and right by shiftCols.
//
// Errors:
//   - ErrNotSquare when g is empty or not n×n.
func Shift[T any](g [][]T, shiftRows, shiftCols int) ([][]T, error) {
	n, err := order(methodShift, g)
	if err != nil {
		return nil, err
	}

	return remap(g, n, func(i, j int) (int, int) {
		return Wrap(i-shiftRows, n), Wrap(j-shiftCols, n)
	}), nil
}

// SkewRows rotates row i of g left by i positions (Cannon's initial A alignment).
func SkewRows[T any](g [][]T) ([][]T, error) {
	n, err := order(methodSkewRows, g)
	if err != nil {
		return nil, err
	}

	return remap(g, n, func(i, j int) (int, int) {
		return i, Wrap(i+j, n)
	}), nil
}

// SkewCols rotates column j of g up by j positions (Cannon's initial B alignment).
func SkewCols[T any](g [][]T) ([][]T, error) {
	n, err := order(methodSkewCols, g)
	if err != nil {
		return nil, err
	}

	return remap(g, n, func(i, j int) (int, int) {
		return Wrap(i+j, n), j
	}), nil
}
