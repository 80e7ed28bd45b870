// SPDX-License-Identifier: MIT
// Package kernel holds the single-threaded multiplication kernels.
//
// Purpose:
//   - Multiply is the reference product C = A·B: the baseline timing path and
//     the correctness oracle for the parallel engines.
//   - MultiplyRows is the same triple loop restricted to a row band; it is the
//     whole body of a Fox worker.
//   - Accumulator adds tile products; it is the body of a Cannon worker.
//
// Determinism:
//   - Fixed i→k→j loop order (row-major friendly, as in the matrix fast path).
//   - Integer arithmetic: results do not depend on summation order.
package kernel

import (
	"github.com/katalvlaran/blockmul/matrix"
)

// Multiply computes C[i][j] = Σ_k A[i][k]·B[k][j] for square operands of equal order.
//
// Implementation:
//   - Stage 1: ValidateSquareOperands(a, b); allocate zeroed C.
//   - Stage 2: run MultiplyRows over the full band [0, N).
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch.
//   - ErrOverflow (only with WithOverflowCheck).
//
// Complexity:
//   - Time O(N^3), Space O(N^2) for C (+O(N) scratch in checked mode).
func Multiply(a, b *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareOperands(a, b); err != nil {
		return nil, kernelErrorf(opMultiply, err)
	}
	n := a.Rows()
	c, err := matrix.NewSquare(n)
	if err != nil {
		return nil, kernelErrorf(opMultiply, err)
	}
	all, err := c.View(0, n)
	if err != nil {
		return nil, kernelErrorf(opMultiply, err)
	}
	if err = MultiplyRows(a, b, all, NewOptions(opts...)); err != nil {
		return nil, kernelErrorf(opMultiply, err)
	}

	return c, nil
}

// MultiplyRows writes rows [dst.Offset(), dst.Offset()+dst.Rows()) of A·B into dst.
// Operands are assumed validated by the caller (same order N, dst.Cols() == N).
//
// Behavior highlights:
//   - Reads A rows of the band and all of B; writes only inside dst.
//   - On error the band is zeroed, so a failed band never carries partial sums.
//
// Errors:
//   - ErrOverflow in checked mode (first offending cell, base coordinates).
//
// Complexity:
//   - Time O(rows·N^2), Space O(N) scratch in checked mode, O(1) otherwise.
func MultiplyRows(a, b *matrix.Dense, dst *matrix.View, o Options) error {
	n := b.Cols()
	var scratch []int64
	if o.overflowCheck {
		scratch = make([]int64, n) // one accumulator row, reused per output row
	}
	for i := 0; i < dst.Rows(); i++ {
		src := dst.Offset() + i
		aRow, _ := a.Row(src) // in range: dst lies inside an N-row matrix
		out, _ := dst.Row(i)
		if !o.overflowCheck {
			mulRowWrap(aRow, b, out)
			continue
		}
		if col := mulRowChecked(aRow, b, out, scratch); col >= 0 {
			dst.Zero()
			return kernelErrorf(opMultiplyRows, overflowAt(src, col))
		}
	}

	return nil
}

// mulRowWrap computes out = aRow·B with int32 wrapping arithmetic.
func mulRowWrap(aRow []int32, b *matrix.Dense, out []int32) {
	clear(out)
	for k, av := range aRow {
		if av == 0 {
			continue // skip zero for performance
		}
		bRow, _ := b.Row(k)
		for j, bv := range bRow {
			out[j] += av * bv
		}
	}
}

// mulRowChecked computes out = aRow·B exactly in int64 and narrows with range checks.
// It returns the first overflowing column, or -1 when the whole row fits.
func mulRowChecked(aRow []int32, b *matrix.Dense, out []int32, acc []int64) int {
	clear(acc)
	var ok bool
	for k, av := range aRow {
		if av == 0 {
			continue
		}
		bRow, _ := b.Row(k)
		a64 := int64(av)
		for j, bv := range bRow {
			if acc[j], ok = addChecked(acc[j], a64*int64(bv)); !ok {
				return j
			}
		}
	}
	for j, v := range acc {
		if !fitsInt32(v) {
			return j
		}
		out[j] = int32(v)
	}

	return -1
}
