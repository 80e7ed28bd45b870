// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"

	"github.com/katalvlaran/blockmul/matrix"
	"github.com/katalvlaran/blockmul/partition"
)

// Accumulator is a private int64 staging band owned by one worker.
// Tile products are added into it step by step; Store narrows it into the
// worker's output View once every step has run.
//
// Behavior highlights:
//   - int64 cells make the final narrowing the only place overflow can surface
//     in wrapping mode, which keeps the result identical to Multiply.
//   - Not safe for concurrent use; each worker allocates its own.
type Accumulator struct {
	r, c int     // band height (block size) and width (N)
	data []int64 // row-major, len == r*c
}

// NewAccumulator allocates a zeroed rows×cols accumulator.
// Complexity: O(rows·cols).
func NewAccumulator(rows, cols int) *Accumulator {
	return &Accumulator{r: rows, c: cols, data: make([]int64, rows*cols)}
}

// AddTile adds the product of tile ta of A and tile tb of B (both size×size)
// into accumulator columns [col0, col0+size).
//
// Implementation:
//   - Stage 1: bound-check the tiles and the target window.
//   - Stage 2: i→k→j triple loop over the tiles, int64 accumulation.
//
// Errors:
//   - matrix.ErrOutOfRange when a tile or the window does not fit.
//   - ErrOverflow in checked mode when an int64 sum overflows.
//
// Complexity:
//   - Time O(size^3), Space O(1).
func (acc *Accumulator) AddTile(a *matrix.Dense, ta partition.Block, b *matrix.Dense, tb partition.Block, size, col0 int, o Options) error {
	if !tileFits(a, ta, size) || !tileFits(b, tb, size) || size > acc.r || col0 < 0 || col0+size > acc.c {
		return kernelErrorf(opAddTile, fmt.Errorf("A%v B%v size=%d col0=%d: %w", ta, tb, size, col0, matrix.ErrOutOfRange))
	}
	aCol0, bCol0 := ta.Col*size, tb.Col*size
	var ok bool
	for i := 0; i < size; i++ {
		aRow, _ := a.Row(ta.Row*size + i)
		aRow = aRow[aCol0 : aCol0+size]
		accRow := acc.data[i*acc.c+col0 : i*acc.c+col0+size]
		for k, av := range aRow {
			if av == 0 {
				continue // skip zero for performance
			}
			bRow, _ := b.Row(tb.Row*size + k)
			bRow = bRow[bCol0 : bCol0+size]
			a64 := int64(av)
			if !o.overflowCheck {
				for j, bv := range bRow {
					accRow[j] += a64 * int64(bv)
				}
				continue
			}
			for j, bv := range bRow {
				if accRow[j], ok = addChecked(accRow[j], a64*int64(bv)); !ok {
					return kernelErrorf(opAddTile, overflowAt(i, col0+j))
				}
			}
		}
	}

	return nil
}

// Store narrows the accumulator into dst (same shape) with int32 semantics:
// wrapping by default, ErrOverflow in checked mode. On error dst is zeroed.
//
// Complexity: O(r·c).
func (acc *Accumulator) Store(dst *matrix.View, o Options) error {
	if dst.Rows() != acc.r || dst.Cols() != acc.c {
		return kernelErrorf(opStore, fmt.Errorf("view %dx%d, accumulator %dx%d: %w",
			dst.Rows(), dst.Cols(), acc.r, acc.c, matrix.ErrDimensionMismatch))
	}
	for i := 0; i < acc.r; i++ {
		out, _ := dst.Row(i)
		for j, v := range acc.data[i*acc.c : (i+1)*acc.c] {
			if o.overflowCheck && !fitsInt32(v) {
				dst.Zero()
				return kernelErrorf(opStore, overflowAt(dst.Offset()+i, j))
			}
			out[j] = int32(v) // low 32 bits: two's-complement wrap
		}
	}

	return nil
}

// tileFits reports whether tile t of size×size lies inside m.
func tileFits(m *matrix.Dense, t partition.Block, size int) bool {
	if size <= 0 || t.Row < 0 || t.Col < 0 {
		return false
	}

	return (t.Row+1)*size <= m.Rows() && (t.Col+1)*size <= m.Cols()
}
