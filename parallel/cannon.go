// SPDX-License-Identifier: MIT

package parallel

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/katalvlaran/blockmul/kernel"
	"github.com/katalvlaran/blockmul/matrix"
	"github.com/katalvlaran/blockmul/partition"
	"github.com/katalvlaran/blockmul/shift"
)

// cannonGrids is the read-only alignment shared by all Cannon workers of a call.
//
//	skewA[i][j] = tile (i, (i+j) mod T) of A
//	skewB[i][j] = tile ((i+j) mod T, j) of B
//
// After shifting skewA by k columns and skewB by k rows, position (i,j) holds
// A(i, m) and B(m, j) for the same m = (i+j-k) mod T, so an elementwise
// multiply-accumulate over the grid for k = 0..T-1 produces the full product.
type cannonGrids struct {
	skewA, skewB [][]partition.Block
}

// newCannonGrids builds the pre-skewed tile grids for threads workers.
func newCannonGrids(threads int) (*cannonGrids, error) {
	grid, err := partition.Grid(threads)
	if err != nil {
		return nil, err
	}
	skewA, err := shift.SkewRows(grid)
	if err != nil {
		return nil, err
	}
	skewB, err := shift.SkewCols(grid)
	if err != nil {
		return nil, err
	}

	return &cannonGrids{skewA: skewA, skewB: skewB}, nil
}

// cannonTask returns the body of Cannon worker r.Worker, owner of block row t.
//
// Implementation:
//   - for k = 0..T-1:
//     shiftedA = Shift(skewA, 0, k); shiftedB = Shift(skewB, k, 0);
//     C[t][j] += shiftedA[t][j] · shiftedB[t][j] for every block column j.
//   - Store the int64 block row into dst (rows [t*B, (t+1)*B)).
//
// Complexity: O(T · N · B^2) = O(B·N^2) multiply-adds per worker, O(B·N) staging.
func cannonTask(a, b *matrix.Dense, g *cannonGrids, r partition.Range, dst *matrix.View, o kernel.Options) func() error {
	return func() error {
		t, size := r.Worker, r.Len()
		threads := len(g.skewA)
		acc := kernel.NewAccumulator(size, a.Cols())
		for k := 0; k < threads; k++ {
			shiftedA, err := shift.Shift(g.skewA, 0, k)
			if err != nil {
				return err
			}
			shiftedB, err := shift.Shift(g.skewB, k, 0)
			if err != nil {
				return err
			}
			for j := 0; j < threads; j++ {
				ta, tb := shiftedA[t][j], shiftedB[t][j]
				if err = acc.AddTile(a, ta, b, tb, size, j*size, o); err != nil {
					return fmt.Errorf("step %d tile (%d,%d): %w", k, t, j, err)
				}
			}
		}
		if err := acc.Store(dst, o); err != nil {
			return err
		}
		if glog.V(2) {
			glog.Infof("cannon: worker %d block row %d (%d steps) done", t, t, threads)
		}

		return nil
	}
}
