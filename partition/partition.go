// SPDX-License-Identifier: MIT
// Package: blockmul/partition
//
// partition.go - split an N×N matrix among T workers.
//
// Contract:
//   - N > 0, T > 0 and T divides N (else ErrInvalidConfiguration).
//   - BlockSize B = N / T.
//   - RowRanges: worker t owns rows [t*B, (t+1)*B). The union of all ranges is
//     [0, N) and ranges are pairwise disjoint.
//   - Grid: T×T block coordinates; tile (r, c) covers rows [r*B, (r+1)*B) and
//     columns [c*B, (c+1)*B).
//
// Complexity:
//   - RowRanges O(T); Grid O(T^2). No side effects, no concurrency.

package partition

import (
	"fmt"

	"github.com/samber/lo"
)

const (
	methodBlockSize = "BlockSize"
	methodRowRanges = "RowRanges"
	methodGrid      = "Grid"
)

// Range is the half-open row interval [Lo, Hi) owned by one worker.
type Range struct {
	Worker int // worker index in [0, T)
	Lo     int // first owned row (inclusive)
	Hi     int // last owned row (exclusive)
}

// Len returns the number of rows in the range.
func (r Range) Len() int { return r.Hi - r.Lo }

// Block is a tile coordinate inside the T×T block grid.
type Block struct {
	Row int // block row in [0, T)
	Col int // block column in [0, T)
}

// BlockSize returns N / threads after validating the configuration.
//
// Errors:
//   - ErrInvalidConfiguration when n ≤ 0, threads ≤ 0 or n % threads != 0.
//
// Complexity: O(1).
func BlockSize(n, threads int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%s: n=%d must be > 0: %w", methodBlockSize, n, ErrInvalidConfiguration)
	}
	if threads <= 0 {
		return 0, fmt.Errorf("%s: threads=%d must be > 0: %w", methodBlockSize, threads, ErrInvalidConfiguration)
	}
	if n%threads != 0 {
		return 0, fmt.Errorf("%s: n=%d is not divisible by threads=%d: %w",
			methodBlockSize, n, threads, ErrInvalidConfiguration)
	}

	return n / threads, nil
}

// RowRanges returns one Range per worker, ordered by worker index.
//
// Implementation:
//   - Stage 1: validate via BlockSize (fail fast, nothing allocated on error).
//   - Stage 2: map worker t to [t*B, (t+1)*B).
//
// Complexity: O(T).
func RowRanges(n, threads int) ([]Range, error) {
	b, err := BlockSize(n, threads)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRowRanges, err)
	}

	return lo.Map(lo.Range(threads), func(t, _ int) Range {
		return Range{Worker: t, Lo: t * b, Hi: (t + 1) * b}
	}), nil
}

// Grid returns the identity T×T grid of block coordinates: grid[r][c] == Block{r, c}.
//
// Errors:
//   - ErrInvalidConfiguration when threads ≤ 0.
//
// Complexity: O(T^2).
//
// AI-Hints: feed the result into shift.SkewRows / shift.SkewCols for the Cannon alignment.
func Grid(threads int) ([][]Block, error) {
	if threads <= 0 {
		return nil, fmt.Errorf("%s: threads=%d must be > 0: %w", methodGrid, threads, ErrInvalidConfiguration)
	}
	grid := make([][]Block, threads)
	for r := range grid {
		grid[r] = make([]Block, threads)
		for c := range grid[r] {
			grid[r][c] = Block{Row: r, Col: c}
		}
	}

	return grid, nil
}
