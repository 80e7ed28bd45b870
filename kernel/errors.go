// SPDX-License-Identifier: MIT

package kernel

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned in checked mode when an output cell does not fit int32.
var ErrOverflow = errors.New("kernel: int32 overflow")

// Operation tags for uniform error wrapping.
const (
	opMultiply     = "Multiply"
	opMultiplyRows = "MultiplyRows"
	opAddTile      = "Accumulator.AddTile"
	opStore        = "Accumulator.Store"
)

// kernelErrorf wraps err with an operation tag, preserving it via %w.
func kernelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// overflowAt reports the first cell that left the int32 range.
func overflowAt(row, col int) error {
	return fmt.Errorf("cell (%d,%d): %w", row, col, ErrOverflow)
}

// addChecked returns a+b and false when the int64 sum overflows.
func addChecked(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}

	return a + b, true
}

// fitsInt32 reports whether v is representable as int32.
func fitsInt32(v int64) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}
