// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major int32 buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Support no-copy row-band views (View) so a result buffer can be split into
//     disjoint, exclusively-written regions.
//
// AI-Hints:
//   - Hot kernels should use Row(i) to get the backing slice of a row and loop over it directly.
//   - Use View(r0, rows) to hand a worker its output rows; writes reflect in the base matrix.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Row: O(1); Clone: O(r*c); View: O(1).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"   // method tag used in error wrappers
	ctxSet  = "Set"  // method tag used in error wrappers
	ctxRow  = "Row"  // method tag used in error wrappers
	ctxView = "View" // ctor tag for Dense.View
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable "Dense.<method>(row,col): <sentinel>" shape; preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of int32 values.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int     // row and column counts (>0)
	data []int32 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - The parallel engine only accepts square operands; prefer NewSquare there.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	return &Dense{
		r:    rows,
		c:    cols,
		data: make([]int32, rows*cols),
	}, nil
}

// NewSquare creates an n×n zero matrix. Thin alias of NewDense(n, n).
// Complexity: O(n^2).
func NewSquare(n int) (*Dense, error) { return NewDense(n, n) }

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns a bare sentinel; At/Set wrap it with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel.
// Complexity: O(1).
func (m *Dense) At(row, col int) (int32, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int32) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Row returns the backing slice of row i (len == Cols()).
// The slice aliases the matrix storage: writes through it mutate m.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Rows()).
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - This is the fast path for kernels; hoist the call out of the innermost loop.
func (m *Dense) Row(i int) ([]int32, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	base := i * m.c

	return m.data[base : base+m.c : base+m.c], nil
}

// row is the unchecked variant of Row for package-internal loops.
func (m *Dense) row(i int) []int32 {
	base := i * m.c

	return m.data[base : base+m.c : base+m.c]
}

// Clone returns a deep copy (new buffer).
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]int32, len(m.data)) // allocate same length
	copy(cp, m.data)                 // deep copy

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports whether m and o have the same shape and identical cells.
// Two nil matrices are equal; a nil and a non-nil matrix are not.
// Complexity: O(r*c).
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// ToRows copies the matrix into a freshly allocated [][]int32.
// Handy for table-driven tests and diffs.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]int32 {
	out := make([][]int32, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = append([]int32(nil), m.row(i)...)
	}

	return out
}

// String provides a readable row-wise dump for diagnostics.
// Not for hot paths; intended for logs and debugging.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(strconv.FormatInt(int64(m.data[base+j]), 10))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
// Complexity: O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v int32) bool) {
	var i, j, base int

	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// View creates a no-copy band of rows [r0, r0+rows) spanning all columns.
//
// Implementation:
//   - Stage 1: validate the band fits inside m; a zero-row band is rejected.
//   - Stage 2: return a View sharing m's storage.
//
// Behavior highlights:
//   - Writes via the view reflect in the base matrix.
//   - Disjoint bands never alias each other, so distinct goroutines may write
//     distinct bands without locking.
//
// Errors:
//   - ErrBadShape when the band is empty or does not fit.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) View(r0, rows int) (*View, error) {
	if r0 < 0 || rows <= 0 || r0+rows > m.r {
		return nil, fmt.Errorf("Dense.%s(%d,%d): %w", ctxView, r0, rows, ErrBadShape)
	}

	return &View{
		base: m,
		r0:   r0,
		r:    rows,
		// full-slice expression caps the band so appends cannot spill into a neighbor
		data: m.data[r0*m.c : (r0+rows)*m.c : (r0+rows)*m.c],
	}, nil
}

// View is a non-owning band of consecutive rows of a Dense (shared storage).
type View struct {
	base *Dense  // underlying storage owner
	r0   int     // first row of the band in base
	r    int     // band height
	data []int32 // base.data restricted to the band
}

// Rows returns the number of rows in the view.
func (v *View) Rows() int { return v.r }

// Cols returns the number of columns in the view (always the base width).
func (v *View) Cols() int { return v.base.c }

// Offset returns the index of the view's first row inside the base matrix.
func (v *View) Offset() int { return v.r0 }

// At reads element (i,j) of the view or returns ErrOutOfRange.
func (v *View) At(i, j int) (int32, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.base.c {
		return 0, fmt.Errorf("View.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return v.data[i*v.base.c+j], nil
}

// Set writes element (i,j) of the view, through to the base matrix.
func (v *View) Set(i, j int, val int32) error {
	if i < 0 || i >= v.r || j < 0 || j >= v.base.c {
		return fmt.Errorf("View.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	v.data[i*v.base.c+j] = val // write through

	return nil
}

// Row returns the backing slice of view row i (relative to the band).
func (v *View) Row(i int) ([]int32, error) {
	if i < 0 || i >= v.r {
		return nil, fmt.Errorf("View.Row(%d): %w", i, ErrOutOfRange)
	}
	c := v.base.c

	return v.data[i*c : (i+1)*c : (i+1)*c], nil
}

// Zero resets every cell of the band to 0.
func (v *View) Zero() {
	clear(v.data)
}
