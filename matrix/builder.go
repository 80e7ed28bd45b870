// SPDX-License-Identifier: MIT
// Package matrix: constructors that build populated matrices.
//
// Contract:
//   - FromRows copies caller data; the result never aliases the input.
//   - NewIdentity(n) has ones on the diagonal.
//   - NewRandom(n, rng, maxValue) fills cells with rng.Int31n(maxValue) in
//     row-major order, so a fixed seed always yields the same matrix.
//
// Determinism:
//   - Stable fill order: i asc, then j asc.

package matrix

import (
	"fmt"
	"math/rand"
)

// File-local constants (no magic literals; stable method tags).
const (
	methodFromRows  = "FromRows"
	methodIdentity  = "NewIdentity"
	methodNewRandom = "NewRandom"
	minRandomBound  = 1
)

// FromRows builds a Dense from a rectangular [][]int32 literal.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or the first row is empty.
//   - ErrBadShape when rows are ragged.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]int32) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", methodFromRows, ErrInvalidDimensions)
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromRows, err)
	}
	for i, r := range rows {
		if len(r) != m.c {
			return nil, fmt.Errorf("%s: row %d has %d cols, want %d: %w",
				methodFromRows, i, len(r), m.c, ErrBadShape)
		}
		copy(m.row(i), r)
	}

	return m, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: A·I == A makes it the cheapest oracle for engine smoke tests.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// NewRandom returns an n×n matrix with cells drawn uniformly from [0, maxValue).
//
// Implementation:
//   - Stage 1: validate n, maxValue and rng.
//   - Stage 2: fill row-major with rng.Int31n(maxValue).
//
// Errors:
//   - ErrInvalidDimensions (n ≤ 0 or maxValue < 1), ErrNeedRandSource (rng == nil).
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
//
// AI-Hints:
//   - Pass rand.New(rand.NewSource(seed)) for reproducible benchmark inputs.
func NewRandom(n int, rng *rand.Rand, maxValue int32) (*Dense, error) {
	if maxValue < minRandomBound {
		return nil, fmt.Errorf("%s: maxValue=%d < %d: %w",
			methodNewRandom, maxValue, minRandomBound, ErrInvalidDimensions)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodNewRandom, ErrNeedRandSource)
	}
	m, err := NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewRandom, err)
	}
	for k := range m.data { // row-major order == flat order
		m.data[k] = rng.Int31n(maxValue)
	}

	return m, nil
}
