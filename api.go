// SPDX-License-Identifier: MIT
// Package blockmul - public API facades.
//
// Purpose:
//   - Provide the two entry points a benchmarking harness needs.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.

package blockmul

import (
	"github.com/katalvlaran/blockmul/kernel"
	"github.com/katalvlaran/blockmul/matrix"
	"github.com/katalvlaran/blockmul/parallel"
)

// Policy aliases parallel.Policy for callers that only import the root package.
type Policy = parallel.Policy

// Supported policies.
const (
	Fox    = parallel.Fox
	Cannon = parallel.Cannon
)

// Sentinels re-exported for errors.Is at the API boundary.
var (
	ErrInvalidConfiguration = parallel.ErrInvalidConfiguration
	ErrWorkerFailure        = parallel.ErrWorkerFailure
)

// SequentialMultiply returns A·B computed on the calling goroutine.
// Thin alias of kernel.Multiply. Complexity: O(N^3).
func SequentialMultiply(a, b *matrix.Dense, opts ...kernel.Option) (*matrix.Dense, error) {
	return kernel.Multiply(a, b, opts...)
}

// ParallelMultiply returns A·B computed by exactly threads workers under policy.
// Fails with ErrInvalidConfiguration when N % threads != 0.
// Thin alias of parallel.Multiply. Complexity: O(N^3 / threads) wall time per worker.
func ParallelMultiply(a, b *matrix.Dense, threads int, policy Policy, opts ...kernel.Option) (*matrix.Dense, error) {
	return parallel.Multiply(a, b, threads, policy, opts...)
}
