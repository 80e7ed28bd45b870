// SPDX-License-Identifier: MIT
// Package parallel is the block-decomposition multiplication engine.
//
// Purpose:
//   - Split C = A·B among exactly `threads` workers, run one task per worker on
//     a fresh fixed-size pool, join, and return the assembled matrix.
//   - Two policies: Fox (row blocks against the whole of B) and Cannon (tile
//     multiply-accumulate over a skewed, cyclically shifted block grid).
//
// Concurrency model:
//   - Inputs are shared read-only; no locks.
//   - The result is handed to workers as disjoint row-band Views
//     (partition.RowRanges), so every output cell is written by one worker only.
//   - The join is the single synchronization point. Nothing is cancellable and
//     no timeout applies: a hung worker hangs the call.
//
// Failure model:
//   - ErrInvalidConfiguration before dispatch (N % threads != 0, bad policy).
//   - *FailureError after the join when any worker failed; other workers still
//     run to completion, and no partially assembled matrix is ever returned.
//
// AI-Hints:
//   - threads == 1 is the sequential kernel on a single worker; results are
//     bit-identical to kernel.Multiply for both policies.
//   - kernel.WithOverflowCheck() turns silent int32 wrapping into worker failures.
package parallel

import (
	"fmt"
	"time"

	"github.com/golang/glog"

	"github.com/katalvlaran/blockmul/kernel"
	"github.com/katalvlaran/blockmul/matrix"
	"github.com/katalvlaran/blockmul/partition"
)

const opMultiply = "parallel.Multiply"

// Multiply computes C = A·B with the given policy on exactly threads workers.
//
// Implementation:
//   - Stage 1: validate operands, policy and partition (fail fast, nothing dispatched).
//   - Stage 2: allocate zeroed C and one row-band View per worker.
//   - Stage 3: submit one task per worker to a fresh pool; join.
//   - Stage 4: return C, or a *FailureError listing every failed worker.
//
// Errors:
//   - matrix.ErrNilMatrix / ErrNonSquare / ErrDimensionMismatch.
//   - ErrInvalidConfiguration (also via ErrUnknownPolicy).
//   - ErrWorkerFailure (*FailureError).
//
// Complexity:
//   - Time O(N^3 / threads) per worker, Space O(N^2) for C plus O(N^2/threads)
//     staging per Cannon worker.
func Multiply(a, b *matrix.Dense, threads int, policy Policy, opts ...kernel.Option) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareOperands(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", opMultiply, err)
	}
	if !policy.Valid() {
		return nil, fmt.Errorf("%s: %v: %w", opMultiply, policy, ErrUnknownPolicy)
	}
	n := a.Rows()
	ranges, err := partition.RowRanges(n, threads)
	if err != nil {
		return nil, fmt.Errorf("%s(%s): %w", opMultiply, policy, err)
	}
	var grids *cannonGrids
	if policy == Cannon {
		if grids, err = newCannonGrids(threads); err != nil {
			return nil, fmt.Errorf("%s(%s): %w", opMultiply, policy, err)
		}
	}

	c, err := matrix.NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMultiply, err)
	}
	views := make([]*matrix.View, len(ranges))
	for i, r := range ranges {
		if views[i], err = c.View(r.Lo, r.Len()); err != nil {
			return nil, fmt.Errorf("%s: %w", opMultiply, err)
		}
	}

	o := kernel.NewOptions(opts...)
	start := time.Now()
	p := newPool(threads, len(ranges))
	for i, r := range ranges {
		switch policy {
		case Fox:
			p.submit(r.Worker, foxTask(a, b, r, views[i], o))
		case Cannon:
			p.submit(r.Worker, cannonTask(a, b, grids, r, views[i], o))
		}
	}
	failures := p.wait()

	if len(failures) > 0 {
		ferr := &FailureError{Policy: policy, Threads: threads, Failures: failures}
		glog.Warningf("%s: %v", opMultiply, ferr)
		return nil, ferr
	}
	if glog.V(1) {
		glog.Infof("%s: policy=%s n=%d threads=%d block=%d took %s",
			opMultiply, policy, n, threads, ranges[0].Len(), time.Since(start))
	}

	return c, nil
}
