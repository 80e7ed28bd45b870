// SPDX-License-Identifier: MIT
// Package parallel: error taxonomy of the coordinator.
//
//   - ErrInvalidConfiguration: reported synchronously, before any worker runs.
//   - ErrWorkerFailure: matched by *FailureError, the aggregate of every failed
//     worker of one call. Each worker's own cause (kernel.ErrOverflow,
//     ErrWorkerPanic, ...) is still reachable through errors.Is / errors.As.
//
// No retries: the computation is deterministic, a failure repeats identically.

package parallel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/blockmul/partition"
)

var (
	// ErrInvalidConfiguration aliases the partitioner sentinel so callers of this
	// package need not import partition to match it.
	ErrInvalidConfiguration = partition.ErrInvalidConfiguration

	// ErrUnknownPolicy is returned for a Policy value outside {Fox, Cannon}.
	// It matches ErrInvalidConfiguration as well.
	ErrUnknownPolicy = fmt.Errorf("parallel: unknown policy: %w", ErrInvalidConfiguration)

	// ErrWorkerFailure is matched by every *FailureError.
	ErrWorkerFailure = errors.New("parallel: worker failure")

	// ErrWorkerPanic marks a worker task that panicked; the panic value is kept in the message.
	ErrWorkerPanic = errors.New("parallel: worker panicked")
)

// WorkerError is the failure of a single worker task.
type WorkerError struct {
	Worker int   // worker index in [0, threads)
	Err    error // underlying cause
}

// Error implements error.
func (e *WorkerError) Error() string { return fmt.Sprintf("worker %d: %v", e.Worker, e.Err) }

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *WorkerError) Unwrap() error { return e.Err }

// FailureError aggregates every failed worker of one Multiply call, in worker order.
// A call that returns a *FailureError never returns a matrix.
type FailureError struct {
	Policy   Policy
	Threads  int
	Failures []*WorkerError
}

// Error lists all failing worker indices followed by their causes.
func (e *FailureError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s, %d/%d workers failed %v)", ErrWorkerFailure, e.Policy, len(e.Failures), e.Threads, e.Workers())
	for _, f := range e.Failures {
		b.WriteString(": ")
		b.WriteString(f.Error())
	}

	return b.String()
}

// Is makes errors.Is(err, ErrWorkerFailure) hold for the aggregate.
func (e *FailureError) Is(target error) bool { return target == ErrWorkerFailure }

// Unwrap returns the per-worker errors (multi-error form, Go 1.20+).
func (e *FailureError) Unwrap() []error {
	out := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		out[i] = f
	}

	return out
}

// Workers returns the failing worker indices in ascending order.
func (e *FailureError) Workers() []int {
	idx := make([]int, len(e.Failures))
	for i, f := range e.Failures {
		idx[i] = f.Worker
	}

	return idx
}
