// SPDX-License-Identifier: MIT

package parallel

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// pool is a single-use, fixed-size worker pool: at most size tasks run at
// once, each task carries an immutable worker index, and wait is the only
// synchronization point. A pool is created per Multiply call and discarded
// after wait; it holds no goroutines once wait returns.
//
// Every task's outcome lands in its own slot of errs, so collecting results
// needs no lock and no failure is lost.
type pool struct {
	g    errgroup.Group
	errs []error // errs[w] is written only by worker w
}

// newPool sizes the pool to exactly size concurrent workers for tasks tasks.
func newPool(size, tasks int) *pool {
	p := &pool{errs: make([]error, tasks)}
	p.g.SetLimit(size)

	return p
}

// submit schedules task as worker w. It blocks while size tasks are running.
// A panic inside task is recovered and recorded as ErrWorkerPanic.
func (p *pool) submit(w int, task func() error) {
	p.g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %v", ErrWorkerPanic, r)
			}
			p.errs[w] = err
		}()

		return task()
	})
}

// wait joins every submitted task and returns the failures in worker order.
// Unlike errgroup's own Wait result, no failure beyond the first is dropped.
func (p *pool) wait() []*WorkerError {
	_ = p.g.Wait() // first error only; the slots hold all of them

	var failures []*WorkerError
	for w, err := range p.errs {
		if err != nil {
			failures = append(failures, &WorkerError{Worker: w, Err: err})
		}
	}

	return failures
}
