// SPDX-License-Identifier: MIT

package bench

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/golang/glog"

	"github.com/katalvlaran/blockmul/kernel"
	"github.com/katalvlaran/blockmul/matrix"
	"github.com/katalvlaran/blockmul/parallel"
)

// ErrMismatch is returned when Verify is on and a parallel result differs
// from the sequential one.
var ErrMismatch = errors.New("bench: parallel result differs from sequential")

// Result is one timed (algorithm, thread count) measurement.
type Result struct {
	Threads   int             // thread count of the sweep step
	Algorithm int             // 1 = sequential, 2.. = policies in config order
	Name      string          // "sequential" or the policy name
	Policy    parallel.Policy // 0 for the sequential kernel
	Size      int             // matrix order N
	Elapsed   time.Duration   // fastest of Config.Repeat runs
}

// Seconds returns Elapsed in fractional seconds, the unit of the report.
func (r Result) Seconds() float64 { return r.Elapsed.Seconds() }

// Inputs builds the two seeded operands of a run. Both come from one RNG
// stream: A first, then B.
func Inputs(cfg Config) (*matrix.Dense, *matrix.Dense, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	a, err := matrix.NewRandom(cfg.Size, rng, cfg.MaxValue)
	if err != nil {
		return nil, nil, fmt.Errorf("Inputs: A: %w", err)
	}
	b, err := matrix.NewRandom(cfg.Size, rng, cfg.MaxValue)
	if err != nil {
		return nil, nil, fmt.Errorf("Inputs: B: %w", err)
	}

	return a, b, nil
}

// Run executes the sweep described by cfg. For every thread count it times
// the sequential kernel and then each policy. onResult, when non-nil, is
// called as soon as a measurement is available (streaming report).
//
// Errors:
//   - ErrConfig / parallel.ErrInvalidConfiguration from validation.
//   - Any engine error (e.g. parallel.ErrWorkerFailure in overflow-check mode).
//   - ErrMismatch when cfg.Verify is set and results differ.
func Run(cfg Config, onResult func(Result)) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	cfg = cfg.Normalize()
	policies, _ := cfg.policies() // validated above

	a, b, err := Inputs(cfg)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	var opts []kernel.Option
	if cfg.OverflowCheck {
		opts = append(opts, kernel.WithOverflowCheck())
	}
	glog.V(1).Infof("bench: n=%d threads=%v policies=%v repeat=%d", cfg.Size, cfg.Threads, cfg.Policies, cfg.Repeat)

	var results []Result
	emit := func(r Result) {
		results = append(results, r)
		if onResult != nil {
			onResult(r)
		}
	}

	for _, threads := range cfg.Threads {
		ref, elapsed, err := timeBest(cfg.Repeat, func() (*matrix.Dense, error) {
			return kernel.Multiply(a, b, opts...)
		})
		if err != nil {
			return results, fmt.Errorf("Run: sequential: %w", err)
		}
		emit(Result{Threads: threads, Algorithm: 1, Name: "sequential", Size: cfg.Size, Elapsed: elapsed})

		for i, p := range policies {
			c, elapsed, err := timeBest(cfg.Repeat, func() (*matrix.Dense, error) {
				return parallel.Multiply(a, b, threads, p, opts...)
			})
			if err != nil {
				return results, fmt.Errorf("Run: %s threads=%d: %w", p, threads, err)
			}
			if cfg.Verify && !c.Equal(ref) {
				return results, fmt.Errorf("Run: %s threads=%d: %w", p, threads, ErrMismatch)
			}
			emit(Result{Threads: threads, Algorithm: i + 2, Name: p.String(), Policy: p, Size: cfg.Size, Elapsed: elapsed})
		}
	}

	return results, nil
}

// timeBest runs fn repeat times and keeps the last matrix and the fastest duration.
func timeBest(repeat int, fn func() (*matrix.Dense, error)) (*matrix.Dense, time.Duration, error) {
	var (
		out  *matrix.Dense
		best time.Duration = -1
	)
	for i := 0; i < repeat; i++ {
		start := time.Now()
		m, err := fn()
		elapsed := time.Since(start)
		if err != nil {
			return nil, 0, err
		}
		out = m
		if best < 0 || elapsed < best {
			best = elapsed
		}
	}

	return out, best, nil
}
