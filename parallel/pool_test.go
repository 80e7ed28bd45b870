package parallel

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestPoolCollectsEveryFailure: all failures are kept in worker order, and
// healthy tasks run to completion next to failing ones.
func TestPoolCollectsEveryFailure(t *testing.T) {
	boom := errors.New("boom")
	var ran atomic.Int32

	p := newPool(3, 6)
	for w := 0; w < 6; w++ {
		w := w // per-iteration copy; go 1.21 loop semantics share w
		p.submit(w, func() error {
			ran.Add(1)
			if w%2 == 1 {
				return boom
			}
			return nil
		})
	}
	failures := p.wait()

	require.Equal(t, int32(6), ran.Load())
	require.Len(t, failures, 3)
	for i, f := range failures {
		require.Equal(t, 2*i+1, f.Worker)
		require.ErrorIs(t, f, boom)
	}
}

// TestPoolRecoversPanics turns a panicking task into ErrWorkerPanic.
func TestPoolRecoversPanics(t *testing.T) {
	p := newPool(2, 2)
	p.submit(0, func() error { panic("index out of range") })
	p.submit(1, func() error { return nil })
	failures := p.wait()

	require.Len(t, failures, 1)
	require.Equal(t, 0, failures[0].Worker)
	require.ErrorIs(t, failures[0], ErrWorkerPanic)
	require.Contains(t, failures[0].Error(), "index out of range")
}

// TestPoolRespectsSize never runs more than size tasks at once.
func TestPoolRespectsSize(t *testing.T) {
	const size, tasks = 2, 8
	var running, peak atomic.Int32
	var mu sync.Mutex

	p := newPool(size, tasks)
	for w := 0; w < tasks; w++ {
		p.submit(w, func() error {
			cur := running.Add(1)
			mu.Lock()
			if cur > peak.Load() {
				peak.Store(cur)
			}
			mu.Unlock()
			time.Sleep(2 * time.Millisecond)
			running.Add(-1)
			return nil
		})
	}
	require.Empty(t, p.wait())
	require.LessOrEqual(t, peak.Load(), int32(size))
	require.Positive(t, peak.Load())
}

// TestFailureErrorFormatting pins the aggregate message and matching rules.
func TestFailureErrorFormatting(t *testing.T) {
	cause := errors.New("cause")
	ferr := &FailureError{
		Policy:   Cannon,
		Threads:  4,
		Failures: []*WorkerError{{Worker: 0, Err: cause}, {Worker: 2, Err: cause}},
	}

	require.ErrorIs(t, ferr, ErrWorkerFailure)
	require.ErrorIs(t, ferr, cause)
	require.Equal(t, []int{0, 2}, ferr.Workers())
	require.Equal(t,
		"parallel: worker failure (cannon, 2/4 workers failed [0 2]): worker 0: cause: worker 2: cause",
		ferr.Error())
}
