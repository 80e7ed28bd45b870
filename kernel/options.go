// SPDX-License-Identifier: MIT

// Package kernel: functional configuration for the multiplication kernels.
//
// Arithmetic modes:
//   - default (wrapping): int32 two's-complement arithmetic. Overflowing cells
//     wrap silently, exactly like the fixed-width reference program.
//   - WithOverflowCheck: exact int64 accumulation; a cell whose exact value does
//     not fit int32 fails with ErrOverflow.
//
// Both modes yield bit-identical results for every kernel and every
// decomposition, so the parallel engines can be checked against Multiply.
package kernel

// DefaultOverflowCheck is the arithmetic mode used when no Option is supplied.
const DefaultOverflowCheck = false

// Option mutates Options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective kernel configuration after applying Option setters.
// Fields are unexported; resolve with NewOptions.
type Options struct {
	overflowCheck bool // DefaultOverflowCheck
}

// WithOverflowCheck enables exact accumulation with int32 range checks.
// Kernels then fail with ErrOverflow instead of wrapping.
func WithOverflowCheck() Option {
	return func(o *Options) { o.overflowCheck = true }
}

// WithWrapping restores the default wrapping arithmetic.
func WithWrapping() Option {
	return func(o *Options) { o.overflowCheck = false }
}

// NewOptions applies opts on top of the defaults (last-writer-wins).
// Complexity: O(len(opts)).
//
// AI-Hints: resolve once per call and hand the value to every worker.
func NewOptions(opts ...Option) Options {
	o := Options{overflowCheck: DefaultOverflowCheck}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// OverflowCheck reports whether exact checked arithmetic is enabled.
func (o Options) OverflowCheck() bool { return o.overflowCheck }
