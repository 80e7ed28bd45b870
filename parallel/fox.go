// SPDX-License-Identifier: MIT

package parallel

import (
	"github.com/golang/glog"

	"github.com/katalvlaran/blockmul/kernel"
	"github.com/katalvlaran/blockmul/matrix"
	"github.com/katalvlaran/blockmul/partition"
)

// foxTask returns the body of Fox worker r.Worker: the sequential triple loop
// restricted to rows [r.Lo, r.Hi), reading all of B and writing only dst.
//
// No communication with other workers is needed: output rows are disjoint and
// inputs are read-only. On failure dst is left zeroed by the kernel.
//
// Complexity: O(B·N^2) per worker, O(N) scratch in checked mode.
func foxTask(a, b *matrix.Dense, r partition.Range, dst *matrix.View, o kernel.Options) func() error {
	return func() error {
		if err := kernel.MultiplyRows(a, b, dst, o); err != nil {
			return err
		}
		if glog.V(2) {
			glog.Infof("fox: worker %d rows [%d,%d) done", r.Worker, r.Lo, r.Hi)
		}

		return nil
	}
}
