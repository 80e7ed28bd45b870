// SPDX-License-Identifier: MIT

package partition

import "errors"

// ErrInvalidConfiguration is returned when a worker count cannot split the
// matrix into equal blocks (non-positive sizes, or N not divisible by T).
// It is reported before any work is dispatched.
var ErrInvalidConfiguration = errors.New("partition: invalid configuration")
