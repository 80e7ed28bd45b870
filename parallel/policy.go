// SPDX-License-Identifier: MIT

package parallel

import (
	"fmt"
	"strings"
)

// Policy selects how the coordinator splits work among workers.
type Policy int

const (
	// Fox: worker t multiplies its row block of A by the whole of B.
	Fox Policy = iota + 1
	// Cannon: worker t accumulates tile products over a skewed, cyclically
	// shifted T×T block grid.
	Cannon
)

// Policies lists every supported policy in a stable order.
func Policies() []Policy { return []Policy{Fox, Cannon} }

// String returns the lower-case policy name ("fox", "cannon").
func (p Policy) String() string {
	switch p {
	case Fox:
		return "fox"
	case Cannon:
		return "cannon"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Valid reports whether p is one of Policies().
func (p Policy) Valid() bool { return p == Fox || p == Cannon }

// ParsePolicy maps a case-insensitive name to a Policy.
// Errors: ErrUnknownPolicy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fox":
		return Fox, nil
	case "cannon":
		return Cannon, nil
	default:
		return 0, fmt.Errorf("ParsePolicy(%q): %w", s, ErrUnknownPolicy)
	}
}
