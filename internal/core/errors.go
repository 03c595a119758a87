package core

import "fmt"

// Malformed-input sentinels (§7): rejected at construction, before search
// begins. Wrap with fmt.Errorf("%w: ...") so callers can errors.Is against
// them; no error-wrapping library appears anywhere in the retrieved
// corpus, so this area is deliberately stdlib-only (see DESIGN.md).
var (
	ErrDimensionMismatch = fmt.Errorf("grid dimensions do not match obstacle data")
	ErrAgentOutOfBounds  = fmt.Errorf("agent or goal coordinate outside grid bounds")
	ErrAgentOnObstacle   = fmt.Errorf("agent or goal coordinate is not traversable")
	ErrColorMismatch     = fmt.Errorf("color multiset of starts does not match goals")
)

// InvariantViolation is the diagnostic payload for the "Invariant
// violation" row of §7: an intra-group conflict reaching Independence
// Detection, next_T ≤ T from the Operator Finder, or a negative
// heuristic. These indicate implementation bugs, not solvable problem
// instances, so the engine aborts rather than returning a sentinel.
type InvariantViolation struct {
	Invariant string
	Detail    string
}

func (e *InvariantViolation) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("invariant violated: %s", e.Invariant)
	}
	return fmt.Sprintf("invariant violated: %s (%s)", e.Invariant, e.Detail)
}
