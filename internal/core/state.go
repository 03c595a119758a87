package core

import "strconv"

// State is the joint position of every agent in one group, in stable
// identifier order. States are produced by expansion and are immutable
// after construction.
type State []Agent

// Heuristic sums the per-color heuristic over every agent in the state
// (§3 invariant: h(state) = Σ H[agent.color][agent.y][agent.x]). Saturates
// to Unreachable rather than overflowing if any agent sits where its
// color's heuristic is infinite.
func (s State) Heuristic(h *Heuristic) int {
	total := 0
	for _, a := range s {
		v := h.Value(a.Color, a.Coord.X, a.Coord.Y)
		if v == Unreachable {
			return Unreachable
		}
		total += v
	}
	return total
}

// Key returns a canonical string encoding of the state, suitable for use
// as a closed-set map key. Agent order is already stable by identifier,
// so the key need only encode each agent's coordinate and banked waiting
// cost.
func (s State) Key() string {
	buf := make([]byte, 0, len(s)*16)
	for _, a := range s {
		buf = strconv.AppendInt(buf, int64(a.Coord.X), 10)
		buf = append(buf, ',')
		buf = strconv.AppendInt(buf, int64(a.Coord.Y), 10)
		buf = append(buf, ',')
		buf = strconv.AppendInt(buf, int64(a.WaitingCost), 10)
		buf = append(buf, '|')
	}
	return string(buf)
}

// Clone returns an independent copy of the state's agent slice.
func (s State) Clone() State {
	out := make(State, len(s))
	copy(out, s)
	return out
}
