package core

// Path is one agent's time-indexed coordinate sequence, starting at its
// start coordinate. For any time t ≥ len(Coords), the agent is assumed to
// remain at Coords[len-1] indefinitely (§4.7) — the indefinite tail is
// never materialized, only implied by At.
type Path struct {
	Agent  AgentID
	Coords []Coordinate
}

// At returns the agent's coordinate at time t, extending the final
// coordinate indefinitely for t beyond the recorded path.
func (p Path) At(t int) Coordinate {
	if len(p.Coords) == 0 {
		return Coordinate{}
	}
	if t < 0 {
		t = 0
	}
	if t >= len(p.Coords) {
		t = len(p.Coords) - 1
	}
	return p.Coords[t]
}

// Cost returns len(Coords)-1, the path's last time index. It equals the
// agent's arrival time only when the path ends at arrival; paths from a
// joint search all share one length, so trailing waits at the goal are
// counted too.
func (p Path) Cost() int {
	if len(p.Coords) == 0 {
		return 0
	}
	return len(p.Coords) - 1
}

// Conflicts reports whether p and other share a vertex or swap an edge at
// any time step up to the longer of their two lengths, with the shorter
// path's tail extended by its final coordinate (§4.8 conflict detection).
func (p Path) Conflicts(other Path) bool {
	maxLen := len(p.Coords)
	if len(other.Coords) > maxLen {
		maxLen = len(other.Coords)
	}
	if maxLen == 0 {
		return false
	}

	for t := 0; t < maxLen; t++ {
		if p.At(t) == other.At(t) {
			return true
		}
	}
	for t := 0; t < maxLen-1; t++ {
		pFrom, pTo := p.At(t), p.At(t+1)
		oFrom, oTo := other.At(t), other.At(t+1)
		if pFrom == oTo && pTo == oFrom && pFrom != pTo {
			return true
		}
	}
	return false
}
