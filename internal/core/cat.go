package core

// CAT (Collision Avoidance Table) answers aggregate occupancy questions
// over a set of committed paths, for tie-breaking (§4.6) and inter-group
// conflict reasoning (§4.8). Implementations are read-only from the
// searcher's point of view.
type CAT interface {
	// VertexCount returns how many committed agents occupy coord at time t.
	VertexCount(coord Coordinate, t int) int
	// EdgeCount returns how many committed agents traverse from->to
	// between t and t+1.
	EdgeCount(from, to Coordinate, t int) int
}

// PathSet owns the committed paths for the currently solved groups and
// exposes them as a CAT. Updates are additive; RemoveAgents removes the
// listed agents' paths on group dissolution (merge).
type PathSet struct {
	paths map[AgentID]Path
}

// NewPathSet creates an empty path set.
func NewPathSet() *PathSet {
	return &PathSet{paths: make(map[AgentID]Path)}
}

// Update commits a freshly solved group's paths.
func (ps *PathSet) Update(paths []Path) {
	for _, p := range paths {
		ps.paths[p.Agent] = p
	}
}

// RemoveAgents drops the given agents' committed paths, e.g. when their
// group is about to be merged and re-solved.
func (ps *PathSet) RemoveAgents(agents []AgentID) {
	for _, id := range agents {
		delete(ps.paths, id)
	}
}

// Paths returns every currently committed path, in no particular order.
func (ps *PathSet) Paths() []Path {
	out := make([]Path, 0, len(ps.paths))
	for _, p := range ps.paths {
		out = append(out, p)
	}
	return out
}

// VertexCount implements CAT by scanning committed paths directly; the
// engine targets modest agent counts per group so a linear scan per query
// stays cheap and keeps the aggregation logic trivially correct.
func (ps *PathSet) VertexCount(coord Coordinate, t int) int {
	count := 0
	for _, p := range ps.paths {
		if p.At(t) == coord {
			count++
		}
	}
	return count
}

// EdgeCount implements CAT by scanning committed paths directly.
func (ps *PathSet) EdgeCount(from, to Coordinate, t int) int {
	count := 0
	for _, p := range ps.paths {
		if p.At(t) == from && p.At(t+1) == to {
			count++
		}
	}
	return count
}
