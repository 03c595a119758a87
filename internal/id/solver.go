package id

import (
	"sort"

	"github.com/elektrokombinacija/mapf-matching-epea/internal/core"
	"github.com/elektrokombinacija/mapf-matching-epea/internal/epea"
)

// Tracker extends epea.Tracker with the counters Independence Detection
// itself produces; a nil Tracker is always valid.
type Tracker interface {
	epea.Tracker
	ConflictDetected()
	GroupMerged()
}

// Solver runs Independence Detection over a full agent set (§4.8).
type Solver struct {
	Problem   *core.Problem
	Heuristic *core.Heuristic
	OSF       *core.OSF
	MaxCost   int // core.Unreachable means +∞
	OuterCAT  core.CAT
	Tracker   Tracker
}

// NewSolver constructs an id.Solver.
func NewSolver(problem *core.Problem, heuristic *core.Heuristic, osf *core.OSF, maxCost int, outerCAT core.CAT, tracker Tracker) *Solver {
	return &Solver{Problem: problem, Heuristic: heuristic, OSF: osf, MaxCost: maxCost, OuterCAT: outerCAT, Tracker: tracker}
}

type group struct {
	agents []core.Agent
	cost   int
}

func (g group) has(id core.AgentID) bool {
	for _, a := range g.agents {
		if a.ID == id {
			return true
		}
	}
	return false
}

// Solve decomposes agents into singleton groups, solves each
// independently, then merges on conflict until the full solution is
// conflict-free or the cost bound makes that impossible.
func (s *Solver) Solve(agents []core.Agent) ([]core.Path, int, bool) {
	pathSet := core.NewPathSet()
	cats := s.buildCATs(pathSet)

	totalCost := 0
	for _, a := range agents {
		v := s.Heuristic.Value(a.Color, a.Coord.X, a.Coord.Y)
		if v == core.Unreachable {
			return nil, 0, false // no matching goal is reachable at all
		}
		totalCost += v
	}

	var groups []group
	paths := make(map[core.AgentID]core.Path, len(agents))

	for _, a := range agents {
		totalCost -= s.Heuristic.Value(a.Color, a.Coord.X, a.Coord.Y)

		search := epea.NewSearch(s.Problem, s.Heuristic, s.OSF, cats, s.budget(totalCost), epea.Tracker(s.Tracker))
		solved, cost, ok := search.Solve([]core.Agent{a})
		if !ok {
			return nil, 0, false
		}

		pathSet.Update(solved)
		totalCost += cost
		groups = append(groups, group{agents: []core.Agent{a}, cost: cost})
		paths[a.ID] = solved[0]
	}

	for {
		conflict := findConflict(orderedPaths(paths))
		if conflict == nil {
			return orderedPaths(paths), totalCost, true
		}
		s.trackConflict()

		var ok bool
		groups, totalCost, ok = s.mergeGroups(groups, conflict.A, conflict.B, cats, pathSet, paths, totalCost)
		if !ok {
			return nil, 0, false
		}
	}
}

// mergeGroups combines the groups containing agentA and agentB, re-solves
// the union, and folds the result back into groups/paths/totalCost
// (§4.8 steps 1-6).
func (s *Solver) mergeGroups(
	groups []group,
	agentA, agentB core.AgentID,
	cats []core.CAT,
	pathSet *core.PathSet,
	paths map[core.AgentID]core.Path,
	totalCost int,
) ([]group, int, bool) {
	idxA, idxB := -1, -1
	for i, g := range groups {
		if g.has(agentA) {
			idxA = i
		}
		if g.has(agentB) {
			idxB = i
		}
	}
	if idxA == -1 || idxB == -1 {
		panic(&core.InvariantViolation{Invariant: "conflicting agent has no group", Detail: "ID bookkeeping bug"})
	}
	if idxA == idxB {
		panic(&core.InvariantViolation{
			Invariant: "intra-group conflict reached Independence Detection",
			Detail:    "a single EPEA* group produced a path with an internal conflict",
		})
	}

	groupA, groupB := groups[idxA], groups[idxB]
	totalCost -= groupA.cost + groupB.cost

	mergedAgents := append(append([]core.Agent{}, groupA.agents...), groupB.agents...)
	removed := make([]core.AgentID, 0, len(mergedAgents))
	for _, a := range mergedAgents {
		removed = append(removed, a.ID)
	}
	pathSet.RemoveAgents(removed)

	search := epea.NewSearch(s.Problem, s.Heuristic, s.OSF, cats, s.budget(totalCost), epea.Tracker(s.Tracker))
	solved, cost, ok := search.Solve(mergedAgents)
	if !ok {
		return nil, 0, false
	}
	s.trackMerge()

	pathSet.Update(solved)
	for _, p := range solved {
		paths[p.Agent] = p
	}
	totalCost += cost

	next := make([]group, 0, len(groups)-1)
	for i, g := range groups {
		if i == idxA {
			next = append(next, group{agents: mergedAgents, cost: cost})
			continue
		}
		if i == idxB {
			continue
		}
		next = append(next, g)
	}
	return next, totalCost, true
}

func (s *Solver) buildCATs(pathSet *core.PathSet) []core.CAT {
	var cats []core.CAT
	if s.OuterCAT != nil {
		cats = append(cats, s.OuterCAT)
	}
	cats = append(cats, pathSet)
	return cats
}

func (s *Solver) budget(totalCost int) int {
	if s.MaxCost == core.Unreachable {
		return core.Unreachable
	}
	return s.MaxCost - totalCost
}

func (s *Solver) trackConflict() {
	if s.Tracker != nil {
		s.Tracker.ConflictDetected()
	}
}
func (s *Solver) trackMerge() {
	if s.Tracker != nil {
		s.Tracker.GroupMerged()
	}
}

func orderedPaths(paths map[core.AgentID]core.Path) []core.Path {
	out := make([]core.Path, 0, len(paths))
	for _, p := range paths {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Agent < out[j].Agent })
	return out
}
