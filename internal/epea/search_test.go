package epea

import (
	"testing"

	"github.com/elektrokombinacija/mapf-matching-epea/internal/core"
)

// newProblem builds an open width x height grid problem with the given
// single-agent/single-goal pairs, failing the test on invalid input.
func newProblem(t *testing.T, width, height int, starts []core.Agent, goals []core.Goal) *core.Problem {
	t.Helper()
	grid := core.NewGrid(width, height, nil)
	p, err := core.NewProblem(grid, starts, goals)
	if err != nil {
		t.Fatalf("NewProblem() unexpected error: %v", err)
	}
	return p
}

func newSearchFor(p *core.Problem) *Search {
	h := core.NewHeuristic(p.Grid, p.Goals)
	osf := core.NewOSF(p.Grid, h)
	return NewSearch(p, h, osf, nil, core.Unreachable, nil)
}

func TestSearchSingleAgentShortestPath(t *testing.T) {
	starts := []core.Agent{{ID: 0, Color: 1, Coord: core.Coordinate{X: 0, Y: 0}}}
	goals := []core.Goal{{X: 4, Y: 0, Color: 1}}
	p := newProblem(t, 5, 1, starts, goals)

	s := newSearchFor(p)
	paths, cost, ok := s.Solve(p.Agents)
	if !ok {
		t.Fatalf("Solve() failed on a trivially solvable corridor")
	}
	if cost != 4 {
		t.Errorf("cost = %d, want 4", cost)
	}
	if got := paths[0].Coords[len(paths[0].Coords)-1]; got != (core.Coordinate{X: 4, Y: 0}) {
		t.Errorf("final coordinate = %v, want (4,0)", got)
	}
}

func TestSearchTwoAgentsAvoidCollision(t *testing.T) {
	// Two agents head-on in a 3x2 room must not collide; the extra row
	// lets one agent step aside, so the optimal joint cost exceeds the
	// sum of unconstrained shortest paths (2+2 = 4).
	starts := []core.Agent{
		{ID: 0, Color: 1, Coord: core.Coordinate{X: 0, Y: 0}},
		{ID: 1, Color: 2, Coord: core.Coordinate{X: 2, Y: 0}},
	}
	goals := []core.Goal{{X: 2, Y: 0, Color: 1}, {X: 0, Y: 0, Color: 2}}
	p := newProblem(t, 3, 2, starts, goals)

	s := newSearchFor(p)
	paths, cost, ok := s.Solve(p.Agents)
	if !ok {
		t.Fatalf("Solve() failed on a solvable swap scenario")
	}
	if cost <= 4 {
		t.Errorf("cost = %d, want > 4 (agents cannot pass through each other within row 0)", cost)
	}

	for tt := 0; tt < len(paths[0].Coords) || tt < len(paths[1].Coords); tt++ {
		if paths[0].At(tt) == paths[1].At(tt) {
			t.Fatalf("agents occupy the same cell %v at t=%d", paths[0].At(tt), tt)
		}
	}
}

func TestSearchAgentsAlreadyOnMatchingGoal(t *testing.T) {
	// spec's S4: both agents already sit on a goal of their own color, so
	// the matching freedom costs nothing — the solved state is the root.
	starts := []core.Agent{
		{ID: 0, Color: 1, Coord: core.Coordinate{X: 0, Y: 0}},
		{ID: 1, Color: 1, Coord: core.Coordinate{X: 2, Y: 2}},
	}
	goals := []core.Goal{{X: 0, Y: 0, Color: 1}, {X: 2, Y: 2, Color: 1}}
	p := newProblem(t, 3, 3, starts, goals)

	s := newSearchFor(p)
	_, cost, ok := s.Solve(p.Agents)
	if !ok {
		t.Fatalf("Solve() failed when both agents already stand on a matching goal")
	}
	if cost != 0 {
		t.Errorf("cost = %d, want 0", cost)
	}
}

func TestSearchFreeMatchingPicksCheaperGoal(t *testing.T) {
	// Two same-colored goals, listed far one first. Agent 1 already stands
	// on the far goal (6,0); agent 0 must take the nearer goal (0,0) at
	// distance 2, not whichever is listed first.
	starts := []core.Agent{
		{ID: 0, Color: 1, Coord: core.Coordinate{X: 2, Y: 0}},
		{ID: 1, Color: 1, Coord: core.Coordinate{X: 6, Y: 0}},
	}
	goals := []core.Goal{{X: 6, Y: 0, Color: 1}, {X: 0, Y: 0, Color: 1}}
	p := newProblem(t, 7, 1, starts, goals)

	s := newSearchFor(p)
	_, cost, ok := s.Solve(p.Agents)
	if !ok {
		t.Fatalf("Solve() failed")
	}
	if cost != 2 {
		t.Errorf("cost = %d, want 2 (nearer goal at distance 2)", cost)
	}
}

func TestSearchCorridorSwapInfeasibleByTopology(t *testing.T) {
	// spec's S2: a 5x1 corridor has no side-step lane, so a two-agent swap
	// is infeasible regardless of cost budget, not merely under a tight
	// one. Bound generously (far above any plausible solution) so the
	// result can only be attributed to grid topology, and finitely so the
	// search is guaranteed to exhaust its (bounded) reachable states.
	starts := []core.Agent{
		{ID: 0, Color: 1, Coord: core.Coordinate{X: 0, Y: 0}},
		{ID: 1, Color: 2, Coord: core.Coordinate{X: 4, Y: 0}},
	}
	goals := []core.Goal{{X: 4, Y: 0, Color: 1}, {X: 0, Y: 0, Color: 2}}
	p := newProblem(t, 5, 1, starts, goals)

	h := core.NewHeuristic(p.Grid, p.Goals)
	osf := core.NewOSF(p.Grid, h)
	s := NewSearch(p, h, osf, nil, 20, nil)

	_, _, ok := s.Solve(p.Agents)
	if ok {
		t.Errorf("Solve() found a swap through a width-1 corridor; no side-step lane exists")
	}
}

func TestSearchCorridorSwapFeasibleWithPassingLane(t *testing.T) {
	// spec's S3: the same swap on a 5x2 grid has a passing lane, so it is
	// solvable, at exactly cost 10 (one agent's direct 4-step path, the
	// other's 6-step detour through row 1).
	starts := []core.Agent{
		{ID: 0, Color: 1, Coord: core.Coordinate{X: 0, Y: 0}},
		{ID: 1, Color: 2, Coord: core.Coordinate{X: 4, Y: 0}},
	}
	goals := []core.Goal{{X: 4, Y: 0, Color: 1}, {X: 0, Y: 0, Color: 2}}
	p := newProblem(t, 5, 2, starts, goals)

	s := newSearchFor(p)
	paths, cost, ok := s.Solve(p.Agents)
	if !ok {
		t.Fatalf("Solve() failed on a swap with a passing lane available")
	}
	if cost != 10 {
		t.Errorf("cost = %d, want 10", cost)
	}

	for tt := 0; tt < len(paths[0].Coords) || tt < len(paths[1].Coords); tt++ {
		if paths[0].At(tt) == paths[1].At(tt) {
			t.Fatalf("agents occupy the same cell %v at t=%d", paths[0].At(tt), tt)
		}
	}
}

func TestSearchInfeasibleUnderBound(t *testing.T) {
	starts := []core.Agent{{ID: 0, Color: 1, Coord: core.Coordinate{X: 0, Y: 0}}}
	goals := []core.Goal{{X: 4, Y: 0, Color: 1}}
	p := newProblem(t, 5, 1, starts, goals)

	h := core.NewHeuristic(p.Grid, p.Goals)
	osf := core.NewOSF(p.Grid, h)
	s := NewSearch(p, h, osf, nil, 2, nil) // true cost is 4, bound is far too tight

	_, _, ok := s.Solve(p.Agents)
	if ok {
		t.Errorf("Solve() succeeded under an infeasible bound")
	}
}

func TestSearchBoundLooserThanOptimalStillFindsOptimal(t *testing.T) {
	// §8 property 6: a bound B' strictly greater than the true optimum C
	// must still return C, never a worse solution that merely fits B'.
	starts := []core.Agent{
		{ID: 0, Color: 1, Coord: core.Coordinate{X: 0, Y: 0}},
		{ID: 1, Color: 2, Coord: core.Coordinate{X: 2, Y: 0}},
	}
	goals := []core.Goal{{X: 2, Y: 0, Color: 1}, {X: 0, Y: 0, Color: 2}}
	p := newProblem(t, 3, 2, starts, goals)

	unbounded := newSearchFor(p)
	_, optimalCost, ok := unbounded.Solve(p.Agents)
	if !ok {
		t.Fatalf("Solve() failed to find the unbounded optimum")
	}

	h := core.NewHeuristic(p.Grid, p.Goals)
	osf := core.NewOSF(p.Grid, h)
	loose := NewSearch(p, h, osf, nil, optimalCost+5, nil)
	_, cost, ok := loose.Solve(p.Agents)
	if !ok {
		t.Fatalf("Solve() failed under a bound looser than the optimum")
	}
	if cost != optimalCost {
		t.Errorf("cost under a loose bound = %d, want %d (the unbounded optimum, not a worse solution)", cost, optimalCost)
	}
}

func TestSearchUnreachableGoalColor(t *testing.T) {
	// An obstacle wall fully separates the agent from its only goal.
	grid := core.NewGrid(3, 1, []bool{false, true, false})
	starts := []core.Agent{{ID: 0, Color: 1, Coord: core.Coordinate{X: 0, Y: 0}}}
	goals := []core.Goal{{X: 2, Y: 0, Color: 1}}
	p, err := core.NewProblem(grid, starts, goals)
	if err != nil {
		t.Fatalf("NewProblem() unexpected error: %v", err)
	}

	s := newSearchFor(p)
	_, _, ok := s.Solve(p.Agents)
	if ok {
		t.Errorf("Solve() succeeded despite an unreachable goal")
	}
}
