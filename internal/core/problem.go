package core

import "fmt"

// Problem is the external inbound representation (§6): grid, the agents'
// start coordinates/colors/identifiers, and the goal list. Agent count
// must equal goal count, and the color multiset of starts must equal that
// of goals — the matching between agents and same-colored goals is left
// free, not fixed here.
type Problem struct {
	Grid   *Grid
	Agents []Agent
	Goals  []Goal
}

// NewProblem validates and constructs a Problem. Validation failures are
// malformed-input errors (§7), returned before any search begins.
func NewProblem(grid *Grid, starts []Agent, goals []Goal) (*Problem, error) {
	if grid == nil || grid.Width <= 0 || grid.Height <= 0 {
		return nil, fmt.Errorf("%w: grid is nil or has non-positive dimensions", ErrDimensionMismatch)
	}
	if len(starts) != len(goals) {
		return nil, fmt.Errorf("%w: %d agents but %d goals", ErrDimensionMismatch, len(starts), len(goals))
	}

	for _, a := range starts {
		if !grid.InBounds(a.Coord.X, a.Coord.Y) {
			return nil, fmt.Errorf("%w: agent %d at (%d,%d)", ErrAgentOutOfBounds, a.ID, a.Coord.X, a.Coord.Y)
		}
		if !grid.Traversable(a.Coord.X, a.Coord.Y) {
			return nil, fmt.Errorf("%w: agent %d at (%d,%d)", ErrAgentOnObstacle, a.ID, a.Coord.X, a.Coord.Y)
		}
	}
	for _, g := range goals {
		if !grid.InBounds(g.X, g.Y) {
			return nil, fmt.Errorf("%w: goal at (%d,%d)", ErrAgentOutOfBounds, g.X, g.Y)
		}
		if !grid.Traversable(g.X, g.Y) {
			return nil, fmt.Errorf("%w: goal at (%d,%d)", ErrAgentOnObstacle, g.X, g.Y)
		}
	}

	startColors := make(map[Color]int)
	for _, a := range starts {
		startColors[a.Color]++
	}
	goalColors := make(map[Color]int)
	for _, g := range goals {
		goalColors[g.Color]++
	}
	if len(startColors) != len(goalColors) {
		return nil, fmt.Errorf("%w", ErrColorMismatch)
	}
	for c, n := range startColors {
		if goalColors[c] != n {
			return nil, fmt.Errorf("%w: color %d has %d starts but %d goals", ErrColorMismatch, c, n, goalColors[c])
		}
	}

	return &Problem{Grid: grid, Agents: starts, Goals: goals}, nil
}

// OnGoal reports whether agent currently occupies a goal of its own color.
func (p *Problem) OnGoal(agent Agent) bool {
	for _, g := range p.Goals {
		if g.X == agent.Coord.X && g.Y == agent.Coord.Y && g.Color == agent.Color {
			return true
		}
	}
	return false
}

// IsSolved reports whether every agent in state sits on a matching-color
// goal.
func (p *Problem) IsSolved(state State) bool {
	for _, a := range state {
		if !p.OnGoal(a) {
			return false
		}
	}
	return true
}
