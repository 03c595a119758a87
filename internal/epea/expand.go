package epea

import "github.com/elektrokombinacija/mapf-matching-epea/internal/core"

// buildChild applies a joint direction assignment to parent, one
// direction per agent in parent's state order, returning the child state
// and the cost added to g (§4.5).
func buildChild(problem *core.Problem, parent *core.Node, directions []core.Direction) (core.State, int) {
	agents := parent.State
	child := make(core.State, len(agents))
	addedCost := 0

	for i, agent := range agents {
		d := directions[i]
		if problem.OnGoal(agent) {
			if d == core.Wait {
				child[i] = agent.Move(d, agent.WaitingCost+1)
				continue
			}
			addedCost += agent.WaitingCost + 1
			child[i] = agent.Move(d, 0)
			continue
		}
		addedCost++
		child[i] = agent.Move(d, 0)
	}
	return child, addedCost
}

// hasIntraGroupConflict reports whether child exhibits a vertex or edge
// (swap) conflict among the agents of a single group (§4.4). Cross-group
// conflicts are never checked here — that's Independence Detection's job.
func hasIntraGroupConflict(parent, child core.State) bool {
	seen := make(map[core.Coordinate]bool, len(child))
	for i, agent := range child {
		if seen[agent.Coord] {
			return true
		}
		seen[agent.Coord] = true

		for j := i + 1; j < len(child); j++ {
			if child[i].Coord == parent[j].Coord && child[j].Coord == parent[i].Coord {
				return true
			}
		}
	}
	return false
}
