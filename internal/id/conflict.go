// Package id implements the Independence Detection meta-search (§4.8):
// solve agents as independent singleton groups, detect path conflicts,
// and progressively merge conflicting groups until the joint solution is
// collision-free or infeasible under the cost bound.
package id

import "github.com/elektrokombinacija/mapf-matching-epea/internal/core"

// Conflict names the first pair of agents whose paths collide.
type Conflict struct {
	A, B core.AgentID
}

// findConflict scans paths pairwise for vertex/edge conflicts in
// ascending agent-identifier order, the deterministic scan §5 requires.
func findConflict(paths []core.Path) *Conflict {
	for i := 0; i < len(paths); i++ {
		for j := i + 1; j < len(paths); j++ {
			if paths[i].Conflicts(paths[j]) {
				return &Conflict{A: paths[i].Agent, B: paths[j].Agent}
			}
		}
	}
	return nil
}
