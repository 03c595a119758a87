// Package epea implements the Enhanced Partial-Expansion A* single-group
// search (§4.6), its Operator Finder (§4.3), and the per-joint-action
// conflict/cost rules (§4.4, §4.5) that sit between them.
package epea

import "github.com/elektrokombinacija/mapf-matching-epea/internal/core"

// Bundle is one agent's set of directions sharing a single Δf value — the
// payload of an core.OSFRow once picked by the Operator Finder.
type Bundle []core.Direction

// OperatorFinder enumerates joint Δf-row assignments, one row per agent,
// whose Δf sum equals a target exactly (§4.3). It is reconstructed fresh
// for every EPEA* expansion — its speed is crucial, so it carries no
// state beyond the current call.
type OperatorFinder struct {
	targetSum       int
	agentTables     []core.OSFTable
	minTail         []int // minTail[i] = Σ_{j>i} agentTables[j][0].DeltaF
	maxTail         []int // maxTail[i] = Σ_{j>i} agentTables[j][last].DeltaF
	nextTargetValue int   // smallest achievable sum > targetSum, or core.Unreachable
	tuples          [][]Bundle
}

// NewOperatorFinder constructs a finder for targetSum over the given
// per-agent OSF tables (each already sorted Δf-ascending by construction,
// §4.2's contract).
func NewOperatorFinder(targetSum int, agentTables []core.OSFTable) *OperatorFinder {
	f := &OperatorFinder{
		targetSum:       targetSum,
		agentTables:     agentTables,
		nextTargetValue: core.Unreachable,
	}

	for _, rows := range agentTables {
		if len(rows) == 0 {
			// An agent with no admissible move (its cell has infinite
			// heuristic) can never be expanded; report immediately.
			f.nextTargetValue = core.Unreachable
			return f
		}
	}

	n := len(agentTables)
	f.minTail = make([]int, n)
	f.maxTail = make([]int, n)
	sMin, sMax := 0, 0
	for i := n - 1; i >= 0; i-- {
		f.minTail[i] = sMin
		f.maxTail[i] = sMax
		rows := agentTables[i]
		sMin += rows[0].DeltaF
		sMax += rows[len(rows)-1].DeltaF
	}
	return f
}

// Find runs the recursive enumeration (§4.3 algorithm) and populates
// Tuples()/NextTargetValue(). Safe to call at most once per instance.
func (f *OperatorFinder) Find() {
	if len(f.agentTables) == 0 {
		return
	}
	if f.minTail == nil {
		return // constructor already detected an empty per-agent table
	}
	f.recurse(0, nil, 0)

	if f.nextTargetValue != core.Unreachable && f.nextTargetValue <= f.targetSum {
		panic(&core.InvariantViolation{
			Invariant: "operator finder next_T > T",
			Detail:    "next_T did not exceed the current target sum",
		})
	}
}

// recurse mirrors find_operators in the Python original: depth i holds
// running sum s over agents [0, i).
func (f *OperatorFinder) recurse(agent int, chosen []Bundle, sum int) {
	rows := f.agentTables[agent]
	last := len(f.agentTables) - 1

	for _, row := range rows {
		next := append(append([]Bundle{}, chosen...), Bundle(row.Directions))
		nextSum := sum + row.DeltaF

		if nextSum+f.minTail[agent] > f.targetSum {
			candidate := nextSum + f.minTail[agent]
			if candidate < f.nextTargetValue {
				f.nextTargetValue = candidate
			}
			return // rows are Δf-ascending: every later row is pruned too
		}

		if agent == last {
			if nextSum == f.targetSum {
				f.tuples = append(f.tuples, next)
			}
			continue
		}

		if nextSum+f.maxTail[agent] < f.targetSum {
			continue
		}
		f.recurse(agent+1, next, nextSum)
	}
}

// Tuples returns the accepted per-agent bundle assignments; each entry has
// one Bundle per agent, summing to targetSum.
func (f *OperatorFinder) Tuples() [][]Bundle {
	return f.tuples
}

// NextTargetValue returns the smallest achievable sum strictly greater
// than targetSum, or core.Unreachable if none exists.
func (f *OperatorFinder) NextTargetValue() int {
	return f.nextTargetValue
}

// ExpandJointActions turns accepted bundle tuples into concrete joint
// direction assignments, one per agent, via the Cartesian product of each
// tuple's per-agent bundle (mirrors itertools.product(*operator) in the
// Python original).
func ExpandJointActions(tuples [][]Bundle) [][]core.Direction {
	var out [][]core.Direction
	for _, tuple := range tuples {
		out = append(out, cartesianProduct(tuple)...)
	}
	return out
}

func cartesianProduct(bundles []Bundle) [][]core.Direction {
	if len(bundles) == 0 {
		return nil
	}
	combos := [][]core.Direction{{}}
	for _, bundle := range bundles {
		var next [][]core.Direction
		for _, combo := range combos {
			for _, d := range bundle {
				grown := append(append([]core.Direction{}, combo...), d)
				next = append(next, grown)
			}
		}
		combos = next
	}
	return combos
}
