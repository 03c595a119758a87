// Package solver assembles C1-C7 into the single entry point a caller
// uses to solve a MAPFM instance (§4 Solver Facade): build the heuristic
// and OSF once, then either run a single EPEA* group over every agent or
// delegate to Independence Detection, logging the outcome the way the
// teacher's cmd/mapfhet driver reports solver results.
package solver

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/elektrokombinacija/mapf-matching-epea/internal/core"
	"github.com/elektrokombinacija/mapf-matching-epea/internal/epea"
	"github.com/elektrokombinacija/mapf-matching-epea/internal/id"
	"github.com/elektrokombinacija/mapf-matching-epea/internal/stats"
)

// Mode selects the top-level search strategy (§4.8): Joint runs every
// agent through one EPEA* group; Independent runs Independence
// Detection, which starts from singleton groups and merges on demand.
type Mode int

const (
	Joint Mode = iota
	Independent
)

// Result is what a solve run returns: the per-agent paths in agent-ID
// order, the summed cost, and whether a solution within the bound was
// found. Per §7, a Result with Feasible=false never distinguishes
// "no solution exists" from "no solution under MaxCost exists" — callers
// that need that distinction must re-solve with a looser bound.
type Result struct {
	Paths    []core.Path
	Cost     int
	Feasible bool
}

// Facade runs solves in a fixed mode. Each Solve call builds the C1/C2
// artifacts (grid-derived heuristic and OSF) afresh and shares them across
// every search invocation of that solve.
type Facade struct {
	Mode Mode

	Logger   *log.Logger
	Registry *prometheus.Registry // nil disables statistics collection
}

// NewFacade constructs a Facade running the given strategy. A nil
// *log.Logger falls back to a default logger at info level, the same
// default the teacher's demo entry point sets.
func NewFacade(mode Mode, logger *log.Logger, registry *prometheus.Registry) *Facade {
	if logger == nil {
		logger = log.Default()
	}
	return &Facade{Mode: mode, Logger: logger, Registry: registry}
}

// Solve runs the configured strategy against problem. upperBound == nil
// means unbounded (+∞); otherwise a returned solution costs at most
// *upperBound: the core's strict f < maxCost test (§9's strict-less-than
// resolution) is run with maxCost = *upperBound + 1. cats carries outer
// collision-avoidance tables used for tie-breaking: Joint mode passes all
// of them to the search; Independent mode uses only cats[0], alongside
// the run's own path set.
func (f *Facade) Solve(problem *core.Problem, upperBound *int, cats ...core.CAT) (Result, error) {
	runID := uuid.NewString()
	logger := f.Logger.With("run_id", runID, "agents", len(problem.Agents))
	logger.Info("solve starting")

	heuristic := core.NewHeuristic(problem.Grid, problem.Goals)
	osf := core.NewOSF(problem.Grid, heuristic)
	maxCost := core.Unreachable
	if upperBound != nil && *upperBound < core.Unreachable {
		maxCost = *upperBound + 1
	}

	var tracker *stats.Tracker
	if f.Registry != nil {
		tracker = stats.NewTracker(f.Registry, runID)
	}

	var (
		paths []core.Path
		cost  int
		ok    bool
	)

	switch f.Mode {
	case Joint:
		search := epea.NewSearch(problem, heuristic, osf, cats, maxCost, epeaTracker(tracker))
		paths, cost, ok = search.Solve(problem.Agents)
	case Independent:
		var outerCAT core.CAT
		if len(cats) > 0 {
			outerCAT = cats[0]
		}
		s := id.NewSolver(problem, heuristic, osf, maxCost, outerCAT, idTracker(tracker))
		paths, cost, ok = s.Solve(problem.Agents)
	default:
		return Result{}, fmt.Errorf("solver: unknown mode %d", f.Mode)
	}

	if !ok {
		logger.Warn("solve infeasible under bound", "max_cost", boundString(maxCost))
		return Result{Feasible: false}, nil
	}

	logFields := []any{"cost", cost}
	if tracker != nil {
		snap := tracker.Snapshot()
		logFields = append(logFields,
			"nodes_expanded", snap.NodesExpanded,
			"nodes_reinserted", snap.NodesReinserted,
			"id_conflicts", snap.ConflictsDetected,
			"id_merges", snap.GroupsMerged,
		)
	}
	logger.Info("solve succeeded", logFields...)

	return Result{Paths: paths, Cost: cost, Feasible: true}, nil
}

func boundString(maxCost int) string {
	if maxCost == core.Unreachable {
		return "unbounded"
	}
	return fmt.Sprintf("%d", maxCost)
}

// epeaTracker and idTracker return a genuinely nil interface value when
// t is nil, rather than a non-nil interface wrapping a nil *stats.Tracker
// — the two differ in Go, and epea/id's own nil checks on their Tracker
// fields depend on getting a true nil.
func epeaTracker(t *stats.Tracker) epea.Tracker {
	if t == nil {
		return nil
	}
	return t
}

func idTracker(t *stats.Tracker) id.Tracker {
	if t == nil {
		return nil
	}
	return t
}
