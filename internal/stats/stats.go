// Package stats implements the StatisticTracker collaborator (§9 Design
// Notes): a Prometheus-backed counter set that both epea.Search and
// id.Solver report into, scoped to a single solve run by its correlation
// ID. Nothing here ever leaves the process — no pushgateway, no remote
// write — the registry only backs an in-process snapshot for logging and
// tests.
package stats

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Tracker counts search progress for one run, labeled by runID. It
// satisfies both epea.Tracker and id.Tracker.
type Tracker struct {
	runID string

	nodesExpanded       *prometheus.CounterVec
	nodesReinserted     *prometheus.CounterVec
	operatorFinderCalls *prometheus.CounterVec
	childrenGenerated   *prometheus.CounterVec
	childrenConflict    *prometheus.CounterVec
	childrenDominance   *prometheus.CounterVec
	conflictsDetected   *prometheus.CounterVec
	groupsMerged        *prometheus.CounterVec
}

// NewTracker registers the counter families against registry and labels
// this run's series with runID. If registry already holds the families
// (from an earlier run on the same registry), they are reused, and each
// run's counts stay apart by their run_id label.
func NewTracker(registry *prometheus.Registry, runID string) *Tracker {
	t := &Tracker{
		runID:               runID,
		nodesExpanded:       newCounterVec(registry, "mapfm_nodes_expanded_total", "EPEA* nodes popped from the open set"),
		nodesReinserted:     newCounterVec(registry, "mapfm_nodes_reinserted_total", "EPEA* nodes re-pushed at their next Δf"),
		operatorFinderCalls: newCounterVec(registry, "mapfm_operator_finder_calls_total", "Operator Finder invocations"),
		childrenGenerated:   newCounterVec(registry, "mapfm_children_generated_total", "joint-action children accepted into the open set"),
		childrenConflict:    newCounterVec(registry, "mapfm_children_pruned_conflict_total", "children pruned by an intra-group conflict"),
		childrenDominance:   newCounterVec(registry, "mapfm_children_pruned_dominance_total", "children pruned by closed-set dominance"),
		conflictsDetected:   newCounterVec(registry, "mapfm_id_conflicts_total", "Independence Detection conflicts found"),
		groupsMerged:        newCounterVec(registry, "mapfm_id_merges_total", "Independence Detection group merges performed"),
	}
	return t
}

func newCounterVec(registry *prometheus.Registry, name, help string) *prometheus.CounterVec {
	cv := prometheus.NewCounterVec(prometheus.CounterOpts{Name: name, Help: help}, []string{"run_id"})
	if err := registry.Register(cv); err != nil {
		var existing prometheus.AlreadyRegisteredError
		if errors.As(err, &existing) {
			return existing.ExistingCollector.(*prometheus.CounterVec)
		}
		panic(err)
	}
	return cv
}

func (t *Tracker) NodeExpanded()         { t.nodesExpanded.WithLabelValues(t.runID).Inc() }
func (t *Tracker) NodeReinserted()       { t.nodesReinserted.WithLabelValues(t.runID).Inc() }
func (t *Tracker) OperatorFinderCall()   { t.operatorFinderCalls.WithLabelValues(t.runID).Inc() }
func (t *Tracker) ChildGenerated()       { t.childrenGenerated.WithLabelValues(t.runID).Inc() }
func (t *Tracker) ChildPrunedConflict()  { t.childrenConflict.WithLabelValues(t.runID).Inc() }
func (t *Tracker) ChildPrunedDominance() { t.childrenDominance.WithLabelValues(t.runID).Inc() }
func (t *Tracker) ConflictDetected()     { t.conflictsDetected.WithLabelValues(t.runID).Inc() }
func (t *Tracker) GroupMerged()          { t.groupsMerged.WithLabelValues(t.runID).Inc() }

// Snapshot is a point-in-time read of every counter, used for end-of-run
// logging.
type Snapshot struct {
	NodesExpanded       int
	NodesReinserted     int
	OperatorFinderCalls int
	ChildrenGenerated   int
	ChildrenConflict    int
	ChildrenDominance   int
	ConflictsDetected   int
	GroupsMerged        int
}

// Snapshot reads the current counter values for this tracker's run.
func (t *Tracker) Snapshot() Snapshot {
	return Snapshot{
		NodesExpanded:       counterValue(t.nodesExpanded, t.runID),
		NodesReinserted:     counterValue(t.nodesReinserted, t.runID),
		OperatorFinderCalls: counterValue(t.operatorFinderCalls, t.runID),
		ChildrenGenerated:   counterValue(t.childrenGenerated, t.runID),
		ChildrenConflict:    counterValue(t.childrenConflict, t.runID),
		ChildrenDominance:   counterValue(t.childrenDominance, t.runID),
		ConflictsDetected:   counterValue(t.conflictsDetected, t.runID),
		GroupsMerged:        counterValue(t.groupsMerged, t.runID),
	}
}

func counterValue(cv *prometheus.CounterVec, runID string) int {
	var m dto.Metric
	_ = cv.WithLabelValues(runID).Write(&m)
	return int(m.GetCounter().GetValue())
}
