package stats

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestTrackerCountsIncrement(t *testing.T) {
	registry := prometheus.NewRegistry()
	tr := NewTracker(registry, "test-run")

	tr.NodeExpanded()
	tr.NodeExpanded()
	tr.NodeReinserted()
	tr.OperatorFinderCall()
	tr.ChildGenerated()
	tr.ChildGenerated()
	tr.ChildGenerated()
	tr.ChildPrunedConflict()
	tr.ChildPrunedDominance()
	tr.ConflictDetected()
	tr.GroupMerged()

	snap := tr.Snapshot()
	want := Snapshot{
		NodesExpanded:       2,
		NodesReinserted:     1,
		OperatorFinderCalls: 1,
		ChildrenGenerated:   3,
		ChildrenConflict:    1,
		ChildrenDominance:   1,
		ConflictsDetected:   1,
		GroupsMerged:        1,
	}
	if snap != want {
		t.Errorf("Snapshot() = %+v, want %+v", snap, want)
	}
}

func TestTrackerRunsAreIsolatedByLabel(t *testing.T) {
	// Two runs share one registry: the second NewTracker reuses the
	// already-registered families, and the run_id label keeps their
	// counter series distinct.
	registry := prometheus.NewRegistry()
	a := NewTracker(registry, "run-a")
	b := NewTracker(registry, "run-b")

	a.NodeExpanded()

	if got := a.Snapshot().NodesExpanded; got != 1 {
		t.Errorf("run-a NodesExpanded = %d, want 1", got)
	}
	if got := b.Snapshot().NodesExpanded; got != 0 {
		t.Errorf("run-b NodesExpanded = %d, want 0 (separate run_id label)", got)
	}
}
