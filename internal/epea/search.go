package epea

import (
	"container/heap"

	"github.com/elektrokombinacija/mapf-matching-epea/internal/core"
)

// Tracker receives opaque, write-only progress counters from a Search; it
// never influences search correctness (§9 Design Notes — the
// StatisticTracker collaborator). A nil Tracker is always valid.
type Tracker interface {
	NodeExpanded()
	NodeReinserted()
	OperatorFinderCall()
	ChildGenerated()
	ChildPrunedConflict()
	ChildPrunedDominance()
}

// entry wraps a Node for the open-set heap, carrying the tie-break
// bookkeeping from §4.6/§9: insertion sequence (stable FIFO fallback),
// CAT hit count and a lexicographic direction key for the joint action
// that produced this node.
type entry struct {
	node    *core.Node
	seq     int
	catHits int
	dirKey  string
	index   int
}

type openHeap []*entry

func (h openHeap) Len() int { return len(h) }
func (h openHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.node.F() != b.node.F() {
		return a.node.F() < b.node.F()
	}
	if a.node.G != b.node.G {
		return a.node.G > b.node.G // prefer higher g (deeper search)
	}
	if a.catHits != b.catHits {
		return a.catHits < b.catHits // prefer fewer CAT hits
	}
	if a.dirKey != b.dirKey {
		return a.dirKey < b.dirKey // lexicographic on joint direction tuple
	}
	return a.seq < b.seq // insertion order
}
func (h openHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *openHeap) Push(x any) {
	e := x.(*entry)
	e.index = len(*h)
	*h = append(*h, e)
}
func (h *openHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return e
}

// Search is one EPEA* invocation over a single agent group (§4.6).
type Search struct {
	Problem   *core.Problem
	Heuristic *core.Heuristic
	OSF       *core.OSF
	CATs      []core.CAT
	MaxCost   int // core.Unreachable means +∞
	Tracker   Tracker
}

// NewSearch constructs a Search. maxCost of core.Unreachable means no
// bound.
func NewSearch(problem *core.Problem, heuristic *core.Heuristic, osf *core.OSF, cats []core.CAT, maxCost int, tracker Tracker) *Search {
	return &Search{Problem: problem, Heuristic: heuristic, OSF: osf, CATs: cats, MaxCost: maxCost, Tracker: tracker}
}

// Solve runs EPEA* for the given group starting state. It returns the
// per-agent paths and total cost on success, or ok=false if the bound
// (§4.6 bounded-cost mode) makes the instance infeasible.
func (s *Search) Solve(agents []core.Agent) (paths []core.Path, cost int, ok bool) {
	root := core.NewRoot(core.State(agents), s.Heuristic)

	open := &openHeap{}
	heap.Init(open)
	seq := 0

	closed := make(map[string]int)
	closed[root.State.Key()] = root.G

	if s.underBound(root) {
		heap.Push(open, &entry{node: root, seq: seq})
		seq++
	}

	for open.Len() > 0 {
		e := heap.Pop(open).(*entry)
		n := e.node
		s.trackExpand()

		if s.Problem.IsSolved(n.State) {
			return reconstructPaths(n), n.G, true
		}

		children, nextT := s.expand(n)
		depth := depthOf(n) + 1

		for _, c := range children {
			key := c.state.Key()
			if best, seen := closed[key]; seen && c.g >= best {
				s.trackPrunedDominance()
				continue
			}
			closed[key] = c.g

			child := &core.Node{State: c.state, G: c.g, H: c.state.Heuristic(s.Heuristic), DeltaF: 0, Parent: n}
			if !s.underBound(child) {
				continue
			}
			ce := &entry{node: child, seq: seq, catHits: s.catHits(n.State, c.state, depth), dirKey: dirKey(c.directions)}
			seq++
			heap.Push(open, ce)
			s.trackChildGenerated()
		}

		if nextT != core.Unreachable {
			n.DeltaF = nextT
			e.seq = seq
			seq++
			heap.Push(open, e)
			s.trackReinserted()
		}
	}

	return nil, 0, false
}

type childCandidate struct {
	state      core.State
	g          int
	directions []core.Direction
}

// expand calls the Operator Finder at n's current Δf target, builds and
// filters the resulting children (§4.4, §4.5), and returns them along
// with the next Δf value for n's own re-insertion (§4.6 steps 3-5).
func (s *Search) expand(n *core.Node) ([]childCandidate, int) {
	tables := make([]core.OSFTable, len(n.State))
	for i, agent := range n.State {
		tables[i] = s.OSF.Table(agent.Color, agent.Coord.X, agent.Coord.Y)
	}

	finder := NewOperatorFinder(n.DeltaF, tables)
	finder.Find()
	s.trackOperatorFinderCall()

	jointActions := ExpandJointActions(finder.Tuples())

	candidates := make([]childCandidate, 0, len(jointActions))
	for _, directions := range jointActions {
		childState, added := buildChild(s.Problem, n, directions)
		if hasIntraGroupConflict(n.State, childState) {
			s.trackPrunedConflict()
			continue
		}
		candidates = append(candidates, childCandidate{state: childState, g: n.G + added, directions: directions})
	}
	return candidates, finder.NextTargetValue()
}

// underBound reports whether n may be enqueued under the search's bound:
// f < MaxCost (strict — §9 Design Notes resolves the Open Question this
// way), or always true when MaxCost is core.Unreachable (+∞).
func (s *Search) underBound(n *core.Node) bool {
	if s.MaxCost == core.Unreachable {
		return true
	}
	return n.F() < s.MaxCost
}

// catHits sums CAT vertex/edge hits across the newly added steps at time
// depth, used only for open-set tie-breaking (§4.6) — never for pruning.
func (s *Search) catHits(parent, child core.State, depth int) int {
	if len(s.CATs) == 0 {
		return 0
	}
	hits := 0
	for i := range child {
		for _, cat := range s.CATs {
			hits += cat.VertexCount(child[i].Coord, depth)
			hits += cat.EdgeCount(parent[i].Coord, child[i].Coord, depth-1)
		}
	}
	return hits
}

func dirKey(directions []core.Direction) string {
	buf := make([]byte, len(directions))
	for i, d := range directions {
		buf[i] = byte('0' + int(d))
	}
	return string(buf)
}

func depthOf(n *core.Node) int {
	depth := 0
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		depth++
	}
	return depth
}

// reconstructPaths walks parent pointers from the goal node to the root,
// reversing to get a time-indexed coordinate sequence per agent (§4.6).
func reconstructPaths(goal *core.Node) []core.Path {
	var states []core.State
	for n := goal; n != nil; n = n.Parent {
		states = append(states, n.State)
	}
	// states is goal-to-root; reverse to root-to-goal.
	for i, j := 0, len(states)-1; i < j; i, j = i+1, j-1 {
		states[i], states[j] = states[j], states[i]
	}

	numAgents := len(states[0])
	paths := make([]core.Path, numAgents)
	for i := 0; i < numAgents; i++ {
		coords := make([]core.Coordinate, len(states))
		for t, st := range states {
			coords[t] = st[i].Coord
		}
		paths[i] = core.Path{Agent: states[0][i].ID, Coords: coords}
	}
	return paths
}

func (s *Search) trackExpand() {
	if s.Tracker != nil {
		s.Tracker.NodeExpanded()
	}
}
func (s *Search) trackReinserted() {
	if s.Tracker != nil {
		s.Tracker.NodeReinserted()
	}
}
func (s *Search) trackOperatorFinderCall() {
	if s.Tracker != nil {
		s.Tracker.OperatorFinderCall()
	}
}
func (s *Search) trackChildGenerated() {
	if s.Tracker != nil {
		s.Tracker.ChildGenerated()
	}
}
func (s *Search) trackPrunedConflict() {
	if s.Tracker != nil {
		s.Tracker.ChildPrunedConflict()
	}
}
func (s *Search) trackPrunedDominance() {
	if s.Tracker != nil {
		s.Tracker.ChildPrunedDominance()
	}
}
