package core

// Node is one entry in the EPEA* search tree: a joint state, its
// accumulated cost g, heuristic sum h, current partial-expansion offset
// Δf, and a parent back-reference used only for path reconstruction — it
// never participates in equality or hashing.
type Node struct {
	State  State
	G      int
	H      int
	DeltaF int
	Parent *Node
}

// F returns g + h + Δf, the node's current priority.
func (n *Node) F() int {
	return n.G + n.H + n.DeltaF
}

// NewRoot builds the initial node for a group's starting state: g = 0,
// h = heuristic(state), Δf = 0, no parent.
func NewRoot(state State, h *Heuristic) *Node {
	return &Node{State: state, G: 0, H: state.Heuristic(h), DeltaF: 0, Parent: nil}
}
