package core

import "testing"

func TestPathSetVertexAndEdgeCount(t *testing.T) {
	ps := NewPathSet()
	ps.Update([]Path{
		{Agent: 0, Coords: []Coordinate{{0, 0}, {1, 0}, {2, 0}}},
		{Agent: 1, Coords: []Coordinate{{0, 1}, {1, 0}, {1, 0}}},
	})

	if got := ps.VertexCount(Coordinate{1, 0}, 1); got != 2 {
		t.Errorf("VertexCount((1,0), t=1) = %d, want 2", got)
	}
	if got := ps.EdgeCount(Coordinate{0, 0}, Coordinate{1, 0}, 0); got != 1 {
		t.Errorf("EdgeCount((0,0)->(1,0), t=0) = %d, want 1", got)
	}
}

func TestPathSetRemoveAgents(t *testing.T) {
	ps := NewPathSet()
	ps.Update([]Path{
		{Agent: 0, Coords: []Coordinate{{0, 0}}},
		{Agent: 1, Coords: []Coordinate{{1, 0}}},
	})
	ps.RemoveAgents([]AgentID{0})

	if got := len(ps.Paths()); got != 1 {
		t.Errorf("Paths() after removing agent 0 has %d entries, want 1", got)
	}
	if got := ps.VertexCount(Coordinate{0, 0}, 0); got != 0 {
		t.Errorf("VertexCount at removed agent's cell = %d, want 0", got)
	}
}
