package core

// AgentID is the stable integer identifier assigned at problem
// construction and preserved across every state derived from it.
type AgentID int

// Agent is one member of a State: its current cell, matching color, the
// identifier that traces it across the whole search, and the cost it has
// banked while sitting on a goal of matching color (§4.5) — charged only
// if it later leaves that goal.
type Agent struct {
	Coord       Coordinate
	Color       Color
	ID          AgentID
	WaitingCost int
}

// Move returns a new Agent at coord.Move(d), carrying the given waiting
// cost. Agents are immutable; every move produces a fresh value.
func (a Agent) Move(d Direction, waitingCost int) Agent {
	return Agent{Coord: a.Coord.Move(d), Color: a.Color, ID: a.ID, WaitingCost: waitingCost}
}
