package core

// Color identifies a matching class shared by agents and goals.
type Color int

// Goal is a coordinate an agent of matching Color may end its path on.
type Goal struct {
	X, Y  int
	Color Color
}

// Coordinate returns the goal's location as a Coordinate.
func (g Goal) Coordinate() Coordinate {
	return Coordinate{X: g.X, Y: g.Y}
}
