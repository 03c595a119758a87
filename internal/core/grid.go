package core

// Coordinate is a grid cell, nonnegative and within grid bounds.
type Coordinate struct {
	X, Y int
}

// Move returns the coordinate reached by applying d from c. The caller
// is responsible for checking traversability/bounds of the result.
func (c Coordinate) Move(d Direction) Coordinate {
	dx, dy := d.Offset()
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// Grid is an immutable rectangular obstacle map.
type Grid struct {
	Width, Height int
	obstacle      []bool // row-major, true = blocked
}

// NewGrid builds a grid from a row-major traversability slice: obstacle[y*width+x]
// is true when (x, y) is blocked. A nil obstacle slice means an open grid
// with no obstacles at all.
func NewGrid(width, height int, obstacle []bool) *Grid {
	cp := make([]bool, width*height)
	copy(cp, obstacle)
	return &Grid{Width: width, Height: height, obstacle: cp}
}

// InBounds reports whether (x, y) lies within the grid rectangle.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Traversable reports whether (x, y) is in bounds and not an obstacle.
func (g *Grid) Traversable(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return !g.obstacle[y*g.Width+x]
}

// Neighbors4 returns the up to four 4-connected traversable neighbors of (x, y).
func (g *Grid) Neighbors4(x, y int) []Coordinate {
	var out []Coordinate
	for _, d := range CardinalDirections {
		dx, dy := d.Offset()
		nx, ny := x+dx, y+dy
		if g.Traversable(nx, ny) {
			out = append(out, Coordinate{X: nx, Y: ny})
		}
	}
	return out
}
