package core

import "sort"

// OSFRow is one bundle of directions sharing the same Δf surplus, in the
// ascending order the Operator Finder (§4.3) depends on.
type OSFRow struct {
	Directions []Direction
	DeltaF     int
}

// OSFTable is a per-(color, cell) row list, Δf ascending. An empty table
// marks an unreachable cell (infinite heuristic) — a live agent must never
// occupy one.
type OSFTable []OSFRow

// OSF is the precomputed Operator Selection Function (§4.2): for every
// color and traversable cell, the sorted, collapsed table of move bundles
// and their Δf surplus relative to the parent's f. Built once per solve
// from a Grid and Heuristic and treated as read-only thereafter.
type OSF struct {
	grid   *Grid
	tables map[Color][]OSFTable // row-major width*height per color
}

// NewOSF precomputes OSF tables for every color the heuristic was built
// for.
func NewOSF(grid *Grid, heuristic *Heuristic) *OSF {
	o := &OSF{grid: grid, tables: make(map[Color][]OSFTable)}
	for _, color := range heuristic.Colors() {
		o.tables[color] = buildColorOSF(grid, heuristic, color)
	}
	return o
}

func buildColorOSF(grid *Grid, heuristic *Heuristic, color Color) []OSFTable {
	tables := make([]OSFTable, grid.Width*grid.Height)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			h := heuristic.Value(color, x, y)
			if h == Unreachable {
				continue // leave the zero-value empty OSFTable
			}
			tables[y*grid.Width+x] = generateCellOSF(grid, heuristic, color, x, y, h)
		}
	}
	return tables
}

// generateCellOSF builds the Δf row list for a single color and cell,
// then sorts and collapses it (§4.2 steps 1-4).
func generateCellOSF(grid *Grid, heuristic *Heuristic, color Color, x, y, h int) OSFTable {
	type rawRow struct {
		dir    Direction
		deltaF int
	}
	var raw []rawRow

	for _, d := range CardinalDirections {
		dx, dy := d.Offset()
		nx, ny := x+dx, y+dy
		if !grid.Traversable(nx, ny) {
			continue
		}
		nh := heuristic.Value(color, nx, ny)
		var deltaF int
		if nh == Unreachable {
			deltaF = Unreachable
		} else {
			deltaF = 1 + nh - h
		}
		raw = append(raw, rawRow{dir: d, deltaF: deltaF})
	}
	raw = append(raw, rawRow{dir: Wait, deltaF: 1})

	sort.SliceStable(raw, func(i, j int) bool { return raw[i].deltaF < raw[j].deltaF })

	table := make(OSFTable, 0, len(raw))
	for _, r := range raw {
		if n := len(table); n > 0 && table[n-1].DeltaF == r.deltaF {
			table[n-1].Directions = append(table[n-1].Directions, r.dir)
			continue
		}
		table = append(table, OSFRow{Directions: []Direction{r.dir}, DeltaF: r.deltaF})
	}
	return table
}

// Table returns the OSF table for (color, x, y), or an empty table if the
// cell is unreachable for that color or the color has no goals at all.
func (o *OSF) Table(color Color, x, y int) OSFTable {
	rows, ok := o.tables[color]
	if !ok || !o.grid.InBounds(x, y) {
		return nil
	}
	return rows[y*o.grid.Width+x]
}
