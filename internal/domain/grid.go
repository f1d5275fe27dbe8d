package domain

import "strings"

type Cell byte

const (
	Empty Cell = iota
	Filled
)

// Grid is one playfield. Row 0 is the top.
type Grid struct {
	width  int
	height int
	cells  [][]Cell // [y][x]
}

func NewGrid(width, height int) *Grid {
	g := &Grid{width: width, height: height}
	g.cells = make([][]Cell, height)
	for y := range g.cells {
		g.cells[y] = make([]Cell, width)
	}
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns Empty for coordinates outside the grid.
func (g *Grid) At(x, y int) Cell {
	if !g.inBounds(x, y) {
		return Empty
	}
	return g.cells[y][x]
}

// Set ignores coordinates outside the grid.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.inBounds(x, y) {
		return
	}
	g.cells[y][x] = c
}

// CanPlace reports whether every occupied cell of m, with its top-left at
// (x, y), lands inside the grid on an Empty cell.
func (g *Grid) CanPlace(m Matrix, x, y int) bool {
	for r, row := range m {
		for c, occupied := range row {
			if !occupied {
				continue
			}
			bx, by := x+c, y+r
			if !g.inBounds(bx, by) {
				return false
			}
			if g.cells[by][bx] != Empty {
				return false
			}
		}
	}
	return true
}

// Commit fills the cells covered by m. Cells outside the grid are skipped.
func (g *Grid) Commit(m Matrix, x, y int) {
	for r, row := range m {
		for c, occupied := range row {
			if occupied {
				g.Set(x+c, y+r, Filled)
			}
		}
	}
}

// ClearFullLines removes every row without an Empty cell, keeps the
// surviving rows in order and pads the top with empty rows.
func (g *Grid) ClearFullLines() int {
	kept := make([][]Cell, 0, g.height)
	for _, row := range g.cells {
		if !isFull(row) {
			kept = append(kept, row)
		}
	}

	cleared := g.height - len(kept)
	if cleared == 0 {
		return 0
	}

	cells := make([][]Cell, 0, g.height)
	for range cleared {
		cells = append(cells, make([]Cell, g.width))
	}
	g.cells = append(cells, kept...)
	return cleared
}

func isFull(row []Cell) bool {
	for _, c := range row {
		if c == Empty {
			return false
		}
	}
	return true
}

// Rows returns a deep copy of the cells, top row first.
func (g *Grid) Rows() [][]Cell {
	out := make([][]Cell, len(g.cells))
	for y, row := range g.cells {
		out[y] = make([]Cell, len(row))
		copy(out[y], row)
	}
	return out
}

func (g *Grid) Clone() *Grid {
	return &Grid{width: g.width, height: g.height, cells: g.Rows()}
}

// String draws the grid with '#' and '.', one line per row.
func (g *Grid) String() string {
	lines := make([]string, g.height)
	for y, row := range g.cells {
		var b strings.Builder
		for _, c := range row {
			if c == Filled {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
