package render

import (
	"strings"

	"tritris/internal/domain"
)

const (
	BlockCell        = "[]"
	EmptyCell        = "  "
	HorizontalBorder = "-"
	VerticalBorder   = "|"
	Corner           = "+"

	previewCols = 4
	previewRows = 2
)

// Board draws one playfield inside a border. When p is non-nil its occupied
// cells are overlaid; cells outside the grid are dropped.
func Board(rows [][]domain.Cell, width int, p *domain.Piece) []string {
	overlay := make(map[[2]int]bool)
	if p != nil {
		for r, row := range p.Matrix {
			for c, v := range row {
				if v {
					overlay[[2]int{p.X + c, p.Y + r}] = true
				}
			}
		}
	}

	border := Corner + strings.Repeat(HorizontalBorder, width*len(BlockCell)) + Corner
	out := make([]string, 0, len(rows)+2)
	out = append(out, border)
	for y, row := range rows {
		var b strings.Builder
		b.WriteString(VerticalBorder)
		for x, c := range row {
			if c == domain.Filled || overlay[[2]int{x, y}] {
				b.WriteString(BlockCell)
			} else {
				b.WriteString(EmptyCell)
			}
		}
		b.WriteString(VerticalBorder)
		out = append(out, b.String())
	}
	out = append(out, border)
	return out
}

// Preview draws the next piece centred in a fixed 4x2 box.
func Preview(m domain.Matrix) []string {
	cells := make([][]string, previewRows)
	for y := range cells {
		cells[y] = make([]string, previewCols)
		for x := range cells[y] {
			cells[y][x] = EmptyCell
		}
	}

	offX := (previewCols - m.Cols()) / 2
	offY := (previewRows - m.Rows()) / 2
	for r, row := range m {
		for c, v := range row {
			y, x := r+offY, c+offX
			if v && y >= 0 && y < previewRows && x >= 0 && x < previewCols {
				cells[y][x] = BlockCell
			}
		}
	}

	border := Corner + strings.Repeat(HorizontalBorder, previewCols*len(BlockCell)) + Corner
	out := []string{border}
	for _, row := range cells {
		out = append(out, VerticalBorder+strings.Join(row, "")+VerticalBorder)
	}
	return append(out, border)
}
