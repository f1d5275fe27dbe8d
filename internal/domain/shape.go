package domain

import "strings"

type Kind byte // 'I','O','T','S','Z','J','L'

const (
	I Kind = 'I'
	O Kind = 'O'
	T Kind = 'T'
	S Kind = 'S'
	Z Kind = 'Z'
	J Kind = 'J'
	L Kind = 'L'
)

// Matrix is a piece bitmap, row-major. Rows are expected to share one length.
type Matrix [][]bool

var kinds = []Kind{I, O, T, S, Z, J, L}

// '#' marks an occupied cell.
var shapeRows = map[Kind][]string{
	I: {"####"},
	O: {"##", "##"},
	T: {".#.", "###"},
	S: {".##", "##."},
	Z: {"##.", ".##"},
	J: {"#..", "###"},
	L: {"..#", "###"},
}

// Kinds returns the catalog order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Catalog returns a fresh copy of every shape matrix.
func Catalog() map[Kind]Matrix {
	out := make(map[Kind]Matrix, len(shapeRows))
	for k, rows := range shapeRows {
		out[k] = MatrixFromRows(rows...)
	}
	return out
}

// ShapeOf returns a fresh matrix for k, or nil for an unknown kind.
func ShapeOf(k Kind) Matrix {
	rows, ok := shapeRows[k]
	if !ok {
		return nil
	}
	return MatrixFromRows(rows...)
}

// MatrixFromRows builds a matrix from '#'/'.' rows. Any byte other than '#'
// is empty.
func MatrixFromRows(rows ...string) Matrix {
	m := make(Matrix, len(rows))
	for r, row := range rows {
		m[r] = make([]bool, len(row))
		for c := 0; c < len(row); c++ {
			m[r][c] = row[c] == '#'
		}
	}
	return m
}

// Rotate turns m a quarter clockwise: an R x C input becomes C x R with
// out[c][r] = m[R-1-r][c]. m is left untouched.
func Rotate(m Matrix) Matrix {
	rows := len(m)
	if rows == 0 || len(m[0]) == 0 {
		return Matrix{}
	}
	cols := len(m[0])

	out := make(Matrix, cols)
	for c := range cols {
		out[c] = make([]bool, rows)
		for r := range rows {
			src := m[rows-1-r]
			if c < len(src) {
				out[c][r] = src[c]
			}
		}
	}
	return out
}

func (m Matrix) Rows() int { return len(m) }

func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Occupied counts the filled cells.
func (m Matrix) Occupied() int {
	n := 0
	for _, row := range m {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for r, row := range m {
		out[r] = make([]bool, len(row))
		copy(out[r], row)
	}
	return out
}

func (m Matrix) String() string {
	lines := make([]string, len(m))
	for r, row := range m {
		var b strings.Builder
		for _, v := range row {
			if v {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		lines[r] = b.String()
	}
	return strings.Join(lines, "\n")
}
