// Package sheet provides grid-addressable access to spreadsheet data and
// streak-based detection of the real data bounds inside a sheet.
package sheet

// CellReader is the minimal read surface shared by a live workbook and an
// in-memory grid. Rows and columns are 1-based; missing cells read as "".
type CellReader interface {
	Cell(row, col int) string
	MaxRow() int
	MaxColumn() int
}

// Grid is an immutable in-memory snapshot of one worksheet.
type Grid struct {
	rows   [][]string
	maxCol int
}

// NewGrid wraps a row-major snapshot as a Grid. Rows may be ragged; cells
// past a row's length read as empty.
func NewGrid(rows [][]string) *Grid {
	maxCol := 0
	for _, r := range rows {
		if len(r) > maxCol {
			maxCol = len(r)
		}
	}
	return &Grid{rows: rows, maxCol: maxCol}
}

// Cell returns the value at the 1-based row/column, or "" when out of range.
func (g *Grid) Cell(row, col int) string {
	if row < 1 || row > len(g.rows) || col < 1 {
		return ""
	}
	r := g.rows[row-1]
	if col > len(r) {
		return ""
	}
	return r[col-1]
}

func (g *Grid) MaxRow() int    { return len(g.rows) }
func (g *Grid) MaxColumn() int { return g.maxCol }

// Rows returns the underlying snapshot. Callers must not mutate it.
func (g *Grid) Rows() [][]string { return g.rows }
