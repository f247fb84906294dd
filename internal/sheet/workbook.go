package sheet

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xuri/excelize/v2"
)

// LoadError reports a workbook that could not be opened or read.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("could not read workbook %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Workbook wraps the active worksheet of an xlsx file. Reads and writes go
// through excelize cell by cell, so styles outside the written region are
// preserved when the file is saved back out.
type Workbook struct {
	f     *excelize.File
	sheet string

	dimOnce sync.Once
	maxCol  int
	maxRow  int
}

// OpenWorkbook opens path and binds to its first worksheet.
func OpenWorkbook(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		f.Close()
		return nil, &LoadError{Path: path, Err: fmt.Errorf("workbook has no sheets")}
	}
	return &Workbook{f: f, sheet: sheetName}, nil
}

// Cell returns the value at the 1-based row/column, or "" when unset.
func (w *Workbook) Cell(row, col int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return ""
	}
	v, _ := w.f.GetCellValue(w.sheet, name)
	return v
}

// SetCell writes value at the 1-based row/column.
func (w *Workbook) SetCell(row, col int, value string) error {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return w.f.SetCellValue(w.sheet, name, value)
}

// MaxRow reports the sheet's row extent.
func (w *Workbook) MaxRow() int {
	w.measure()
	return w.maxRow
}

// MaxColumn reports the sheet's column extent.
func (w *Workbook) MaxColumn() int {
	w.measure()
	return w.maxCol
}

// measure derives the sheet extent from the declared dimension ref and an
// actual row scan, keeping whichever is larger. Some producers write stale
// or missing dimension refs, others declare a huge nominal extent over
// mostly empty cells; the bounds detector's hard cap handles the latter.
func (w *Workbook) measure() {
	w.dimOnce.Do(func() {
		if dim, err := w.f.GetSheetDimension(w.sheet); err == nil && dim != "" {
			ref := dim
			if i := strings.IndexByte(dim, ':'); i >= 0 {
				ref = dim[i+1:]
			}
			if c, r, err := excelize.CellNameToCoordinates(ref); err == nil {
				w.maxCol, w.maxRow = c, r
			}
		}
		rows, err := w.f.GetRows(w.sheet)
		if err != nil {
			return
		}
		if len(rows) > w.maxRow {
			w.maxRow = len(rows)
		}
		for _, r := range rows {
			if len(r) > w.maxCol {
				w.maxCol = len(r)
			}
		}
	})
}

// Grid snapshots the full worksheet into an in-memory grid.
func (w *Workbook) Grid() (*Grid, error) {
	rows, err := w.f.GetRows(w.sheet)
	if err != nil {
		return nil, err
	}
	return NewGrid(rows), nil
}

// SaveAs serializes the workbook, including any cells written since open.
func (w *Workbook) SaveAs(path string) error {
	return w.f.SaveAs(path)
}

func (w *Workbook) Close() error {
	return w.f.Close()
}
