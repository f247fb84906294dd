// Package transfer streams data rows from resolved source columns into
// destination cells.
package transfer

import (
	"github.com/ashutoshjangde-ui/Masterfile-Automation/internal/mapping"
	"github.com/ashutoshjangde-ui/Masterfile-Automation/internal/normalize"
)

// CellWriter is the write surface of the destination sheet. Rows and
// columns are 1-based.
type CellWriter interface {
	SetCell(row, col int, value string) error
}

// Rows copies the mapped columns of each source data row into the
// destination, top to bottom. Rows with no data in any source-mapped
// column are skipped without leaving a gap; once blankStreakLimit
// consecutive rows are skipped the transfer stops, treating the run of
// blanks as end-of-data. Fixed-value columns write their literal on every
// row but never count as data. Returns the number of rows written.
func Rows(entries map[int]mapping.Entry, data [][]string, destStartRow, usedCols, blankStreakLimit int, w CellWriter, progress func(done, total int)) (int, error) {
	written, blanks := 0, 0

	for i, row := range data {
		if progress != nil {
			progress(i+1, len(data))
		}

		if !rowHasData(entries, row) {
			blanks++
			if blanks >= blankStreakLimit {
				break
			}
			continue
		}
		blanks = 0

		target := destStartRow + written
		for c := 1; c <= usedCols; c++ {
			entry, ok := entries[c]
			if !ok {
				continue
			}
			switch entry.Kind {
			case mapping.KindFixed:
				if err := w.SetCell(target, c, entry.Fixed); err != nil {
					return written, err
				}
			case mapping.KindSource:
				if entry.Source < len(row) {
					if err := w.SetCell(target, c, row[entry.Source]); err != nil {
						return written, err
					}
				}
			}
		}
		written++
	}

	return written, nil
}

// rowHasData reports whether any source-mapped column holds a non-blank
// value in row.
func rowHasData(entries map[int]mapping.Entry, row []string) bool {
	for _, entry := range entries {
		if entry.Kind != mapping.KindSource {
			continue
		}
		if entry.Source < len(row) && normalize.TrimCell(row[entry.Source]) != "" {
			return true
		}
	}
	return false
}
