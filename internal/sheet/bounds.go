package sheet

// UsedColumns scans columns left to right and returns the rightmost column
// holding a value in any of probeRows. The scan stops at hardCap columns,
// or early once emptyStreakStop consecutive columns come up empty, so
// sparse trailing noise does not force a full-width scan. Never returns
// less than 1.
func UsedColumns(s CellReader, probeRows []int, hardCap, emptyStreakStop int) int {
	maxTry := s.MaxColumn()
	if maxTry > hardCap {
		maxTry = hardCap
	}

	lastNonEmpty, streak := 0, 0
	for c := 1; c <= maxTry; c++ {
		anyVal := false
		for _, r := range probeRows {
			if s.Cell(r, c) != "" {
				anyVal = true
				break
			}
		}
		if anyVal {
			lastNonEmpty = c
			streak = 0
		} else {
			streak++
			if streak >= emptyStreakStop {
				break
			}
		}
	}

	if lastNonEmpty < 1 {
		return 1
	}
	return lastNonEmpty
}

// UsedRows is the row-wise companion of UsedColumns: starting at startRow
// it returns the last row holding a value in any of columns 1..usedCols,
// with the same hard cap and early-exit streak. Returns startRow-1 when
// the region holds no data at all.
func UsedRows(s CellReader, startRow, usedCols, hardCap, emptyStreakStop int) int {
	maxTry := s.MaxRow()
	if maxTry > hardCap {
		maxTry = hardCap
	}

	lastNonEmpty, streak := startRow-1, 0
	for r := startRow; r <= maxTry; r++ {
		anyVal := false
		for c := 1; c <= usedCols; c++ {
			if s.Cell(r, c) != "" {
				anyVal = true
				break
			}
		}
		if anyVal {
			lastNonEmpty = r
			streak = 0
		} else {
			streak++
			if streak >= emptyStreakStop {
				break
			}
		}
	}

	return lastNonEmpty
}
