package sheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func fixtureWorkbook(t *testing.T, rows [][]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.xlsx")
	f := excelize.NewFile()
	sheetName := f.GetSheetName(0)
	for r, row := range rows {
		for c, val := range row {
			if val == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheetName, cell, val))
		}
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestOpenWorkbookReadWrite(t *testing.T) {
	path := fixtureWorkbook(t, [][]string{
		{"SKU", "Title"},
		{"ABC123", "Widget"},
	})

	wb, err := OpenWorkbook(path)
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, "SKU", wb.Cell(1, 1))
	assert.Equal(t, "Widget", wb.Cell(2, 2))
	assert.Equal(t, "", wb.Cell(5, 5))
	assert.GreaterOrEqual(t, wb.MaxRow(), 2)
	assert.GreaterOrEqual(t, wb.MaxColumn(), 2)

	require.NoError(t, wb.SetCell(3, 1, "DEF456"))
	out := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, wb.SaveAs(out))

	reopened, err := OpenWorkbook(out)
	require.NoError(t, err)
	defer reopened.Close()
	assert.Equal(t, "DEF456", reopened.Cell(3, 1))
}

func TestOpenWorkbookGrid(t *testing.T) {
	path := fixtureWorkbook(t, [][]string{
		{"a", "b"},
		{"c"},
	})

	wb, err := OpenWorkbook(path)
	require.NoError(t, err)
	defer wb.Close()

	g, err := wb.Grid()
	require.NoError(t, err)
	assert.Equal(t, "a", g.Cell(1, 1))
	assert.Equal(t, "c", g.Cell(2, 1))
}

func TestOpenWorkbookCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a workbook"), 0o644))

	_, err := OpenWorkbook(path)
	require.Error(t, err)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.Equal(t, path, loadErr.Path)
}
