// Package pipeline runs one complete resolve-and-transfer pass: load the
// three inputs, resolve the onboarding header row, map master columns to
// onboarding columns, and stream the data into the master template. All
// fatal errors surface before the first destination write.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/ashutoshjangde-ui/Masterfile-Automation/internal/mapping"
	"github.com/ashutoshjangde-ui/Masterfile-Automation/internal/sheet"
	"github.com/ashutoshjangde-ui/Masterfile-Automation/internal/transfer"
	"github.com/ashutoshjangde-ui/Masterfile-Automation/internal/types"
)

const (
	// Master layout: row 1 = display labels, row 2 = keys, data from row 3.
	masterLabelRow   = 1
	destStartRow     = 3
	columnHardCap    = 512
	columnStreakStop = 8
	rowHardCap       = 1048576
	autoDetectRows   = 10
	blankStreakLimit = 50

	// OutputFileName is the deterministic name of the generated workbook.
	OutputFileName = "final_masterfile_real.xlsx"
)

var masterProbeRows = []int{1, 2}

func init() {
	// The TUI owns the terminal; keep logrus quiet unless something is wrong.
	log.SetLevel(log.WarnLevel)
}

// Run executes one pass and returns its summary. Progress fractions in
// [0, 1] are sent to progressChan when non-nil; sends never block.
func Run(opts types.RunOptions, progressChan chan<- float64) (*types.RunResult, error) {
	report := func(p float64) {
		if progressChan != nil {
			select {
			case progressChan <- p:
			default:
			}
		}
	}

	if err := checkInputs(opts); err != nil {
		return nil, err
	}

	aliasData, err := os.ReadFile(opts.AliasPath)
	if err != nil {
		return nil, fmt.Errorf("read mapping JSON: %w", err)
	}
	aliases, err := mapping.ParseAliasTable(aliasData)
	if err != nil {
		return nil, err
	}
	log.Debugf("alias table loaded: %d entries", len(aliases))
	report(0.05)

	master, err := sheet.OpenWorkbook(opts.MasterPath)
	if err != nil {
		return nil, fmt.Errorf("masterfile: %w", err)
	}
	defer master.Close()

	usedCols := sheet.UsedColumns(master, masterProbeRows, columnHardCap, columnStreakStop)
	masterLabels := make([]string, usedCols)
	for c := 1; c <= usedCols; c++ {
		masterLabels[c-1] = master.Cell(masterLabelRow, c)
	}
	log.Debugf("masterfile: %d used columns", usedCols)
	report(0.15)

	grid, err := loadGrid(opts.OnboardingPath)
	if err != nil {
		return nil, fmt.Errorf("onboarding: %w", err)
	}
	report(0.3)

	cand, err := resolveHeader(grid, opts.HeaderRow, masterLabels, aliases)
	if err != nil {
		return nil, err
	}
	log.Debugf("header row %d: %d/%d master columns resolved",
		cand.HeaderRow+1, cand.Mapping.Resolved, usedCols)
	report(0.45)

	dataRows := dataRegion(grid, cand.HeaderRow)
	written, err := transfer.Rows(cand.Mapping.Entries, dataRows, destStartRow, usedCols,
		blankStreakLimit, master, func(done, total int) {
			report(0.45 + 0.5*float64(done)/float64(total))
		})
	if err != nil {
		return nil, err
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = filepath.Join(filepath.Dir(opts.MasterPath), OutputFileName)
	}
	if err := master.SaveAs(outputPath); err != nil {
		return nil, fmt.Errorf("save output: %w", err)
	}
	report(1.0)

	return &types.RunResult{
		OutputFile:  outputPath,
		HeaderRow:   cand.HeaderRow + 1,
		KeptColumns: len(cand.Columns),
		Resolved:    cand.Mapping.Resolved,
		Unmatched:   cand.Mapping.Unmatched,
		Report:      cand.Mapping.Report,
		RowsWritten: written,
	}, nil
}

func checkInputs(opts types.RunOptions) error {
	var missing []string
	if opts.MasterPath == "" {
		missing = append(missing, "masterfile template")
	}
	if opts.OnboardingPath == "" {
		missing = append(missing, "onboarding sheet")
	}
	if opts.AliasPath == "" {
		missing = append(missing, "mapping JSON")
	}
	if len(missing) > 0 {
		return &MissingInputError{Missing: missing}
	}
	return nil
}

func loadGrid(path string) (*sheet.Grid, error) {
	wb, err := sheet.OpenWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	grid, err := wb.Grid()
	if err != nil {
		return nil, &sheet.LoadError{Path: path, Err: err}
	}
	return grid, nil
}

// resolveHeader picks the onboarding header row, either the explicit
// 1-based choice or the best-scoring auto-detected candidate, and builds
// the mapping against it.
func resolveHeader(grid *sheet.Grid, headerRow int, masterLabels []string, aliases mapping.AliasTable) (mapping.Candidate, error) {
	if headerRow < 1 {
		return mapping.AutoDetectHeaderRow(grid, autoDetectRows, masterLabels, aliases)
	}

	if headerRow > grid.MaxRow() {
		return mapping.Candidate{}, &HeaderRowOutOfRangeError{Row: headerRow, MaxRow: grid.MaxRow()}
	}
	h0 := headerRow - 1
	cols := mapping.ResolveHeaders(grid.Rows()[h0])
	return mapping.Candidate{
		HeaderRow: h0,
		Columns:   cols,
		Mapping:   mapping.Build(masterLabels, cols, aliases),
	}, nil
}

// dataRegion returns the rows strictly below the header, clipped to the
// last row that holds any value.
func dataRegion(grid *sheet.Grid, headerRow int) [][]string {
	firstDataRow := headerRow + 2 // 1-based
	lastDataRow := sheet.UsedRows(grid, firstDataRow, grid.MaxColumn(), rowHardCap, blankStreakLimit)
	if lastDataRow < firstDataRow {
		return nil
	}
	return grid.Rows()[firstDataRow-1 : lastDataRow]
}
