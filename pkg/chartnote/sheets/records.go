// Package sheets moves chart data between descriptors and xlsx workbooks.
package sheets

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/chartnote-go/pkg/chartnote/models"
)

var (
	// ErrNoChart is returned when a workbook contains no chart part.
	ErrNoChart = errors.New("workbook contains no chart")
	// ErrNoRecords is returned when there is nothing to import or export.
	ErrNoRecords = errors.New("no records")
)

// ImportRecords reads the data region of a sheet as records. The first
// non-empty row holds the field names. An empty sheet name selects the
// first sheet.
func ImportRecords(path, sheet string) ([]models.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil, ErrNoRecords
	}
	grid := make([][]string, 0, maxRow-minRow+1)
	for r := minRow; r <= maxRow; r++ {
		row := make([]string, maxCol-minCol+1)
		for c := minCol; c <= maxCol && c < len(rows[r]); c++ {
			row[c-minCol] = rows[r][c]
		}
		grid = append(grid, row)
	}
	return recordsFromGrid(grid), nil
}

// ImportRange reads records from a defined name or a Sheet!A1:B9 reference.
func ImportRange(path, ref string) ([]models.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if !strings.Contains(ref, "!") {
		resolved, ok := lookupDefinedName(f, ref)
		if !ok {
			return nil, fmt.Errorf("unknown defined name %q", ref)
		}
		ref = resolved
	}
	area, err := parseReference(ref)
	if err != nil {
		return nil, err
	}
	grid, err := readArea(f, area)
	if err != nil {
		return nil, err
	}
	records := recordsFromGrid(grid)
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return records, nil
}

func lookupDefinedName(f *excelize.File, name string) (string, bool) {
	for _, dn := range f.GetDefinedName() {
		if strings.EqualFold(dn.Name, name) {
			return strings.TrimPrefix(dn.RefersTo, "="), true
		}
	}
	return "", false
}

// readArea returns the cell values of area, row by row.
func readArea(f *excelize.File, a area) ([][]string, error) {
	grid := make([][]string, 0, a.R2-a.R1+1)
	for r := a.R1; r <= a.R2; r++ {
		row := make([]string, 0, a.C2-a.C1+1)
		for c := a.C1; c <= a.C2; c++ {
			cell, err := excelize.CoordinatesToCellName(c, r)
			if err != nil {
				return nil, err
			}
			v, err := f.GetCellValue(a.Sheet, cell)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s!%s: %w", a.Sheet, cell, err)
			}
			row = append(row, v)
		}
		grid = append(grid, row)
	}
	return grid, nil
}

// recordsFromGrid turns a header row plus data rows into records. Blank
// headers become column<N>; blank cells and blank rows are skipped.
func recordsFromGrid(grid [][]string) []models.Record {
	records := []models.Record{}
	if len(grid) == 0 {
		return records
	}
	header := make([]string, len(grid[0]))
	for i, h := range grid[0] {
		h = strings.TrimSpace(h)
		if h == "" {
			h = "column" + strconv.Itoa(i+1)
		}
		header[i] = h
	}

	for _, row := range grid[1:] {
		rec := models.Record{}
		for i, cell := range row {
			if i >= len(header) || strings.TrimSpace(cell) == "" {
				continue
			}
			rec[header[i]] = parseValue(cell)
		}
		if len(rec) > 0 {
			records = append(records, rec)
		}
	}
	return records
}

// findDataBounds finds the bounding box of non-empty cells, or -1s when
// there are none.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}
	return
}

// parseValue returns a float64 for numeric cells and the string otherwise.
func parseValue(s string) any {
	s = strings.TrimSpace(s)
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
