package workbook

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"scoremerge/internal/fusion"
)

// Source is one sheet's worth of records, keyed by the name string exactly as
// the sheet spells it.
type Source struct {
	Sheet   string
	Columns int
	Records map[string][]fusion.Score
}

// Workbook is the parsed input: the roster sheet plus every source sheet.
type Workbook struct {
	Path    string
	Roster  []string
	Sources []Source
}

// Read parses a .xlsx workbook into roster and sources.
func Read(path string) (*Workbook, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return nil, fmt.Errorf("file %s does not look like a .xlsx workbook", path)
	}

	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	wb := &Workbook{Path: path}
	for i, sheet := range sheets {
		rows, err := file.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
		}

		nameCols := nameColumnCount(rows)
		names := readNames(rows, nameCols)

		if i == 0 {
			if len(names) == 0 {
				return nil, fmt.Errorf("roster sheet %q has no names in column A", sheet)
			}
			wb.Roster = names
			continue
		}
		if len(names) == 0 {
			// Empty trailing sheets (including a leftover fusion sheet from
			// an earlier run) contribute nothing.
			continue
		}

		source, err := readSource(sheet, rows, names, nameCols)
		if err != nil {
			return nil, err
		}
		wb.Sources = append(wb.Sources, source)
	}

	return wb, nil
}

// nameColumnCount detects the sheet layout: two name columns when B1 holds a
// non-empty, non-numeric value, otherwise one.
func nameColumnCount(rows [][]string) int {
	if len(rows) == 0 || len(rows[0]) < 2 {
		return 1
	}
	b1 := strings.TrimSpace(rows[0][1])
	if b1 == "" {
		return 1
	}
	if _, err := strconv.ParseFloat(b1, 64); err == nil {
		return 1
	}
	return 2
}

// readNames collects names row by row, stopping at the first blank cell in
// column A. With two name columns, the cells are joined with a space.
func readNames(rows [][]string, nameCols int) []string {
	var names []string
	for _, row := range rows {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			break
		}
		name := row[0]
		if nameCols == 2 && len(row) > 1 {
			name = row[0] + " " + row[1]
		}
		names = append(names, name)
	}
	return names
}

func readSource(sheet string, rows [][]string, names []string, nameCols int) (Source, error) {
	height := len(names)

	// Collect score columns after the name column(s); the first fully empty
	// column ends the table, matching how the sheets are filled by hand.
	var columns [][]fusion.Score
	for col := nameCols; ; col++ {
		scores := make([]fusion.Score, height)
		empty := true
		for i := 0; i < height; i++ {
			if col >= len(rows[i]) {
				continue
			}
			cell := strings.TrimSpace(rows[i][col])
			if cell == "" {
				continue
			}
			empty = false
			value, err := strconv.ParseFloat(strings.ReplaceAll(cell, ",", "."), 64)
			if err != nil {
				// Non-numeric score cells are treated as empty rather than
				// failing the whole sheet.
				continue
			}
			scores[i] = fusion.SomeScore(value)
		}
		if empty {
			break
		}
		columns = append(columns, scores)
	}

	records := make(map[string][]fusion.Score, len(names))
	for i, name := range names {
		row := make([]fusion.Score, len(columns))
		for j, column := range columns {
			row[j] = column[i]
		}
		records[name] = row
	}

	return Source{Sheet: sheet, Columns: len(columns), Records: records}, nil
}
