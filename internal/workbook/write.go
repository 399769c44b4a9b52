package workbook

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"scoremerge/internal/fusion"
)

const fusionSheet = "Fusion"

// reviewColor matches the historical report: cells needing manual attention
// are filled solid red.
const reviewColor = "FF1111"

// SourceResult pairs a source sheet with its resolution outcome.
type SourceResult struct {
	Sheet   string
	Columns int
	State   *fusion.State
}

// MergeResult is everything the fusion sheet needs: the roster plus each
// source's resolved State, in sheet order.
type MergeResult struct {
	Roster  []string
	Sources []SourceResult
}

// WriteOptions control fusion sheet presentation.
type WriteOptions struct {
	ColumnWidth float64
}

// Write appends the fusion sheet to the workbook at path and saves the result
// next to it as <base>_output.xlsx. The output path is returned.
func Write(path string, result MergeResult, opts WriteOptions) (string, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return "", fmt.Errorf("open workbook: %w", err)
	}
	defer file.Close()

	sheetIndex, err := file.NewSheet(fusionSheet)
	if err != nil {
		return "", fmt.Errorf("create fusion sheet: %w", err)
	}

	reviewFill, err := file.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{reviewColor}},
	})
	if err != nil {
		return "", fmt.Errorf("create review style: %w", err)
	}
	warningFont, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: reviewColor, Bold: true, Italic: true},
	})
	if err != nil {
		return "", fmt.Errorf("create warning style: %w", err)
	}

	roster := append([]string(nil), result.Roster...)
	sort.Strings(roster)

	for i, name := range roster {
		if err := setCell(file, 1, i+1, name, 0); err != nil {
			return "", err
		}
	}

	// First column of each source block; every block is one name column plus
	// that source's score columns.
	positions := make([]int, len(result.Sources))
	pos := 2
	for n, source := range result.Sources {
		positions[n] = pos
		pos += source.Columns + 1
	}
	lastColumn := pos - 1

	for i, name := range roster {
		for n, source := range result.Sources {
			match, ok := source.State.Lookup(name)
			if !ok {
				continue
			}
			style := 0
			if source.State.Policy().NeedsReview(match.Tier) {
				style = reviewFill
			}
			if err := writeRecordCells(file, i+1, positions[n], match.SourceName, match.Scores, style); err != nil {
				return "", err
			}
		}
	}

	orphanStart := len(roster) + 2
	anyOrphan := false
	for n, source := range result.Sources {
		row := orphanStart
		for _, orphan := range source.State.Orphans() {
			anyOrphan = true
			if err := writeRecordCells(file, row, positions[n], orphan.SourceName, orphan.Scores, reviewFill); err != nil {
				return "", err
			}
			row++
		}
	}
	if anyOrphan {
		const warning = "Warning: some records could not be merged:"
		if err := setCell(file, 1, orphanStart, warning, warningFont); err != nil {
			return "", err
		}
	}

	width := opts.ColumnWidth
	if width <= 0 {
		width = 25
	}
	lastName, err := excelize.ColumnNumberToName(lastColumn)
	if err != nil {
		return "", fmt.Errorf("resolve last column: %w", err)
	}
	if err := file.SetColWidth(fusionSheet, "A", lastName, width); err != nil {
		return "", fmt.Errorf("set column widths: %w", err)
	}

	file.SetActiveSheet(sheetIndex)

	outPath := outputPath(path)
	if err := file.SaveAs(outPath); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}
	return outPath, nil
}

func writeRecordCells(file *excelize.File, row, col int, name string, scores []fusion.Score, style int) error {
	if err := setCell(file, col, row, name, style); err != nil {
		return err
	}
	for k, score := range scores {
		var value any
		if score.Valid {
			value = score.Value
		}
		if err := setCell(file, col+1+k, row, value, style); err != nil {
			return err
		}
	}
	return nil
}

func setCell(file *excelize.File, col, row int, value any, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("resolve cell (%d,%d): %w", col, row, err)
	}
	if value != nil {
		if err := file.SetCellValue(fusionSheet, cell, value); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	if style != 0 {
		if err := file.SetCellStyle(fusionSheet, cell, cell, style); err != nil {
			return fmt.Errorf("style cell %s: %w", cell, err)
		}
	}
	return nil
}

func outputPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_output" + ext
}
