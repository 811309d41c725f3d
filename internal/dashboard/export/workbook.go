package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet   = "Summary"
	maxSheetName   = 31
	valueColWidth  = 16
	titleColWidth  = 28
	changeColWidth = 10
)

var sheetNameReplacer = strings.NewReplacer(":", " ", "\\", " ", "/", " ", "?", " ", "*", " ", "[", "(", "]", ")")

// WriteWorkbook writes an xlsx workbook with a summary sheet and one sheet
// of projected points per card.
func WriteWorkbook(w io.Writer, report Report) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}
	if err := writeRow(f, summarySheet, 1, report.Title); err != nil {
		return err
	}
	if !report.GeneratedAt.IsZero() {
		if err := writeRow(f, summarySheet, 2, "Generated", report.GeneratedAt.UTC().Format("2006-01-02 15:04 MST")); err != nil {
			return err
		}
	}
	if err := writeRow(f, summarySheet, 4, "Card", "Value", "Growth", "Latest", "Change"); err != nil {
		return err
	}
	if err := f.SetColWidth(summarySheet, "A", "A", titleColWidth); err != nil {
		return err
	}
	if err := f.SetColWidth(summarySheet, "B", "E", valueColWidth); err != nil {
		return err
	}

	used := map[string]int{strings.ToLower(summarySheet): 1}
	for i, card := range report.Cards {
		latest, change := any(""), ""
		if n := len(card.Points); n > 0 {
			latest, change = card.Points[n-1].Value, card.Points[n-1].Change
		}
		if err := writeRow(f, summarySheet, i+5, card.Title, card.Value, card.Growth, latest, change); err != nil {
			return err
		}

		sheet := uniqueSheetName(card.Title, used)
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("export: sheet %q: %w", sheet, err)
		}
		if err := writeRow(f, sheet, 1, "Month", "Value", "Change"); err != nil {
			return err
		}
		for j, point := range card.Points {
			if err := writeRow(f, sheet, j+2, point.Month, point.Value, point.Change); err != nil {
				return err
			}
		}
		if err := f.SetColWidth(sheet, "B", "B", valueColWidth); err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, "C", "C", changeColWidth); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func writeRow(f *excelize.File, sheet string, row int, values ...any) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}

// uniqueSheetName strips characters excel rejects, truncates to the sheet
// name limit and suffixes duplicates.
func uniqueSheetName(title string, used map[string]int) string {
	name := strings.TrimSpace(sheetNameReplacer.Replace(title))
	if name == "" {
		name = "Card"
	}
	if r := []rune(name); len(r) > maxSheetName {
		name = string(r[:maxSheetName])
	}
	key := strings.ToLower(name)
	used[key]++
	if n := used[key]; n > 1 {
		suffix := fmt.Sprintf(" %d", n)
		if r := []rune(name); len(r)+len(suffix) > maxSheetName {
			name = string(r[:maxSheetName-len(suffix)])
		}
		name += suffix
	}
	return name
}
