// Package export renders tabular reports as spreadsheets.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Table is one sheet of a workbook. Cells are written as-is, so numbers stay numeric.
type Table struct {
	Sheet   string
	Title   string
	Headers []string
	Rows    [][]interface{}
	Footer  []interface{}
}

// XLSX renders the tables into a workbook, one sheet each, in order.
func XLSX(tables ...Table) ([]byte, error) {
	if len(tables) == 0 {
		return nil, fmt.Errorf("export: no tables to render")
	}

	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("export: create style: %w", err)
	}

	for i, t := range tables {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), t.Sheet); err != nil {
				return nil, fmt.Errorf("export: rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(t.Sheet); err != nil {
			return nil, fmt.Errorf("export: add sheet %q: %w", t.Sheet, err)
		}

		if err := writeTable(f, t, bold); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeTable(f *excelize.File, t Table, bold int) error {
	row := 1
	if t.Title != "" {
		if err := f.SetCellValue(t.Sheet, "A1", t.Title); err != nil {
			return fmt.Errorf("export: write title: %w", err)
		}
		if err := f.SetCellStyle(t.Sheet, "A1", "A1", bold); err != nil {
			return fmt.Errorf("export: style title: %w", err)
		}
		row = 3
	}

	if err := writeRow(f, t.Sheet, row, toCells(t.Headers)); err != nil {
		return err
	}
	if len(t.Headers) > 0 {
		first, _ := excelize.CoordinatesToCellName(1, row)
		last, _ := excelize.CoordinatesToCellName(len(t.Headers), row)
		if err := f.SetCellStyle(t.Sheet, first, last, bold); err != nil {
			return fmt.Errorf("export: style header: %w", err)
		}
	}
	row++

	for _, cells := range t.Rows {
		if err := writeRow(f, t.Sheet, row, cells); err != nil {
			return err
		}
		row++
	}

	if len(t.Footer) > 0 {
		if err := writeRow(f, t.Sheet, row, t.Footer); err != nil {
			return err
		}
		first, _ := excelize.CoordinatesToCellName(1, row)
		last, _ := excelize.CoordinatesToCellName(len(t.Footer), row)
		if err := f.SetCellStyle(t.Sheet, first, last, bold); err != nil {
			return fmt.Errorf("export: style footer: %w", err)
		}
	}

	if len(t.Headers) > 0 {
		lastCol, _ := excelize.ColumnNumberToName(len(t.Headers))
		if err := f.SetColWidth(t.Sheet, "A", lastCol, 20); err != nil {
			return fmt.Errorf("export: set width: %w", err)
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	for col, value := range cells {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("export: cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("export: write %s: %w", cell, err)
		}
	}
	return nil
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}
