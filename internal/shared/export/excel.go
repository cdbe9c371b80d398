package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ToXLSX serializes the table as a single-sheet spreadsheet with a bold
// header row.
func ToXLSX(t Table, sheet string) ([]byte, error) {
	if len(t.Rows) == 0 {
		return nil, ErrNoData
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	// Drop the default sheet when the caller named a different one.
	if sheet != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	for colIdx, header := range t.Headers {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("write header cell: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		endCell, _ := excelize.CoordinatesToCellName(len(t.Headers), 1)
		_ = f.SetCellStyle(sheet, "A1", endCell, headerStyle)
	}

	for rowIdx, row := range t.Rows {
		if len(row) != len(t.Headers) {
			return nil, fmt.Errorf("row has %d fields, header has %d", len(row), len(t.Headers))
		}
		for colIdx, value := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("write cell: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}

	return buf.Bytes(), nil
}
