package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet describes one worksheet of tabular content.
type Sheet struct {
	Title  string
	Header []string
	Rows   [][]string
}

// Workbook renders the sheet into a new workbook: a bold header row with an
// autofilter, one row per record below it, and column widths sized to the
// content.
func Workbook(s Sheet) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", s.Title); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	for col, h := range s.Header {
		cell := fmt.Sprintf("%s1", colName(col+1))
		if err := f.SetCellStr(s.Title, cell, h); err != nil {
			return nil, fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	end := colName(len(s.Header)) + "1"
	_ = f.SetCellStyle(s.Title, "A1", end, bold)
	_ = f.AutoFilter(s.Title, "A1:"+end, nil)

	for i, row := range s.Rows {
		for c, val := range row {
			cell := fmt.Sprintf("%s%d", colName(c+1), i+2)
			if err := f.SetCellStr(s.Title, cell, val); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	// Width by the longest value among the header and the first rows.
	for c := 1; c <= len(s.Header); c++ {
		width := len(s.Header[c-1])
		for r := 0; r < len(s.Rows) && r < 50; r++ {
			if l := len(s.Rows[r][c-1]); l > width {
				width = l
			}
		}
		w := float64(width) * 0.9
		if w < 10 {
			w = 10
		}
		if w > 40 {
			w = 40
		}
		_ = f.SetColWidth(s.Title, colName(c), colName(c), w)
	}
	return f, nil
}

// WriteFile renders the sheet and saves the workbook at path.
func WriteFile(path string, s Sheet) error {
	f, err := Workbook(s)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

// colName converts a 1-based column number to its spreadsheet letter form.
func colName(n int) string {
	name, _ := excelize.ColumnNumberToName(n)
	return name
}
