package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/harlens/harlens/lens"
)

// WriteExcel writes the report's four tables to path as one workbook with a
// sheet per table.
func WriteExcel(r *lens.Report, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, table := range BuildTables(r) {
		if err := writeSheet(f, table, i == 0); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, table Table, first bool) error {
	// the workbook opens with a default sheet, reuse it for the first table
	if first {
		if err := f.SetSheetName("Sheet1", table.Name); err != nil {
			return fmt.Errorf("failed to name sheet %q: %w", table.Name, err)
		}
	} else {
		if _, err := f.NewSheet(table.Name); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", table.Name, err)
		}
	}

	if err := setRow(f, table.Name, 1, table.Header); err != nil {
		return err
	}
	for i, row := range table.Rows {
		if err := setRow(f, table.Name, i+2, row); err != nil {
			return err
		}
	}

	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("failed to compute cell for row %d: %w", rowNum, err)
	}

	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}

	if err := f.SetSheetRow(sheet, cell, &row); err != nil {
		return fmt.Errorf("failed to write row %d of sheet %q: %w", rowNum, sheet, err)
	}
	return nil
}
