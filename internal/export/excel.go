package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/evike/scooter-service/internal/aggregate"
	"github.com/evike/scooter-service/internal/models"
)

// WriteExcel renders the records as a single-sheet workbook. A non-nil
// summary appends the periodic summary-statistics block under the table.
func WriteExcel(w io.Writer, records []models.ServiceRecord, sheetName string, summary *aggregate.PeriodicSummary) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	if err := f.SetSheetRow(sheetName, "A1", &Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, row := range BuildRows(records) {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if summary != nil {
		base := len(records) + 3
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", base), "Summary Statistics")
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", base+1), "Total Records")
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", base+1), summary.TotalRecords)
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", base+2), "Completed")
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", base+2), summary.CompletedCount)
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", base+3), "Pending")
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", base+3), summary.PendingCount)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
