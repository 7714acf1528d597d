package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/evike/scooter-service/internal/aggregate"
	"github.com/evike/scooter-service/internal/models"
)

var columnWidths = []float64{28, 30, 30, 34, 70, 26, 28, 24}

// WritePDF renders the records as a landscape table document. periodLabel
// is printed under the title when non-empty; a non-nil summary appends the
// periodic summary-statistics block.
func WritePDF(w io.Writer, records []models.ServiceRecord, title, periodLabel string, summary *aggregate.PeriodicSummary) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)
	if periodLabel != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 8, "Period: "+periodLabel)
		pdf.Ln(10)
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(59, 130, 246)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range Header {
		pdf.CellFormat(columnWidths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range BuildRows(records) {
		for i, cell := range row {
			pdf.CellFormat(columnWidths[i], 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if summary != nil {
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, "Summary Statistics")
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 7, fmt.Sprintf("Total Records: %d", summary.TotalRecords))
		pdf.Ln(7)
		pdf.Cell(0, 7, fmt.Sprintf("Completed: %d", summary.CompletedCount))
		pdf.Ln(7)
		pdf.Cell(0, 7, fmt.Sprintf("Pending: %d", summary.PendingCount))
		pdf.Ln(7)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}
