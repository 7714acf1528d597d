// Package export renders filtered record sets into spreadsheet and PDF
// documents. It decides layout and encoding only; which records and which
// derived fields appear is decided by the aggregation callers.
package export

import (
	"strconv"
	"strings"
	"time"

	"github.com/evike/scooter-service/internal/lifecycle"
	"github.com/evike/scooter-service/internal/models"
)

const dateLayout = "02/01/2006"

// Header is the column order shared by every export format.
var Header = []string{
	"Date Received",
	"Model",
	"QR Code",
	"Vehicle State",
	"Repair Items",
	"Status",
	"Date Completed",
	"Turnaround (Days)",
}

// Row is one record flattened into display cells.
type Row [8]string

// BuildRows derives the export cells for each record: formatted dates,
// joined repair-item labels and turnaround days. Absent optional fields
// render as "-".
func BuildRows(records []models.ServiceRecord) []Row {
	rows := make([]Row, len(records))
	for i, r := range records {
		completed := "-"
		turnaround := "-"
		if r.DateCompleted != nil {
			completed = r.DateCompleted.Format(dateLayout)
			turnaround = strconv.Itoa(lifecycle.TurnaroundDays(r))
		}
		state := "-"
		if r.VehicleState != nil {
			state = r.VehicleState.Label
		}
		rows[i] = Row{
			r.DateReceived.Format(dateLayout),
			r.Model,
			r.SerialNumber,
			state,
			repairItemLabels(r),
			string(r.Status),
			completed,
			turnaround,
		}
	}
	return rows
}

// PeriodLabel formats a date range for report subtitles.
func PeriodLabel(start, end time.Time) string {
	return start.Format(dateLayout) + " - " + end.Format(dateLayout)
}

func repairItemLabels(record models.ServiceRecord) string {
	labels := make([]string, len(record.RepairItems))
	for i, item := range record.RepairItems {
		labels[i] = item.Label
	}
	return strings.Join(labels, ", ")
}
