package handlers

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/evike/scooter-service/internal/aggregate"
	"github.com/evike/scooter-service/internal/export"
)

const (
	formatExcel = "excel"
	formatPDF   = "pdf"
)

// PeriodicExport handles GET /api/export: the periodic overview document
// over a required dateReceived range, with the summary-statistics block.
func (h *RecordsHandler) PeriodicExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = formatExcel
	}
	if format != formatExcel && format != formatPDF {
		http.Error(w, "Unsupported format, expected excel or pdf", http.StatusBadRequest)
		return
	}

	start, end, err := parseDateRange(r, true)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	records, ok := h.loadRecords(w, r)
	if !ok {
		return
	}

	inRange := aggregate.InDateRange(records, start, end, aggregate.ByDateReceived)
	summary := aggregate.Summarize(records, start, end)
	period := export.PeriodLabel(start, end)

	if format == formatPDF {
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="e-vikes-periodic-overview.pdf"`)
		if err := export.WritePDF(w, inRange, "E-VIKES Periodic Overview", period, &summary); err != nil {
			log.WithError(err).Error("failed to render periodic pdf")
		}
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="e-vikes-periodic-overview.xlsx"`)
	if err := export.WriteExcel(w, inRange, "Periodic Overview", &summary); err != nil {
		log.WithError(err).Error("failed to render periodic workbook")
	}
}

// CompletedExport handles GET /api/export/completed: the completed-task
// table, filtered like the completed search (term + completion-date range).
func (h *RecordsHandler) CompletedExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = formatExcel
	}
	if format != formatExcel && format != formatPDF {
		http.Error(w, "Unsupported format, expected excel or pdf", http.StatusBadRequest)
		return
	}

	start, end, err := parseDateRange(r, true)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	records, ok := h.loadRecords(w, r)
	if !ok {
		return
	}

	completed := aggregate.CompletedOnly(records)
	completed = aggregate.Search(completed, r.URL.Query().Get("search"))
	completed = aggregate.InDateRange(completed, start, end, aggregate.ByDateCompleted)

	if format == formatPDF {
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="e-vikes-service-records.pdf"`)
		if err := export.WritePDF(w, completed, "E-VIKES Service Records", export.PeriodLabel(start, end), nil); err != nil {
			log.WithError(err).Error("failed to render completed pdf")
		}
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="e-vikes-service-records.xlsx"`)
	if err := export.WriteExcel(w, completed, "Service Records", nil); err != nil {
		log.WithError(err).Error("failed to render completed workbook")
	}
}
