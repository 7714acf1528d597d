package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/evike/scooter-service/internal/aggregate"
	"github.com/evike/scooter-service/internal/db"
	"github.com/evike/scooter-service/internal/lifecycle"
	"github.com/evike/scooter-service/internal/models"
	"github.com/evike/scooter-service/internal/notify"
)

const dateParamLayout = "2006-01-02"

// RecordsHandler handles service record requests
type RecordsHandler struct {
	records   db.RecordCollection
	fleet     db.FleetCollection
	engine    *lifecycle.Engine
	publisher *notify.Publisher
}

// NewRecordsHandler creates a new service record handler
func NewRecordsHandler(records db.RecordCollection, fleet db.FleetCollection, engine *lifecycle.Engine, publisher *notify.Publisher) *RecordsHandler {
	return &RecordsHandler{
		records:   records,
		fleet:     fleet,
		engine:    engine,
		publisher: publisher,
	}
}

// Records handles GET (list) and POST (create) on /api/records.
func (h *RecordsHandler) Records(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *RecordsHandler) list(w http.ResponseWriter, r *http.Request) {
	records, ok := h.loadRecords(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *RecordsHandler) create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var req models.CreateRecordRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	record, err := h.engine.Create(req)
	if err != nil {
		// Operator input errors surface inline, they are not system faults.
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.records.InsertRecord(r.Context(), record); err != nil {
		log.WithError(err).Error("failed to insert service record")
		http.Error(w, "Store unavailable, please resubmit", http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, http.StatusCreated, record)
}

// UpdateStatus handles PUT /api/records/{id}/status.
func (h *RecordsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/records/")
	id, ok := strings.CutSuffix(rest, "/status")
	if !ok || id == "" || strings.Contains(id, "/") {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var req models.UpdateStatusRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	record, err := h.records.FindRecordByID(r.Context(), id)
	if err != nil {
		http.Error(w, "Record not found", http.StatusNotFound)
		return
	}

	updated, err := h.engine.Transition(*record, req.Status)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.records.UpdateRecordStatus(r.Context(), id, updated.Status, updated.DateCompleted); err != nil {
		log.WithError(err).WithField("record_id", id).Error("failed to update record status")
		http.Error(w, "Store unavailable, please resubmit", http.StatusServiceUnavailable)
		return
	}

	h.publisher.PublishStatusChange(updated)

	writeJSON(w, http.StatusOK, updated)
}

// Board handles GET /api/records/board: the active workload, plus today's
// completions when show_completed=true.
func (h *RecordsHandler) Board(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	records, ok := h.loadRecords(w, r)
	if !ok {
		return
	}

	showCompleted := r.URL.Query().Get("show_completed") == "true"
	writeJSON(w, http.StatusOK, aggregate.BoardView(records, h.now(), showCompleted))
}

// Completed handles GET /api/records/completed: completed records filtered
// by search term and an optional completion-date range.
func (h *RecordsHandler) Completed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	records, ok := h.loadRecords(w, r)
	if !ok {
		return
	}

	completed := aggregate.CompletedOnly(records)
	completed = aggregate.Search(completed, r.URL.Query().Get("search"))

	start, end, err := parseDateRange(r, false)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !start.IsZero() {
		completed = aggregate.InDateRange(completed, start, end, aggregate.ByDateCompleted)
	}

	writeJSON(w, http.StatusOK, completed)
}

// FleetCount handles GET and PUT on /api/fleet-count.
func (h *RecordsHandler) FleetCount(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		count, err := h.fleet.GetFleetCount(r.Context())
		if err != nil {
			log.WithError(err).Error("failed to load fleet count")
			http.Error(w, "Store unavailable", http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, http.StatusOK, count)
	case http.MethodPut:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}
		var count models.FleetCount
		if err := json.Unmarshal(body, &count); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if count.BirdUnits < 0 || count.EMoobUnits < 0 {
			http.Error(w, "Fleet counts must be non-negative", http.StatusBadRequest)
			return
		}
		if err := h.fleet.UpsertFleetCount(r.Context(), count); err != nil {
			log.WithError(err).Error("failed to upsert fleet count")
			http.Error(w, "Store unavailable, please resubmit", http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, http.StatusOK, count)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// StatsResponse is the dashboard payload.
type StatsResponse struct {
	MonthLabels   []string                   `json:"monthLabels"`
	MonthlyIntake []int                      `json:"monthlyIntake"`
	RepairItems   map[string]int             `json:"repairItems"`
	Pending       aggregate.PendingBreakdown `json:"pending"`
	FleetCount    models.FleetCount          `json:"fleetCount"`
}

// Stats handles GET /api/stats.
func (h *RecordsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	records, ok := h.loadRecords(w, r)
	if !ok {
		return
	}

	count, err := h.fleet.GetFleetCount(r.Context())
	if err != nil {
		log.WithError(err).Error("failed to load fleet count")
		http.Error(w, "Store unavailable", http.StatusServiceUnavailable)
		return
	}

	now := h.now()
	writeJSON(w, http.StatusOK, StatsResponse{
		MonthLabels:   aggregate.MonthLabels(now),
		MonthlyIntake: aggregate.MonthlyIntake(records, now),
		RepairItems:   aggregate.RepairItemFrequency(records),
		Pending:       aggregate.Breakdown(records),
		FleetCount:    count,
	})
}

func (h *RecordsHandler) loadRecords(w http.ResponseWriter, r *http.Request) ([]models.ServiceRecord, bool) {
	records, err := h.records.ListRecords(r.Context())
	if err != nil {
		log.WithError(err).Error("failed to list service records")
		http.Error(w, "Store unavailable", http.StatusServiceUnavailable)
		return nil, false
	}
	return records, true
}

func (h *RecordsHandler) now() time.Time {
	if h.engine != nil && h.engine.Now != nil {
		return h.engine.Now()
	}
	return time.Now()
}

// parseDateRange reads the start/end query params. When required is set,
// both must be present; otherwise both-or-neither.
func parseDateRange(r *http.Request, required bool) (time.Time, time.Time, error) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" && endStr == "" {
		if required {
			return time.Time{}, time.Time{}, errors.New("start and end dates are required")
		}
		return time.Time{}, time.Time{}, nil
	}
	if startStr == "" || endStr == "" {
		return time.Time{}, time.Time{}, errors.New("both start and end dates are required")
	}

	start, err := time.Parse(dateParamLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid start date, expected YYYY-MM-DD")
	}
	end, err := time.Parse(dateParamLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid end date, expected YYYY-MM-DD")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.New("end date must not precede start date")
	}
	return start, end, nil
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
