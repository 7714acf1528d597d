package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/evike/scooter-service/internal/db"
	"github.com/evike/scooter-service/internal/models"
	"github.com/evike/scooter-service/internal/settings"
)

// SettingsHandler serves operator UI preferences. The fleet count in the
// response always comes from the store, never from the settings file.
type SettingsHandler struct {
	store *settings.Store
	fleet db.FleetCollection
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(store *settings.Store, fleet db.FleetCollection) *SettingsHandler {
	return &SettingsHandler{store: store, fleet: fleet}
}

// Settings handles GET and PUT on /api/settings.
func (h *SettingsHandler) Settings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.get(w, r)
	case http.MethodPut:
		h.update(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *SettingsHandler) get(w http.ResponseWriter, r *http.Request) {
	current := h.store.Load()

	count, err := h.fleet.GetFleetCount(r.Context())
	if err != nil {
		log.WithError(err).Error("failed to load fleet count")
		http.Error(w, "Store unavailable", http.StatusServiceUnavailable)
		return
	}
	current.FleetCount = count

	writeJSON(w, http.StatusOK, current)
}

func (h *SettingsHandler) update(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var req models.AppSettings
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if !models.IsValidFontSize(req.FontSize) {
		http.Error(w, "Invalid font size", http.StatusBadRequest)
		return
	}
	if !models.IsValidTheme(req.Theme) {
		http.Error(w, "Invalid theme", http.StatusBadRequest)
		return
	}

	if err := h.store.Save(req); err != nil {
		log.WithError(err).Error("failed to save settings")
		http.Error(w, "Failed to save settings", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Settings updated successfully"})
}
