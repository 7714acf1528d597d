// Package settings persists operator UI preferences. Only font size and
// theme are stored locally; the fleet count lives in the database so a
// stale local copy can never shadow it.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/evike/scooter-service/internal/models"
)

const defaultPath = "app-settings.json"

type persisted struct {
	FontSize models.FontSize `json:"fontSize"`
	Theme    models.Theme    `json:"theme"`
}

// Store reads and writes the settings file.
type Store struct {
	Path string
}

// NewStore builds a store at the SETTINGS_PATH env location, falling back
// to app-settings.json in the working directory.
func NewStore() *Store {
	path := os.Getenv("SETTINGS_PATH")
	if path == "" {
		path = defaultPath
	}
	return &Store{Path: path}
}

// Load returns the saved preferences, or the defaults (medium/dark) when
// the file is missing or unreadable.
func (s *Store) Load() models.AppSettings {
	defaults := models.AppSettings{FontSize: models.FontMedium, Theme: models.ThemeDark}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return defaults
	}
	var p persisted
	if err := json.Unmarshal(data, &p); err != nil {
		log.WithError(err).WithField("path", s.Path).Warn("invalid settings file, using defaults")
		return defaults
	}
	if !models.IsValidFontSize(p.FontSize) {
		p.FontSize = defaults.FontSize
	}
	if !models.IsValidTheme(p.Theme) {
		p.Theme = defaults.Theme
	}
	return models.AppSettings{FontSize: p.FontSize, Theme: p.Theme}
}

// Save writes the persisted subset. The fleet count on the argument is
// deliberately ignored.
func (s *Store) Save(settings models.AppSettings) error {
	data, err := json.MarshalIndent(persisted{
		FontSize: settings.FontSize,
		Theme:    settings.Theme,
	}, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.Path, data, 0o644)
}
