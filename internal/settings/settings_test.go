package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evike/scooter-service/internal/models"
)

func TestStore_LoadDefaults(t *testing.T) {
	store := &Store{Path: filepath.Join(t.TempDir(), "missing.json")}

	settings := store.Load()
	assert.Equal(t, models.FontMedium, settings.FontSize)
	assert.Equal(t, models.ThemeDark, settings.Theme)
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := &Store{Path: filepath.Join(t.TempDir(), "settings.json")}

	err := store.Save(models.AppSettings{
		FontSize:   models.FontLarge,
		Theme:      models.ThemeLight,
		FleetCount: models.FleetCount{BirdUnits: 99, EMoobUnits: 42},
	})
	assert.NoError(t, err)

	settings := store.Load()
	assert.Equal(t, models.FontLarge, settings.FontSize)
	assert.Equal(t, models.ThemeLight, settings.Theme)
	// Fleet count is never persisted locally.
	assert.Zero(t, settings.FleetCount)
}

func TestStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := &Store{Path: path}
	settings := store.Load()
	assert.Equal(t, models.FontMedium, settings.FontSize)
	assert.Equal(t, models.ThemeDark, settings.Theme)
}

func TestStore_LoadInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	assert.NoError(t, os.WriteFile(path, []byte(`{"fontSize":"giant","theme":"neon"}`), 0o644))

	store := &Store{Path: path}
	settings := store.Load()
	assert.Equal(t, models.FontMedium, settings.FontSize)
	assert.Equal(t, models.ThemeDark, settings.Theme)
}
