package models

// FontSize options for the operator UI.
type FontSize string

const (
	FontSmall  FontSize = "small"
	FontMedium FontSize = "medium"
	FontLarge  FontSize = "large"
)

// Theme options for the operator UI.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// AppSettings is process-wide UI state. Only FontSize and Theme are
// persisted locally; FleetCount is always sourced from the store so the
// two can never diverge.
type AppSettings struct {
	FontSize   FontSize   `json:"fontSize"`
	Theme      Theme      `json:"theme"`
	FleetCount FleetCount `json:"fleetCount"`
}

// IsValidFontSize checks if a font size is valid
func IsValidFontSize(size FontSize) bool {
	switch size {
	case FontSmall, FontMedium, FontLarge:
		return true
	default:
		return false
	}
}

// IsValidTheme checks if a theme is valid
func IsValidTheme(theme Theme) bool {
	return theme == ThemeLight || theme == ThemeDark
}
