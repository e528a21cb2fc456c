package models

// Theme values accepted in Settings.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Settings is a singleton record global to the installation, not tied
// to any account.
type Settings struct {
	DisableZoom bool   `json:"disableZoom"`
	Theme       string `json:"theme"`
}

// DefaultSettings returns the values used when no settings record has
// been stored yet.
func DefaultSettings() Settings {
	return Settings{DisableZoom: true, Theme: ThemeLight}
}
