package settings

import (
	"encoding/json"
	"os"
)

// Settings holds the carousel tunables read at startup. The carousel itself
// keeps no state between runs.
type Settings struct {
	DeadZone        float64 `json:"deadZone"`
	SpringFrequency float64 `json:"springFrequency"`
	SpringDamping   float64 `json:"springDamping"`
}

var defaultSettings = Settings{
	DeadZone:        0,
	SpringFrequency: 7.0,
	SpringDamping:   0.8,
}

// DefaultPath is used when CAROUSEL_SETTINGS is not set
const DefaultPath = "settings.json"

// Defaults returns the built-in settings
func Defaults() Settings {
	return defaultSettings
}

// Load reads the settings file at path. When the file is missing or cannot
// be parsed, defaults are returned so the carousel can still start.
func Load(path string) Settings {
	f, err := os.Open(path)
	if err != nil {
		return defaultSettings
	}
	defer f.Close()

	var s Settings
	if err := json.NewDecoder(f).Decode(&s); err != nil {
		return defaultSettings
	}

	// Zero values from partially written files fall back to defaults
	if s.SpringFrequency <= 0 {
		s.SpringFrequency = defaultSettings.SpringFrequency
	}
	if s.SpringDamping <= 0 {
		s.SpringDamping = defaultSettings.SpringDamping
	}
	if s.DeadZone < 0 {
		s.DeadZone = defaultSettings.DeadZone
	}

	return s
}
