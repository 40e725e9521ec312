package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// PrefsPath stores settings changed in-game, relative to the working directory. They are
// applied on top of the loaded configuration at the next start.
const PrefsPath = "config/prefs.yaml"

// Prefs are the settings the console can change and persist.
type Prefs struct {
	Debug Debug `yaml:"debug"`
}

// LoadPrefs reads prefs from path into base. A missing or unreadable file leaves base as is.
func LoadPrefs(path string, base Prefs) Prefs {
	data, err := os.ReadFile(path)
	if err != nil {
		return base
	}
	p := base
	if err := yaml.Unmarshal(data, &p); err != nil {
		return base
	}
	return p
}

// SavePrefs writes p to path, creating its directory if needed.
func SavePrefs(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
