package app

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/dotcommander/prefixid/pkg/prefixid"
)

// Settings represents configuration loaded from config.yaml.
// Field names match snake_case YAML keys. Generation fields mirror
// prefixid.Settings; zero values mean "keep the built-in default".
type Settings struct {
	DBPath       string `yaml:"db_path"`
	Separator    string `yaml:"separator"`
	Alphabet     string `yaml:"alphabet"`
	Length       int    `yaml:"length"`
	MaxRetries   int    `yaml:"max_retries"`
	DefaultField string `yaml:"default_field"`
}

// settingsOnce, settings, settingsErr implement the sync.Once lazy-load singleton for config.
// dbPathOverrideMu and dbPathOverride implement a mutex-protected process-wide override for CLI --db-path.
//
//nolint:gochecknoglobals // sync.Once singleton + RWMutex override are intentional process-wide state
var (
	settingsOnce sync.Once
	settings     Settings
	settingsErr  error

	dbPathOverrideMu sync.RWMutex
	dbPathOverride   string
)

// SetDBPathOverride sets a process-wide database path override.
// Intended for CLI flag support (e.g. --db-path).
func SetDBPathOverride(path string) {
	dbPathOverrideMu.Lock()
	dbPathOverride = path
	dbPathOverrideMu.Unlock()
}

func getDBPathOverride() string {
	dbPathOverrideMu.RLock()
	v := dbPathOverride
	dbPathOverrideMu.RUnlock()
	return v
}

// LoadSettings loads configuration once using the documented lookup order.
// Lookup order (first found wins):
// 1) ~/.config/prefixid/config.yaml
// 2) /etc/prefixid/config.yaml
// 3) ./config.yaml (lowest priority; allows repo-local overrides if desired)
// Environment variables are handled separately.
func LoadSettings() (Settings, error) {
	settingsOnce.Do(func() {
		settings = Settings{}

		// 1) User config (~/.config/prefixid/config.yaml)
		dir, err := ConfigDir()
		if err != nil {
			settingsErr = err
			return
		}
		if s, err := loadSettingsFile(filepath.Join(dir, "config.yaml")); err == nil {
			settings = s
			return
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			settingsErr = err
			return
		}

		// 2) /etc
		if s, err := loadSettingsFile(filepath.Join(string(os.PathSeparator), "etc", "prefixid", "config.yaml")); err == nil {
			settings = s
			return
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			settingsErr = err
			return
		}

		// 3) Local ./config.yaml (lowest priority)
		if s, err := loadSettingsFile("config.yaml"); err == nil {
			settings = s
			return
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			settingsErr = err
			return
		}
	})

	return settings, settingsErr
}

func loadSettingsFile(path string) (Settings, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}

	var s Settings
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// GenerationSettings folds file values over the library's built-in defaults
// without touching process-wide state.
func (s Settings) GenerationSettings() prefixid.Settings {
	out := prefixid.DefaultSettings()
	if s.Separator != "" {
		out.Separator = s.Separator
	}
	if s.Alphabet != "" {
		out.Alphabet = s.Alphabet
	}
	if s.Length > 0 {
		out.Length = s.Length
	}
	if s.MaxRetries > 0 {
		out.MaxRetries = s.MaxRetries
	}
	if s.DefaultField != "" {
		out.DefaultField = s.DefaultField
	}
	return out
}

// ApplyGenerationSettings loads config.yaml and installs its generation
// overrides as the process-wide prefixid defaults. Called once at CLI
// startup, before any command opens the store.
func ApplyGenerationSettings() error {
	s, err := LoadSettings()
	if err != nil {
		return err
	}
	gen := s.GenerationSettings()
	prefixid.Configure(func(g *prefixid.Settings) { *g = gen })
	return nil
}
