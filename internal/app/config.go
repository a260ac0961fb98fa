package app

import (
	"os"
	"path/filepath"
)

// ConfigDir returns ~/.config/prefixid/ on all platforms.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "prefixid"), nil
}

// EnsureConfigDir creates the config directory and default config.yaml if missing.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	configFile := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return os.WriteFile(configFile, []byte(defaultConfig), 0600)
	}
	return nil
}

const defaultConfig = `# prefixid configuration
# Run: prefixid --help

# Optional: override the SQLite database location.
# Can also be set via PREFIXID_DB_PATH or --db-path.
# db_path: ~/.config/prefixid/prefixid.db

# Optional: override the built-in generation defaults.
# separator: "_"
# alphabet: "0123456789abcdefghijklmnopqrstuvwxyz"
# length: 12
# max_retries: 1000
# default_field: ""
`
