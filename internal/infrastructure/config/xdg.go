package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const dirPerm = 0o750

// GetConfigDir returns the tintbar configuration directory per XDG spec.
func GetConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tintbar"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "tintbar"), nil
}

// GetDataDir returns the tintbar data directory (database lives here).
func GetDataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "tintbar"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "tintbar"), nil
}

// DefaultDatabasePath returns the database location used when
// database.path is unset.
func DefaultDatabasePath() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "tintbar.db"), nil
}

// EnsureDirectories creates the config and data directories if missing.
func EnsureDirectories() error {
	for _, get := range []func() (string, error){GetConfigDir, GetDataDir} {
		dir, err := get()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
