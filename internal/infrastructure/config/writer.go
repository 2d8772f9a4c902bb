package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// AutoPick returns the current auto-pick flag.
func (m *Manager) AutoPick() bool {
	cfg := m.Get()
	if cfg == nil {
		return false
	}
	return cfg.Color.AutoPick
}

// SetAutoPick persists the auto-pick flag to the config file.
func (m *Manager) SetAutoPick(enabled bool) error {
	return m.set("color.auto_pick", enabled)
}

// set writes one key to viper and saves the config file.
func (m *Manager) set(key string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.viper.Set(key, value)

	// The watcher will see our own write; skip the redundant reload.
	m.skipNextReload = true

	if err := m.writeLocked(); err != nil {
		m.skipNextReload = false
		return err
	}
	return m.unmarshalLocked()
}

// writeLocked saves the current viper state, creating the file on first use.
// Caller must hold the write lock.
func (m *Manager) writeLocked() error {
	if err := m.viper.WriteConfig(); err == nil {
		return nil
	}

	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(configDir, dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	path := filepath.Join(configDir, "config.toml")
	if err := m.viper.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}
