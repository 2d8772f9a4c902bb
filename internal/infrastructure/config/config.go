// Package config handles tintbar configuration loading, watching, and
// persistence via viper.
package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Config is the root configuration.
type Config struct {
	Appearance AppearanceConfig `mapstructure:"appearance" json:"appearance"`
	Color      ColorConfig      `mapstructure:"color" json:"color"`
	Database   DatabaseConfig   `mapstructure:"database" json:"database"`
	Logging    LoggingConfig    `mapstructure:"logging" json:"logging"`
}

// AppearanceConfig controls theme detection.
type AppearanceConfig struct {
	// ColorScheme overrides system theme detection.
	// Values: "system", "light", "dark", "prefer-light", "prefer-dark".
	ColorScheme string `mapstructure:"color_scheme" json:"color_scheme" jsonschema:"enum=system,enum=light,enum=dark,enum=prefer-light,enum=prefer-dark"`
}

// ColorConfig controls color policy.
type ColorConfig struct {
	// AutoPick generates a color for projects that have none saved.
	AutoPick bool `mapstructure:"auto_pick" json:"auto_pick"`
}

// DatabaseConfig locates the project color database.
type DatabaseConfig struct {
	// Path of the sqlite file. Empty means the XDG data directory.
	Path string `mapstructure:"path" json:"path"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	v.SetEnvPrefix("TINTBAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicit bindings for env vars whose names predate the section split
	if err := v.BindEnv("logging.level", "TINTBAR_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind TINTBAR_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "TINTBAR_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind TINTBAR_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is not an error; defaults apply.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return m.unmarshalLocked()
}

func (m *Manager) unmarshalLocked() error {
	cfg := &Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validate(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	m.config = cfg
	return nil
}

// reload re-reads the config file. Caller must hold the write lock.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to re-read config file: %w", err)
	}
	return m.unmarshalLocked()
}

// Get returns the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// OnChange registers a callback invoked after every successful reload.
func (m *Manager) OnChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, fn)
}

// validate checks config values that would break the engine at runtime.
func validate(cfg *Config) error {
	switch cfg.Appearance.ColorScheme {
	case "", "system", "light", "dark", "prefer-light", "prefer-dark":
	default:
		return fmt.Errorf("appearance.color_scheme: unknown value %q", cfg.Appearance.ColorScheme)
	}
	switch cfg.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format: unknown value %q", cfg.Logging.Format)
	}
	return nil
}
