package config

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Appearance: AppearanceConfig{
			ColorScheme: "system",
		},
		Color: ColorConfig{
			AutoPick: false,
		},
		Database: DatabaseConfig{
			Path: "",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// setDefaults registers defaults with viper so unset keys resolve.
// Caller must hold the write lock.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("appearance.color_scheme", defaults.Appearance.ColorScheme)
	m.viper.SetDefault("color.auto_pick", defaults.Color.AutoPick)
	m.viper.SetDefault("database.path", defaults.Database.Path)
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}
