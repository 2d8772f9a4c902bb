package colorscheme

import (
	"github.com/bnema/tintbar/internal/infrastructure/config"
)

// ConfigAdapter adapts the config manager to the ConfigProvider interface.
// Reading through the manager keeps the override current across reloads.
type ConfigAdapter struct {
	mgr *config.Manager
}

// NewConfigAdapter creates a new config adapter.
func NewConfigAdapter(mgr *config.Manager) *ConfigAdapter {
	return &ConfigAdapter{mgr: mgr}
}

// GetColorScheme implements ConfigProvider.
func (a *ConfigAdapter) GetColorScheme() string {
	if a.mgr == nil {
		return ""
	}
	return a.mgr.Get().Appearance.ColorScheme
}
