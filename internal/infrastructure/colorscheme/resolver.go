// Package colorscheme resolves whether the host session prefers dark mode.
package colorscheme

import (
	"sort"
	"strings"
	"sync"

	"github.com/bnema/tintbar/internal/application/port"
)

const (
	// sourceFallback indicates no detector provided the preference.
	sourceFallback = "fallback"
	// sourceConfig indicates the preference came from user config.
	sourceConfig = "config"
)

// ConfigProvider provides access to the color scheme configuration.
type ConfigProvider interface {
	// GetColorScheme returns the configured color scheme preference.
	// Expected values: "system", "prefer-dark", "prefer-light", "dark", "light"
	GetColorScheme() string
}

// Resolver implements port.ColorSchemeResolver. It manages multiple
// detectors and respects config overrides.
type Resolver struct {
	mu        sync.RWMutex
	config    ConfigProvider
	detectors []port.ColorSchemeDetector
	current   port.ColorSchemePreference
}

// NewResolver creates a new color scheme resolver. The config provider is
// used to check for explicit user preferences.
func NewResolver(config ConfigProvider) *Resolver {
	return &Resolver{
		config: config,
		current: port.ColorSchemePreference{
			PrefersDark: true, // Default to dark until first Resolve()
			Source:      sourceFallback,
		},
	}
}

// Resolve implements port.ColorSchemeResolver.
func (r *Resolver) Resolve() port.ColorSchemePreference {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolveLocked()
}

// resolveLocked performs the actual resolution. Caller must hold at least a
// read lock.
func (r *Resolver) resolveLocked() port.ColorSchemePreference {
	// Explicit config override wins over every detector.
	if r.config != nil {
		switch strings.ToLower(r.config.GetColorScheme()) {
		case "prefer-dark", "dark":
			return port.ColorSchemePreference{PrefersDark: true, Source: sourceConfig}
		case "prefer-light", "light":
			return port.ColorSchemePreference{PrefersDark: false, Source: sourceConfig}
			// "system" or empty falls through to the detector chain
		}
	}

	sorted := make([]port.ColorSchemeDetector, len(r.detectors))
	copy(sorted, r.detectors)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Priority() > sorted[j].Priority()
	})

	for _, detector := range sorted {
		if !detector.Available() {
			continue
		}
		if prefersDark, ok := detector.Detect(); ok {
			return port.ColorSchemePreference{
				PrefersDark: prefersDark,
				Source:      detector.Name(),
			}
		}
	}

	// Generated tints read better on dark chrome, so dark is the
	// fallback when nothing can be detected.
	return port.ColorSchemePreference{PrefersDark: true, Source: sourceFallback}
}

// RegisterDetector implements port.ColorSchemeResolver.
func (r *Resolver) RegisterDetector(detector port.ColorSchemeDetector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detectors = append(r.detectors, detector)
}

// Refresh implements port.ColorSchemeResolver.
func (r *Resolver) Refresh() port.ColorSchemePreference {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = r.resolveLocked()
	return r.current
}
