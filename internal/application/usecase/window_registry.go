package usecase

import (
	"context"

	"github.com/bnema/tintbar/internal/application/port"
	"github.com/bnema/tintbar/internal/domain/entity"
	"github.com/bnema/tintbar/internal/logging"
)

// WindowRegistry keeps the window-to-controller map consistent with the
// host's actual open-window set and fans color changes out to every tracked
// controller.
//
// All methods must run on the single UI-affinity goroutine; the map carries
// no lock because mutual exclusion is structural, not synchronized.
type WindowRegistry struct {
	factory     port.ControllerFactory
	controllers map[port.Window]port.TitleBarController
	primary     port.Window
}

// NewWindowRegistry creates an empty registry.
func NewWindowRegistry(factory port.ControllerFactory) *WindowRegistry {
	return &WindowRegistry{
		factory:     factory,
		controllers: make(map[port.Window]port.TitleBarController),
	}
}

// Reconcile recomputes the tracked-window set from the given snapshot.
//
// Windows that left the snapshot are dropped without a controller callback:
// a closed window takes its native chrome with it. Windows new to the
// snapshot get a controller attached; when color is non-nil it is applied to
// newly attached controllers only, so a window that appears after a project
// is already open picks up the decided color without repainting windows that
// already carry it.
//
// Attach failures exclude the window from tracking; the attach is retried on
// every subsequent reconciliation. Reconcile is idempotent.
func (r *WindowRegistry) Reconcile(ctx context.Context, snap port.WindowSnapshot, color *entity.Color) {
	log := logging.FromContext(ctx)

	for w := range r.controllers {
		if !snap.Contains(w) {
			delete(r.controllers, w)
			log.Debug().Uint64("window", uint64(w.Handle())).Msg("window gone, controller dropped")
		}
	}

	for _, w := range snap.All {
		if w == nil {
			continue
		}
		if _, tracked := r.controllers[w]; tracked {
			continue
		}

		ctrl, ok := r.factory.Attach(w)
		if !ok {
			// Not colorable. Retried next pass in case the native
			// surface shows up later.
			log.Debug().Uint64("window", uint64(w.Handle())).Msg("window not colorable, skipped")
			continue
		}
		r.controllers[w] = ctrl

		if color != nil {
			if err := ctrl.SetTitleBarColor(*color); err != nil {
				log.Warn().Err(err).Uint64("window", uint64(w.Handle())).Msg("failed to tint new window")
			}
		}
	}

	r.primary = snap.Primary
}

// ApplyToAll sets the color on every tracked controller. Fan-out is
// best-effort per window: one failing title bar never blocks the rest.
func (r *WindowRegistry) ApplyToAll(ctx context.Context, color entity.Color) {
	log := logging.FromContext(ctx)

	for w, ctrl := range r.controllers {
		if err := ctrl.SetTitleBarColor(color); err != nil {
			log.Warn().Err(err).Uint64("window", uint64(w.Handle())).Str("color", color.Hex()).Msg("failed to tint window")
		}
	}
}

// ResetAll restores every tracked controller to the host default chrome.
func (r *WindowRegistry) ResetAll(ctx context.Context) {
	log := logging.FromContext(ctx)

	for w, ctrl := range r.controllers {
		if err := ctrl.ResetTitleBarColor(); err != nil {
			log.Warn().Err(err).Uint64("window", uint64(w.Handle())).Msg("failed to reset window title bar")
		}
	}
}

// PrimaryColor returns the color of the primary window's controller when it
// is tracked, else entity.ColorDefault. Used by picker previews that need
// "the current color" of the session.
func (r *WindowRegistry) PrimaryColor() entity.Color {
	if r.primary == nil {
		return entity.ColorDefault
	}
	ctrl, ok := r.controllers[r.primary]
	if !ok {
		return entity.ColorDefault
	}
	return ctrl.TryGetTitleBarColor()
}

// ColorOf returns the applied color of one tracked window.
func (r *WindowRegistry) ColorOf(w port.Window) (entity.Color, bool) {
	ctrl, ok := r.controllers[w]
	if !ok {
		return entity.ColorDefault, false
	}
	return ctrl.TryGetTitleBarColor(), true
}

// Tracked reports whether the window currently has a controller.
func (r *WindowRegistry) Tracked(w port.Window) bool {
	_, ok := r.controllers[w]
	return ok
}

// TrackedCount returns the number of windows with live controllers.
func (r *WindowRegistry) TrackedCount() int {
	return len(r.controllers)
}
