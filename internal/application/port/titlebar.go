package port

import "github.com/bnema/tintbar/internal/domain/entity"

// TitleBarController owns the native chrome color state of exactly one live
// window. No two controllers may exist for the same window at the same time.
type TitleBarController interface {
	// SetTitleBarColor applies the color to the window's title bar
	// immediately. Idempotent: re-applying the same color is a no-op in
	// effect.
	SetTitleBarColor(color entity.Color) error

	// ResetTitleBarColor restores the host default title-bar appearance.
	ResetTitleBarColor() error

	// TryGetTitleBarColor returns the color currently applied, or
	// entity.ColorDefault if none was ever set.
	TryGetTitleBarColor() entity.Color
}

// ControllerFactory attaches title-bar controllers to windows.
type ControllerFactory interface {
	// Attach tries to take over the title bar of the given window.
	// ok is false when the window does not expose the needed native
	// surface; that is not an error, the window is simply not colorable
	// and will be retried on the next reconciliation.
	Attach(window Window) (ctrl TitleBarController, ok bool)
}
