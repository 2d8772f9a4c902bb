package port

// Window identifies one top-level window of the host session. The engine
// never owns a window; it only observes its existence and lifecycle.
// Identity is handle equality, never value equality.
type Window interface {
	// Handle returns the host's opaque identifier for this window.
	Handle() uintptr

	// Title returns the current window title, for logging only.
	Title() string
}

// WindowSnapshot is the host's open-window set as of one sampling instant.
// A snapshot is ground truth at the moment it is taken; callers must not
// cache it across host events, since lifecycle notifications can arrive out
// of order relative to true window state.
type WindowSnapshot struct {
	All []Window

	// Primary is the designated main window, used for single-color
	// read-back. Nil when the host reports no windows.
	Primary Window
}

// Contains reports whether the snapshot includes the given window.
func (s WindowSnapshot) Contains(w Window) bool {
	for _, open := range s.All {
		if open == w {
			return true
		}
	}
	return false
}

// WindowLister samples the host's currently open top-level windows.
type WindowLister interface {
	Snapshot() WindowSnapshot
}
