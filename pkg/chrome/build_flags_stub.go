//go:build !gtk_native

package chrome

// IsNativeAvailable reports whether the native GTK4 backend is compiled in.
// In stub builds this returns false and title-bar methods operate on
// in-memory window state instead of real widgets.
func IsNativeAvailable() bool { return false }
