//go:build gtk_native

package chrome

// IsNativeAvailable reports whether the native GTK4 backend is compiled in.
func IsNativeAvailable() bool { return true }
