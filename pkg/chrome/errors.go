package chrome

import "errors"

var (
	// ErrWindowGone is returned when a controller outlives its window.
	ErrWindowGone = errors.New("chrome: window no longer exists")
	// ErrNotColorable is returned when the window's title bar rejects styling.
	ErrNotColorable = errors.New("chrome: title bar is not colorable")
)
