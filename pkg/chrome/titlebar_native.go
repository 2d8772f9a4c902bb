//go:build gtk_native

package chrome

import (
	"fmt"

	"github.com/jwijenbergh/puregotk/v4/gtk"

	"github.com/bnema/tintbar/internal/application/port"
	"github.com/bnema/tintbar/internal/domain/entity"
)

// Window wraps one top-level GTK window for tracking.
type Window struct {
	win *gtk.Window
}

// WrapWindow adapts an existing GTK window. Hosts embedding the engine
// call this for each top-level window they want tinted.
func WrapWindow(win *gtk.Window) *Window { return &Window{win: win} }

// Handle returns the stable identity of the window.
func (w *Window) Handle() uintptr { return w.win.GoPointer() }

// Title returns the window's current title.
func (w *Window) Title() string { return w.win.GetTitle() }

// Session tracks the GTK windows registered for tinting. All methods run
// on the GTK main thread, so no locking is needed.
type Session struct {
	windows []*Window
}

// NewSession creates an empty window set.
func NewSession() *Session { return &Session{} }

// AttachWindow registers a GTK window with the session and returns its wrapper.
func (s *Session) AttachWindow(win *gtk.Window) *Window {
	w := WrapWindow(win)
	s.windows = append(s.windows, w)
	return w
}

// DetachWindow removes a previously attached window.
func (s *Session) DetachWindow(w *Window) {
	for i, existing := range s.windows {
		if existing.Handle() == w.Handle() {
			s.windows = append(s.windows[:i], s.windows[i+1:]...)
			return
		}
	}
}

// OpenWindow creates a fresh GTK window, attaches it, and returns it.
// Exists so the demo host works identically on both backends.
func (s *Session) OpenWindow(title string) *Window {
	win := gtk.NewWindow()
	if win == nil {
		return nil
	}
	win.SetTitle(&title)
	win.SetVisible(true)
	return s.AttachWindow(win)
}

// CloseWindow detaches the window and asks GTK to close it.
func (s *Session) CloseWindow(w *Window) {
	s.DetachWindow(w)
	if w.win != nil {
		w.win.Close()
	}
}

// Snapshot implements port.WindowLister. The active window is primary,
// falling back to the oldest attached one.
func (s *Session) Snapshot() port.WindowSnapshot {
	snap := port.WindowSnapshot{}
	for _, w := range s.windows {
		snap.All = append(snap.All, w)
		if snap.Primary == nil && w.win.IsActive() {
			snap.Primary = w
		}
	}
	if snap.Primary == nil && len(snap.All) > 0 {
		snap.Primary = snap.All[0]
	}
	return snap
}

// Factory attaches title-bar controllers to GTK windows. Each attachment
// gets its own CSS provider keyed by a per-window class, so tints can be
// set and cleared independently.
type Factory struct{}

// NewFactory creates a controller factory for the GTK backend.
func NewFactory() *Factory { return &Factory{} }

// Attach implements port.ControllerFactory. Windows without a display
// (not yet realized, or already closed) refuse the attachment.
func (f *Factory) Attach(w port.Window) (port.TitleBarController, bool) {
	cw, ok := w.(*Window)
	if !ok || cw.win == nil {
		return nil, false
	}
	display := cw.win.GetDisplay()
	if display == nil {
		return nil, false
	}

	class := fmt.Sprintf("tintbar-w%d", cw.Handle())
	cw.win.AddCssClass(class)

	return &controller{win: cw.win, class: class}, true
}

type controller struct {
	win      *gtk.Window
	class    string
	provider *gtk.CssProvider
	current  entity.Color
	tinted   bool
}

func (c *controller) SetTitleBarColor(color entity.Color) error {
	display := c.win.GetDisplay()
	if display == nil {
		return ErrWindowGone
	}
	if c.provider == nil {
		c.provider = gtk.NewCssProvider()
		if c.provider == nil {
			return ErrNotColorable
		}
		gtk.StyleContextAddProviderForDisplay(
			display,
			c.provider,
			uint(gtk.STYLE_PROVIDER_PRIORITY_APPLICATION),
		)
	}
	c.provider.LoadFromString(headerBarCSS(c.class, color))
	c.current = color
	c.tinted = true
	return nil
}

func (c *controller) ResetTitleBarColor() error {
	if c.provider != nil {
		c.provider.LoadFromString("")
	}
	c.current = entity.ColorDefault
	c.tinted = false
	return nil
}

func (c *controller) TryGetTitleBarColor() entity.Color {
	if !c.tinted {
		return entity.ColorDefault
	}
	return c.current
}

// headerBarCSS scopes the tint to the window's own header bar via the
// per-window class, covering both GtkHeaderBar and legacy .titlebar.
func headerBarCSS(class string, color entity.Color) string {
	return fmt.Sprintf(
		"window.%[1]s headerbar, window.%[1]s .titlebar { background-color: %[2]s; }",
		class, color.CSS(),
	)
}
