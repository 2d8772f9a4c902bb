//go:build !gtk_native

package chrome

import (
	"sync"

	"github.com/bnema/tintbar/internal/application/port"
	"github.com/bnema/tintbar/internal/domain/entity"
)

type windowStub struct {
	title     string
	colorable bool
	open      bool
	color     entity.Color
	tinted    bool
}

var (
	stubMu       sync.Mutex
	stubState            = map[uintptr]*windowStub{}
	nextWindowID uintptr = 1
)

func newStubWindow(title string) *Window {
	stubMu.Lock()
	defer stubMu.Unlock()
	id := nextWindowID
	nextWindowID++
	stubState[id] = &windowStub{
		title:     title,
		colorable: true,
		open:      true,
	}
	return &Window{handle: id}
}

// Window identifies one simulated top-level window in stub builds.
type Window struct {
	handle uintptr
}

// Handle returns the stable identity of the window.
func (w *Window) Handle() uintptr { return w.handle }

// Title returns the window's title, or "" once the window is gone.
func (w *Window) Title() string {
	stubMu.Lock()
	defer stubMu.Unlock()
	if stub, ok := stubState[w.handle]; ok {
		return stub.title
	}
	return ""
}

// Session simulates the host's window set in stub builds. Its Snapshot is
// the ground truth the registry reconciles against.
type Session struct {
	mu      sync.Mutex
	windows []*Window
}

// NewSession creates an empty simulated window set.
func NewSession() *Session { return &Session{} }

// OpenWindow registers a new simulated window and returns it.
func (s *Session) OpenWindow(title string) *Window {
	w := newStubWindow(title)
	s.mu.Lock()
	s.windows = append(s.windows, w)
	s.mu.Unlock()
	return w
}

// CloseWindow drops the window from the session and marks its state closed.
func (s *Session) CloseWindow(w *Window) {
	s.mu.Lock()
	for i, existing := range s.windows {
		if existing == w {
			s.windows = append(s.windows[:i], s.windows[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	stubMu.Lock()
	if stub, ok := stubState[w.handle]; ok {
		stub.open = false
	}
	stubMu.Unlock()
}

// Snapshot implements port.WindowLister. The oldest open window is primary.
func (s *Session) Snapshot() port.WindowSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := port.WindowSnapshot{}
	for _, w := range s.windows {
		snap.All = append(snap.All, w)
	}
	if len(snap.All) > 0 {
		snap.Primary = snap.All[0]
	}
	return snap
}

// Factory attaches title-bar controllers to stub windows.
type Factory struct{}

// NewFactory creates a controller factory for the stub backend.
func NewFactory() *Factory { return &Factory{} }

// Attach implements port.ControllerFactory. Closed windows and windows
// flagged non-colorable refuse the attachment.
func (f *Factory) Attach(w port.Window) (port.TitleBarController, bool) {
	stubMu.Lock()
	defer stubMu.Unlock()
	stub, ok := stubState[w.Handle()]
	if !ok || !stub.open || !stub.colorable {
		return nil, false
	}
	return &controller{handle: w.Handle()}, true
}

type controller struct {
	handle uintptr
}

func (c *controller) SetTitleBarColor(color entity.Color) error {
	stubMu.Lock()
	defer stubMu.Unlock()
	stub, ok := stubState[c.handle]
	if !ok || !stub.open {
		return ErrWindowGone
	}
	stub.color = color
	stub.tinted = true
	return nil
}

func (c *controller) ResetTitleBarColor() error {
	stubMu.Lock()
	defer stubMu.Unlock()
	stub, ok := stubState[c.handle]
	if !ok || !stub.open {
		return ErrWindowGone
	}
	stub.color = entity.ColorDefault
	stub.tinted = false
	return nil
}

func (c *controller) TryGetTitleBarColor() entity.Color {
	stubMu.Lock()
	defer stubMu.Unlock()
	if stub, ok := stubState[c.handle]; ok && stub.tinted {
		return stub.color
	}
	return entity.ColorDefault
}

// NewTestWindow registers a standalone stub window outside any Session.
func NewTestWindow(title string) *Window { return newStubWindow(title) }

// SetColorableForTesting toggles whether Attach succeeds for the window.
func SetColorableForTesting(w *Window, colorable bool) {
	stubMu.Lock()
	defer stubMu.Unlock()
	if stub, ok := stubState[w.handle]; ok {
		stub.colorable = colorable
	}
}

// TintForTesting reports the color last painted on the window's title bar.
func TintForTesting(w *Window) (entity.Color, bool) {
	stubMu.Lock()
	defer stubMu.Unlock()
	if stub, ok := stubState[w.handle]; ok {
		return stub.color, stub.tinted
	}
	return entity.ColorDefault, false
}

// ResetStubsForTesting clears all stub window state for deterministic tests.
func ResetStubsForTesting() {
	stubMu.Lock()
	defer stubMu.Unlock()
	stubState = map[uintptr]*windowStub{}
	nextWindowID = 1
}
