package port

// HostEventKind classifies host lifecycle notifications. Events carry no
// payload beyond "something changed"; the engine always re-samples ground
// truth instead of interpreting event semantics incrementally.
type HostEventKind int

const (
	HostEventWindowCreated HostEventKind = iota
	HostEventWindowClosing
	HostEventWindowActivated
	HostEventProjectOpened
	HostEventProjectClosed
)

// String implements fmt.Stringer.
func (k HostEventKind) String() string {
	switch k {
	case HostEventWindowCreated:
		return "window-created"
	case HostEventWindowClosing:
		return "window-closing"
	case HostEventWindowActivated:
		return "window-activated"
	case HostEventProjectOpened:
		return "project-opened"
	case HostEventProjectClosed:
		return "project-closed"
	default:
		return "unknown"
	}
}

// ProjectTracker identifies the active project for keying persisted colors.
type ProjectTracker interface {
	// CurrentProjectPath returns the root path of the active project.
	// ok is false when no project is open.
	CurrentProjectPath() (path string, ok bool)
}
