package usecase

import (
	"context"

	"github.com/bnema/tintbar/internal/application/port"
	"github.com/bnema/tintbar/internal/domain/entity"
	"github.com/bnema/tintbar/internal/logging"
)

// ProjectLifecycleListener reacts to host lifecycle events, decides which
// color the open project gets, and drives the window registry.
//
// Its state machine has one variable: the currently open project (none, or
// identified by path) plus the color decided for it. Like the registry it is
// owned by the single UI-affinity goroutine and carries no lock.
type ProjectLifecycleListener struct {
	registry  *WindowRegistry
	store     port.ColorPolicyStore
	generator port.ColorGenerator
	lister    port.WindowLister
	tracker   port.ProjectTracker
	scheme    port.ColorSchemeResolver

	openProject string
	hasProject  bool
	// current is the decided color for the open project; nil means the
	// title bar stays at host default.
	current *entity.Color
}

// NewProjectLifecycleListener wires the listener to its collaborators.
func NewProjectLifecycleListener(
	registry *WindowRegistry,
	store port.ColorPolicyStore,
	generator port.ColorGenerator,
	lister port.WindowLister,
	tracker port.ProjectTracker,
	scheme port.ColorSchemeResolver,
) *ProjectLifecycleListener {
	return &ProjectLifecycleListener{
		registry:  registry,
		store:     store,
		generator: generator,
		lister:    lister,
		tracker:   tracker,
		scheme:    scheme,
	}
}

// OnProjectOpened decides and applies the color for a freshly opened
// project. It fires pre-load, so the tint is visible as early as the host
// allows. Decision priority: stored entry, then auto-pick (generated and
// persisted for next time), then host default. A stored entry always wins
// over auto-pick; auto-pick only fires for projects never colored before.
func (l *ProjectLifecycleListener) OnProjectOpened(ctx context.Context, path string) {
	path = entity.CleanProjectPath(path)
	log := logging.FromContext(ctx)

	l.openProject = path
	l.hasProject = true
	l.current = nil

	stored, err := l.store.TryGet(ctx, path)
	if err != nil {
		// Treated as a miss: worst case is an uncolored title bar,
		// indistinguishable from the default experience.
		log.Warn().Err(err).Str("project", path).Msg("color lookup failed, treating as miss")
		stored = nil
	}

	switch {
	case stored != nil:
		l.current = stored
		l.registry.ApplyToAll(ctx, *stored)
		log.Info().Str("project", path).Str("color", stored.Hex()).Msg("applied stored project color")

	case l.store.AutoPickEnabled():
		lum := entity.LuminosityFor(l.scheme.Resolve().PrefersDark)
		generated := l.generator.Generate(lum)
		l.current = &generated
		l.registry.ApplyToAll(ctx, generated)
		if err := l.store.Save(ctx, path, generated, true); err != nil {
			log.Warn().Err(err).Str("project", path).Msg("failed to persist auto-picked color")
		}
		log.Info().Str("project", path).Str("color", generated.Hex()).Stringer("luminosity", lum).Msg("auto-picked project color")

	default:
		log.Debug().Str("project", path).Msg("no stored color and auto-pick disabled, title bar stays default")
	}
}

// OnProjectClosed resets every tracked title bar and clears the open-project
// state.
func (l *ProjectLifecycleListener) OnProjectClosed(ctx context.Context) {
	log := logging.FromContext(ctx)

	l.registry.ResetAll(ctx)
	if l.hasProject {
		log.Info().Str("project", l.openProject).Msg("project closed, title bars reset")
	}
	l.openProject = ""
	l.hasProject = false
	l.current = nil
}

// OnHostEvent is the single entry point for every host lifecycle
// notification. Project transitions run first; every event then triggers a
// full reconcile against the host's current window set. The full pass runs
// even for window-scoped events because the host does not reliably report
// every undock or close, and a redundant reconcile is idempotent and cheap.
func (l *ProjectLifecycleListener) OnHostEvent(ctx context.Context, kind port.HostEventKind) {
	log := logging.FromContext(ctx)
	log.Debug().Stringer("event", kind).Msg("host event")

	switch kind {
	case port.HostEventProjectOpened:
		if path, ok := l.tracker.CurrentProjectPath(); ok {
			l.OnProjectOpened(ctx, path)
		} else {
			log.Warn().Msg("project-opened event with no active project")
		}
	case port.HostEventProjectClosed:
		l.OnProjectClosed(ctx)
	}

	l.Refresh(ctx)
}

// Refresh reconciles the registry against ground truth, carrying the current
// color decision so new windows pick it up.
func (l *ProjectLifecycleListener) Refresh(ctx context.Context) {
	l.registry.Reconcile(ctx, l.lister.Snapshot(), l.current)
}

// ApplyPicked makes an explicitly chosen color effective immediately when it
// targets the currently open project. The caller is responsible for having
// persisted it.
func (l *ProjectLifecycleListener) ApplyPicked(ctx context.Context, path string, color entity.Color) {
	if !l.hasProject || entity.CleanProjectPath(path) != l.openProject {
		return
	}
	l.current = &color
	l.registry.ApplyToAll(ctx, color)
}

// ClearPicked undoes the tint when the cleared entry belongs to the
// currently open project.
func (l *ProjectLifecycleListener) ClearPicked(ctx context.Context, path string) {
	if !l.hasProject || entity.CleanProjectPath(path) != l.openProject {
		return
	}
	l.current = nil
	l.registry.ResetAll(ctx)
}

// OpenProject returns the currently open project path, if any.
func (l *ProjectLifecycleListener) OpenProject() (string, bool) {
	return l.openProject, l.hasProject
}

// CurrentColor returns the color decided for the open project, or nil when
// the title bar is at host default.
func (l *ProjectLifecycleListener) CurrentColor() *entity.Color {
	return l.current
}
