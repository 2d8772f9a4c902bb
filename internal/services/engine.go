// Package services contains application services that orchestrate the
// tinting engine around the UI loop.
package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/tintbar/internal/application/port"
	"github.com/bnema/tintbar/internal/application/usecase"
	"github.com/bnema/tintbar/internal/domain/entity"
	"github.com/bnema/tintbar/internal/logging"
	"github.com/bnema/tintbar/internal/ui/mainloop"
)

// Engine funnels host notifications and user commands onto a single UI
// loop where the lifecycle listener and window registry run. Everything
// behind the dispatcher is single-threaded; the Engine's own methods are
// safe to call from any goroutine.
type Engine struct {
	logger     zerolog.Logger
	loopCtx    context.Context
	dispatcher *mainloop.Dispatcher
	coalescer  *mainloop.Coalescer
	listener   *usecase.ProjectLifecycleListener
	registry   *usecase.WindowRegistry
	store      port.ColorPolicyStore
}

// NewEngine wires the listener and registry behind a fresh UI loop.
func NewEngine(
	ctx context.Context,
	registry *usecase.WindowRegistry,
	listener *usecase.ProjectLifecycleListener,
	store port.ColorPolicyStore,
) *Engine {
	logger := logging.FromContext(ctx).With().Str("component", "engine").Logger()

	e := &Engine{
		logger:   logger,
		loopCtx:  logging.WithContext(context.Background(), logger),
		listener: listener,
		registry: registry,
		store:    store,
	}
	e.dispatcher = mainloop.NewDispatcher()
	e.coalescer = mainloop.NewCoalescer(e.dispatcher.Post)
	return e
}

// Run drains the UI loop until ctx is canceled.
func (e *Engine) Run(ctx context.Context) error {
	e.logger.Info().Msg("engine loop started")
	return e.dispatcher.Run(ctx)
}

// Close tears down the loop. Pending work is dropped.
func (e *Engine) Close() {
	e.coalescer.Destroy()
	e.dispatcher.Close()
}

// OnHostEvent queues a host notification. Bursts of the same event kind
// collapse into a single reconcile pass on the loop.
func (e *Engine) OnHostEvent(kind port.HostEventKind) {
	e.coalescer.Post(kind.String(), func() {
		e.listener.OnHostEvent(e.loopCtx, kind)
	})
}

// ProjectOpened switches the engine to the given project on the loop.
func (e *Engine) ProjectOpened(path string) {
	e.dispatcher.Post(func() {
		e.listener.OnProjectOpened(e.loopCtx, path)
	})
}

// ProjectClosed clears the open project and resets all tracked windows.
func (e *Engine) ProjectClosed() {
	e.dispatcher.Post(func() {
		e.listener.OnProjectClosed(e.loopCtx)
	})
}

// PickColor persists an explicit color for the project and, when the
// project is open, repaints its windows on the loop.
func (e *Engine) PickColor(ctx context.Context, path string, color entity.Color) error {
	if err := e.store.Save(ctx, path, color, false); err != nil {
		return err
	}
	e.dispatcher.Post(func() {
		e.listener.ApplyPicked(e.loopCtx, path, color)
	})
	return nil
}

// ResetColor deletes the stored color for the project and, when the
// project is open, resets its windows on the loop.
func (e *Engine) ResetColor(ctx context.Context, path string) error {
	if err := e.store.Delete(ctx, path); err != nil {
		return err
	}
	e.dispatcher.Post(func() {
		e.listener.ClearPicked(e.loopCtx, path)
	})
	return nil
}

// SetAutoPick flips the global auto-pick flag. Takes effect on the next
// project open.
func (e *Engine) SetAutoPick(enabled bool) error {
	if err := e.store.SetAutoPickEnabled(enabled); err != nil {
		return err
	}
	e.logger.Info().Bool("enabled", enabled).Msg("auto-pick flag changed")
	return nil
}

// CurrentColor reports the color in effect, evaluated on the loop. ok is
// true when a project color is decided; otherwise the primary window's
// read-back (host default when untracked) is returned. Blocks until the
// loop services the query, so the engine must be running.
func (e *Engine) CurrentColor() (entity.Color, bool) {
	type answer struct {
		color entity.Color
		ok    bool
	}
	out := make(chan answer, 1)
	e.dispatcher.Post(func() {
		if c := e.listener.CurrentColor(); c != nil {
			out <- answer{color: *c, ok: true}
			return
		}
		out <- answer{color: e.registry.PrimaryColor()}
	})
	a := <-out
	return a.color, a.ok
}

// DrainForTesting runs queued loop work synchronously.
func (e *Engine) DrainForTesting() {
	e.dispatcher.DrainForTesting()
}
