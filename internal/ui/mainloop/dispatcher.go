// Package mainloop serializes engine work onto a single UI-affinity
// goroutine. Host callbacks arrive from arbitrary threads; everything that
// touches the window registry or listener state goes through here, which is
// what lets the core stay lock-free.
package mainloop

import (
	"context"
	"sync"
)

const queueDepth = 64

// Dispatcher owns the UI-affinity goroutine when no toolkit main loop is
// running (stub builds, tests, CLI). With a native toolkit, RunOn can be
// pointed at the toolkit's idle-add instead and Run is never called.
type Dispatcher struct {
	queue chan func()

	mu     sync.Mutex
	closed bool
}

// NewDispatcher creates an idle dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{queue: make(chan func(), queueDepth)}
}

// Post schedules fn on the dispatcher goroutine. Never blocks the caller
// past queue capacity being available; posting after Close is a no-op.
func (d *Dispatcher) Post(fn func()) {
	if fn == nil {
		return
	}
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.mu.Unlock()

	d.queue <- fn
}

// Run drains the queue until the context is done. It is the single
// goroutine on which all posted work executes.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			d.Close()
			return ctx.Err()
		case fn := <-d.queue:
			fn()
		}
	}
}

// Close marks the dispatcher as stopped; queued work is dropped.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
}

// DrainForTesting runs queued work synchronously until the queue is empty.
func (d *Dispatcher) DrainForTesting() {
	for {
		select {
		case fn := <-d.queue:
			fn()
		default:
			return
		}
	}
}
