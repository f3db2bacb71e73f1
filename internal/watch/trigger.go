// Package watch rebuilds the site when markdown files under the content
// root change.
//
// A Watcher turns filesystem events into regeneration requests on a
// Trigger. The Trigger runs one request at a time on a single worker and
// reports every outcome; a failed regeneration is logged and the loop
// keeps going, so the next change simply tries again.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// DefaultQueueSize bounds the number of pending regeneration requests.
const DefaultQueueSize = 64

// Event is a content change that asked for a regeneration.
type Event struct {
	Path string // relative to the content root
	Op   string
}

// Result is the outcome of one regeneration.
type Result struct {
	Event Event
	Err   error
	Took  time.Duration
}

// Trigger serializes regenerations requested by events.
type Trigger struct {
	regenerate func(context.Context) error
	onResult   func(Result)
	queue      chan Event
}

// Option configures a Trigger.
type Option func(*Trigger)

// WithQueueSize sets how many requests may wait while one is running.
func WithQueueSize(n int) Option {
	return func(t *Trigger) {
		if n > 0 {
			t.queue = make(chan Event, n)
		}
	}
}

// WithResults registers fn to receive the result of every regeneration.
// fn runs on the worker goroutine.
func WithResults(fn func(Result)) Option {
	return func(t *Trigger) { t.onResult = fn }
}

// NewTrigger returns a Trigger that calls regenerate once per request.
func NewTrigger(regenerate func(context.Context) error, opts ...Option) *Trigger {
	t := &Trigger{
		regenerate: regenerate,
		queue:      make(chan Event, DefaultQueueSize),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Notify queues a regeneration for ev without blocking. It returns false
// when the queue is full; the queued requests already cover the change.
func (t *Trigger) Notify(ev Event) bool {
	select {
	case t.queue <- ev:
		return true
	default:
		slog.Warn("regeneration queue full, dropping request", "path", ev.Path, "op", ev.Op)
		return false
	}
}

// Run handles queued requests until ctx is cancelled.
func (t *Trigger) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-t.queue:
			res := t.run(ctx, ev)
			if res.Err != nil {
				slog.Warn("regeneration failed", "path", ev.Path, "error", res.Err)
			} else {
				slog.Debug("regenerated", "path", ev.Path, "took", res.Took)
			}
			if t.onResult != nil {
				t.onResult(res)
			}
		}
	}
}

func (t *Trigger) run(ctx context.Context, ev Event) (res Result) {
	start := time.Now()
	res.Event = ev
	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("regenerate panicked: %v", r)
		}
		res.Took = time.Since(start)
	}()
	res.Err = t.regenerate(ctx)
	return res
}
