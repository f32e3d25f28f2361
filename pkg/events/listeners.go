// Package events fans native map events out to application listeners.
//
// Each event kind owns its own typed listener list on the Hub. Listeners run
// synchronously in registration order; a panic in one listener is reported
// through pkg/errors and does not stop the remaining listeners or reach the
// native caller.
package events

import (
	"sync"
	"time"

	"github.com/go-drift/maplibre/pkg/errors"
)

// Registration identifies a single registered listener. Cancel removes it;
// cancelling twice is a no-op.
type Registration struct {
	cancel func()
	once   sync.Once
}

// Cancel removes the listener from its list.
func (r *Registration) Cancel() {
	if r == nil || r.cancel == nil {
		return
	}
	r.once.Do(r.cancel)
}

type entry[T any] struct {
	fn func(T)
}

// Listeners is an insertion-ordered fan-out list for one event kind.
// The zero value is ready to use.
type Listeners[T any] struct {
	mu      sync.Mutex
	entries []*entry[T]
}

// Add appends fn to the list and returns its registration.
func (l *Listeners[T]) Add(fn func(T)) *Registration {
	e := &entry[T]{fn: fn}
	l.mu.Lock()
	l.entries = append(l.entries, e)
	l.mu.Unlock()
	return &Registration{cancel: func() { l.remove(e) }}
}

func (l *Listeners[T]) remove(e *entry[T]) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, cur := range l.entries {
		if cur == e {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

// Clear drops every listener.
func (l *Listeners[T]) Clear() {
	l.mu.Lock()
	l.entries = nil
	l.mu.Unlock()
}

// Len reports the number of registered listeners.
func (l *Listeners[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Notify invokes every listener registered at the time of the call, in
// registration order. Listeners added or removed by a callback take effect
// on the next dispatch; the in-progress snapshot is not affected.
func (l *Listeners[T]) Notify(event string, value T) {
	l.mu.Lock()
	snapshot := make([]*entry[T], len(l.entries))
	copy(snapshot, l.entries)
	l.mu.Unlock()

	for _, e := range snapshot {
		invoke(event, e.fn, value)
	}
}

func invoke[T any](event string, fn func(T), value T) {
	defer func() {
		if r := recover(); r != nil {
			errors.ReportListenerError(&errors.ListenerError{
				Event:      event,
				Recovered:  r,
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			})
		}
	}()
	fn(value)
}

// Signal is a fan-out list for events that carry no payload.
type Signal struct {
	inner Listeners[struct{}]
}

// Add appends fn to the list and returns its registration.
func (s *Signal) Add(fn func()) *Registration {
	return s.inner.Add(func(struct{}) { fn() })
}

// Clear drops every listener.
func (s *Signal) Clear() { s.inner.Clear() }

// Len reports the number of registered listeners.
func (s *Signal) Len() int { return s.inner.Len() }

// Notify invokes every listener in registration order.
func (s *Signal) Notify(event string) { s.inner.Notify(event, struct{}{}) }
