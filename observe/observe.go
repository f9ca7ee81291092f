// Package observe defines lifecycle hooks fired by the error handler.
package observe

import (
	"context"

	"github.com/aponysus/verdict/config"
	"github.com/aponysus/verdict/verb"
)

// Event describes a single handled error.
type Event struct {
	Verb     verb.Verb
	Severity config.Severity
	Message  string

	// Logged reports whether the severity gate let this error through to
	// the logger.
	Logged bool

	// Adapter is the name of the matching adapter, or "" on fallback.
	Adapter string

	Err error
}

// Observer receives a callback after every handled error.
type Observer interface {
	OnHandled(ctx context.Context, ev Event)
}

// NoopObserver implements Observer with a no-op.
type NoopObserver struct{}

func (NoopObserver) OnHandled(context.Context, Event) {}

// MultiObserver fans out events to multiple observers.
type MultiObserver struct {
	Observers []Observer
}

func (m MultiObserver) OnHandled(ctx context.Context, ev Event) {
	for _, o := range m.Observers {
		if o != nil {
			o.OnHandled(ctx, ev)
		}
	}
}
