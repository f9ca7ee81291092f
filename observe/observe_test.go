package observe

import (
	"context"
	"testing"

	"github.com/aponysus/verdict/verb"
)

type countingObserver struct{ events []Event }

func (c *countingObserver) OnHandled(_ context.Context, ev Event) {
	c.events = append(c.events, ev)
}

func TestMultiObserver_FanOut(t *testing.T) {
	a := &countingObserver{}
	b := &countingObserver{}
	m := MultiObserver{Observers: []Observer{a, nil, b}}

	m.OnHandled(context.Background(), Event{Verb: verb.Timeout, Logged: true})

	if len(a.events) != 1 || len(b.events) != 1 {
		t.Fatalf("events: a=%d b=%d, want 1 each", len(a.events), len(b.events))
	}
	if a.events[0].Verb != verb.Timeout {
		t.Fatalf("verb=%q want timeout", a.events[0].Verb)
	}
}

func TestNoopObserver(t *testing.T) {
	NoopObserver{}.OnHandled(context.Background(), Event{})
}
