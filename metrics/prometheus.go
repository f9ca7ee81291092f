// Package metrics provides a Prometheus-backed observer for the error
// handler. Implementations forward handled-error events to counters labeled
// by verb and severity.
package metrics

import (
	"context"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/aponysus/verdict/observe"
)

// PrometheusObserver implements observe.Observer using Prometheus counters.
type PrometheusObserver struct {
	handled *prom.CounterVec
	logged  *prom.CounterVec
}

// NewPrometheusObserver constructs the observer and registers its metrics
// with reg. A nil reg gets a fresh registry.
func NewPrometheusObserver(reg *prom.Registry) *PrometheusObserver {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	o := &PrometheusObserver{
		handled: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "verdict",
			Name:      "errors_handled_total",
			Help:      "Handled errors by verb and severity",
		}, []string{"verb", "severity"}),
		logged: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "verdict",
			Name:      "errors_logged_total",
			Help:      "Handled errors that passed the logging gate, by verb",
		}, []string{"verb"}),
	}
	reg.MustRegister(o.handled, o.logged)
	return o
}

func (o *PrometheusObserver) OnHandled(_ context.Context, ev observe.Event) {
	sev := ev.Severity
	if sev == "" {
		sev = "error"
	}
	o.handled.WithLabelValues(string(ev.Verb), string(sev)).Inc()
	if ev.Logged {
		o.logged.WithLabelValues(string(ev.Verb)).Inc()
	}
}
