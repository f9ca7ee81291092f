// Package config holds per-verb error configuration: the user-facing
// message, severity, display duration, and side effects attached to each
// semantic error category.
package config

import (
	"time"

	"github.com/aponysus/verdict/verb"
)

// Severity is the logging importance of a handled error.
// Severities are totally ordered: info < warning < error < critical.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

// Rank returns the position of s in the severity order. An empty or
// unrecognized severity ranks as SeverityError.
func (s Severity) Rank() int {
	switch s {
	case SeverityInfo:
		return 1
	case SeverityWarning:
		return 2
	case SeverityCritical:
		return 4
	default:
		return 3
	}
}

// IsValid reports whether s is one of the four defined severities.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityInfo, SeverityWarning, SeverityError, SeverityCritical:
		return true
	default:
		return false
	}
}

// ErrorConfig is the bundle of behavior attached to a verb.
//
// Consumers receive copies and must not mutate a config in place; the
// handler clones on write.
type ErrorConfig struct {
	// Message is the user-facing text shown for this verb.
	Message string

	// Severity gates logging (see handler.LogLevel). Empty ranks as "error".
	Severity Severity

	// Duration, when positive, overrides the reading-speed heuristic for
	// how long the message should stay on screen.
	Duration time.Duration

	// Reportable marks the error as worth forwarding to an external
	// monitoring system. Advisory only; the handler does not act on it.
	Reportable bool

	// Metadata is merged into log output. Non-exhaustive and
	// caller-extensible.
	Metadata map[string]any

	// Action, when set, is invoked after logging (e.g. redirect to the
	// sign-in page on "unauthorized"). Not representable in YAML patches.
	Action func()
}

// Clone returns a copy of c with its own metadata map.
func (c ErrorConfig) Clone() ErrorConfig {
	out := c
	if c.Metadata != nil {
		out.Metadata = make(map[string]any, len(c.Metadata))
		for k, v := range c.Metadata {
			out.Metadata[k] = v
		}
	}
	return out
}

// ConfigMap maps verbs to their configuration. It is used both as the seed
// of built-in defaults and as a patch applied by callers; when used as a
// patch, each entry replaces the stored config for that verb wholesale.
type ConfigMap map[verb.Verb]ErrorConfig

// Clone returns a copy of m with cloned entries.
func (m ConfigMap) Clone() ConfigMap {
	out := make(ConfigMap, len(m))
	for k, v := range m {
		out[k] = v.Clone()
	}
	return out
}
