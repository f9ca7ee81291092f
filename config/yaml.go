package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aponysus/verdict/verb"
)

// patchEntry is the YAML form of an ErrorConfig. Durations are strings in
// time.ParseDuration syntax; actions are not representable in YAML.
type patchEntry struct {
	Message    string         `yaml:"message"`
	Severity   Severity       `yaml:"severity,omitempty"`
	Duration   string         `yaml:"duration,omitempty"`
	Reportable bool           `yaml:"reportable,omitempty"`
	Metadata   map[string]any `yaml:"metadata,omitempty"`
}

// ParsePatch decodes a YAML document of the form
//
//	unauthorized:
//	  message: "Session expired"
//	  severity: warning
//
// into a ConfigMap suitable for Handler.Configure. Keys are not required to
// be taxonomy verbs (unknown keys are stored but never looked up), but each
// entry's severity and duration, when present, must be valid.
func ParsePatch(data []byte) (ConfigMap, error) {
	var raw map[string]patchEntry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("verdict: parse config patch: %w", err)
	}

	out := make(ConfigMap, len(raw))
	for k, e := range raw {
		if e.Severity != "" && !e.Severity.IsValid() {
			return nil, fmt.Errorf("verdict: config patch %q: invalid severity %q", k, e.Severity)
		}
		cfg := ErrorConfig{
			Message:    e.Message,
			Severity:   e.Severity,
			Reportable: e.Reportable,
			Metadata:   e.Metadata,
		}
		if e.Duration != "" {
			d, err := time.ParseDuration(e.Duration)
			if err != nil {
				return nil, fmt.Errorf("verdict: config patch %q: invalid duration: %w", k, err)
			}
			cfg.Duration = d
		}
		out[verb.Verb(k)] = cfg
	}
	return out, nil
}

// LoadPatch reads a YAML patch from path.
func LoadPatch(path string) (ConfigMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("verdict: read config patch: %w", err)
	}
	return ParsePatch(data)
}
