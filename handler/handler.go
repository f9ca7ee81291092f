// Package handler normalizes raw errors into semantic verbs with a
// configurable user-facing message, severity-gated logging and optional
// side effects.
package handler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aponysus/verdict/adapt"
	"github.com/aponysus/verdict/config"
	"github.com/aponysus/verdict/observe"
	"github.com/aponysus/verdict/verb"
)

// LogLevel is the severity threshold for the logging gate.
type LogLevel string

const (
	// LevelNone disables logging unconditionally, including LogAllErrors.
	LevelNone LogLevel = "none"

	LevelInfo     LogLevel = "info"
	LevelWarning  LogLevel = "warning"
	LevelError    LogLevel = "error"
	LevelCritical LogLevel = "critical"
)

func (l LogLevel) threshold() int { return config.Severity(l).Rank() }

// Result is what a Handle call produces. It is created fresh per call and
// never stored by the handler.
type Result struct {
	// Message is the user-facing text for the classified verb.
	Message string

	ErrorVerb verb.Verb

	// Config is the resolved configuration the handler used, cloned so
	// callers may not mutate stored state through it.
	Config config.ErrorConfig

	// OriginalError is the raw input, untouched.
	OriginalError error

	// Duration is how long the message should stay on screen.
	Duration time.Duration
}

// Handler ties the adapter registry and the configuration store together.
//
// A Handler is long-lived: create one per application (or per test) and
// mutate it only through Configure, SetDefaultConfig and RegisterAdapter.
// Those mutators are meant for setup time; do not call them concurrently
// with in-flight Handle calls.
type Handler struct {
	defaultConfig  config.ErrorConfig
	configs        config.ConfigMap
	registry       *adapt.Registry
	logger         Logger
	logLevel       LogLevel
	logAllErrors   bool
	wordsPerSecond float64
	observer       observe.Observer
	newID          func() string
}

type handlerConfig struct {
	opts Options
}

// Options configures a Handler.
type Options struct {
	// DefaultConfig, when set, replaces the built-in "unknown" entry and
	// the fallback used when a verb has no stored config.
	DefaultConfig *config.ErrorConfig

	// Configs is a patch applied on top of the built-in defaults. Each
	// entry replaces the stored config for its verb wholesale.
	Configs config.ConfigMap

	// Adapters are registered in order.
	Adapters []adapt.Adapter

	Logger       Logger
	LogLevel     LogLevel
	LogAllErrors bool

	// WordsPerSecond is the reading speed for the display-duration
	// heuristic. Zero means DefaultWordsPerSecond.
	WordsPerSecond float64

	Observer observe.Observer
}

// New creates a Handler with default options.
func New(opts ...Option) *Handler {
	cfg := &handlerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return NewFromOptions(cfg.opts)
}

// NewFromOptions creates a Handler from a config struct.
//
// Construction layers, in order: built-in defaults for every verb, then
// DefaultConfig (overwrites only the "unknown" entry), then the Configs
// patch. After construction every taxonomy verb resolves to exactly one
// config.
func NewFromOptions(opts Options) *Handler {
	h := &Handler{
		configs:        config.Defaults(),
		registry:       adapt.NewRegistry(),
		logger:         opts.Logger,
		logLevel:       opts.LogLevel,
		logAllErrors:   opts.LogAllErrors,
		wordsPerSecond: opts.WordsPerSecond,
		observer:       opts.Observer,
		newID:          uuid.NewString,
	}
	if h.logger == nil {
		h.logger = defaultLogger()
	}
	if h.logLevel == "" {
		h.logLevel = LevelError
	}
	if h.observer == nil {
		h.observer = observe.NoopObserver{}
	}

	if opts.DefaultConfig != nil {
		h.SetDefaultConfig(*opts.DefaultConfig)
	} else {
		h.defaultConfig = h.configs[verb.Unknown]
	}
	h.Configure(opts.Configs)

	for _, a := range opts.Adapters {
		h.registry.Register(a)
	}
	return h
}

// Configure replaces, for every verb present in patch, the stored config
// for that verb wholesale. There is no field-level merge: a patch entry
// that omits Metadata clears it for that verb. Unknown verb keys are stored
// but never looked up. Returns h for chaining.
func (h *Handler) Configure(patch config.ConfigMap) *Handler {
	for v, cfg := range patch {
		h.configs[v] = cfg.Clone()
	}
	return h
}

// SetDefaultConfig replaces both the fallback used when no adapter matches
// and the stored entry for the "unknown" verb. The two must stay in sync:
// "unknown" is a real verb and the universal fallback at the same time.
func (h *Handler) SetDefaultConfig(cfg config.ErrorConfig) *Handler {
	h.defaultConfig = cfg.Clone()
	h.configs[verb.Unknown] = cfg.Clone()
	return h
}

// RegisterAdapter appends a to the adapter list. Order is significant:
// first-registered, first-tried. Registration is append-only.
func (h *Handler) RegisterAdapter(a adapt.Adapter) *Handler {
	h.registry.Register(a)
	return h
}

// Handle classifies raw, resolves its configuration, logs when the
// severity gate allows, runs the configured action and returns the result.
//
// Handle never fails: any input, including nil, resolves to some verb and a
// fully populated Result. Logger and action panics propagate; metadata
// extraction failures degrade to omitted metadata.
func (h *Handler) Handle(ctx context.Context, raw error) Result {
	vb, matched := h.registry.Classify(raw)

	cfg, ok := h.configs[vb]
	if !ok {
		cfg = h.defaultConfig
	}
	cfg = cfg.Clone()

	dur := cfg.Duration
	if dur <= 0 {
		dur = MessageDuration(cfg.Message, h.wordsPerSecond)
	}

	logged := h.shouldLog(cfg.Severity)
	if logged {
		meta := make(map[string]any, len(cfg.Metadata)+2)
		for k, v := range cfg.Metadata {
			meta[k] = v
		}
		meta["errorVerb"] = string(vb)
		if h.newID != nil {
			meta["errorId"] = h.newID()
		}
		if matched != nil {
			if ex, ok := matched.(adapt.MetadataExtractor); ok {
				if extra, err := ex.ExtractMetadata(ctx, raw); err == nil {
					for k, v := range extra {
						meta[k] = v
					}
				}
			}
		}
		h.logger(fmt.Sprintf("[%s] %s", vb, cfg.Message), raw, meta)
	}

	if cfg.Action != nil {
		cfg.Action()
	}

	h.observer.OnHandled(ctx, observe.Event{
		Verb:     vb,
		Severity: cfg.Severity,
		Message:  cfg.Message,
		Logged:   logged,
		Adapter:  adapterName(matched),
		Err:      raw,
	})

	return Result{
		Message:       cfg.Message,
		ErrorVerb:     vb,
		Config:        cfg,
		OriginalError: raw,
		Duration:      dur,
	}
}

// shouldLog implements the gate: "none" short-circuits everything,
// LogAllErrors forces logging, otherwise the config severity (empty ranks
// as "error") must meet the threshold.
func (h *Handler) shouldLog(sev config.Severity) bool {
	if h.logLevel == LevelNone {
		return false
	}
	if h.logAllErrors {
		return true
	}
	return sev.Rank() >= h.logLevel.threshold()
}

func adapterName(a adapt.Adapter) string {
	if a == nil {
		return ""
	}
	return a.Name()
}
