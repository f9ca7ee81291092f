package handler

import (
	"github.com/aponysus/verdict/adapt"
	"github.com/aponysus/verdict/config"
	"github.com/aponysus/verdict/observe"
	"github.com/aponysus/verdict/verb"
)

// Option configures a Handler.
type Option func(*handlerConfig)

// WithDefaultConfig sets the fallback config (and the "unknown" entry).
func WithDefaultConfig(cfg config.ErrorConfig) Option {
	return func(c *handlerConfig) {
		c.opts.DefaultConfig = &cfg
	}
}

// WithConfigs applies a patch on top of the built-in defaults.
func WithConfigs(patch config.ConfigMap) Option {
	return func(c *handlerConfig) {
		if c.opts.Configs == nil {
			c.opts.Configs = make(config.ConfigMap, len(patch))
		}
		for v, cfg := range patch {
			c.opts.Configs[v] = cfg
		}
	}
}

// WithConfig overrides the config for a single verb.
func WithConfig(v verb.Verb, cfg config.ErrorConfig) Option {
	return WithConfigs(config.ConfigMap{v: cfg})
}

// WithAdapter appends an adapter. Options are applied in order, so adapter
// precedence follows option order.
func WithAdapter(a adapt.Adapter) Option {
	return func(c *handlerConfig) {
		c.opts.Adapters = append(c.opts.Adapters, a)
	}
}

// WithBuiltinAdapters appends the built-in adapter set (HTTP status shape,
// payload shape, stdlib transport errors), in that order.
func WithBuiltinAdapters() Option {
	return func(c *handlerConfig) {
		c.opts.Adapters = append(c.opts.Adapters,
			adapt.HTTPAdapter{},
			adapt.PayloadAdapter{},
			adapt.TransportAdapter{},
		)
	}
}

// WithLogger sets the logging callback.
func WithLogger(l Logger) Option {
	return func(c *handlerConfig) {
		c.opts.Logger = l
	}
}

// WithLogLevel sets the severity threshold for logging.
func WithLogLevel(level LogLevel) Option {
	return func(c *handlerConfig) {
		c.opts.LogLevel = level
	}
}

// WithLogAllErrors forces logging regardless of severity. LevelNone still
// wins over this.
func WithLogAllErrors(all bool) Option {
	return func(c *handlerConfig) {
		c.opts.LogAllErrors = all
	}
}

// WithWordsPerSecond sets the reading speed for the duration heuristic.
func WithWordsPerSecond(wps float64) Option {
	return func(c *handlerConfig) {
		c.opts.WordsPerSecond = wps
	}
}

// WithObserver sets the observer.
func WithObserver(o observe.Observer) Option {
	return func(c *handlerConfig) {
		c.opts.Observer = o
	}
}
