package handler

import (
	"log/slog"
	"os"
	"sort"
)

// Logger receives each log-worthy handled error: the formatted message
// ("[verb] user-facing text"), the raw error, and the merged metadata.
type Logger func(message string, err error, meta map[string]any)

// SlogLogger adapts a *slog.Logger, emitting one Error record per handled
// error with metadata as attributes in stable key order.
func SlogLogger(l *slog.Logger) Logger {
	return func(message string, err error, meta map[string]any) {
		attrs := make([]any, 0, 2*(len(meta)+1))
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		keys := make([]string, 0, len(meta))
		for k := range meta {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			attrs = append(attrs, k, meta[k])
		}
		l.Error(message, attrs...)
	}
}

func defaultLogger() Logger {
	return SlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
}
