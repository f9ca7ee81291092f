package handler

import (
	"log"
	"sync"
)

var (
	globalHandler *Handler
	globalOnce    sync.Once
)

// DefaultHandler returns the shared, lazy-initialized default handler.
// It uses New() with the built-in adapters if SetGlobal has not been called.
func DefaultHandler() *Handler {
	globalOnce.Do(func() {
		if globalHandler == nil {
			globalHandler = New(WithBuiltinAdapters())
		}
	})
	return globalHandler
}

// SetGlobal configures the default handler.
// It must be called before DefaultHandler() is used (e.g. at startup).
// If called after initialization, it logs a warning and does nothing.
func SetGlobal(h *Handler) {
	if h == nil {
		return
	}

	if globalHandler != nil {
		log.Printf("verdict: SetGlobal called after global handler already initialized; ignoring.")
		return
	}

	globalOnce.Do(func() {
		globalHandler = h
	})
}
