// Package verdict is the convenience facade over a process-wide default
// error handler. Applications that want explicit wiring should construct a
// handler.Handler directly and skip this package.
package verdict

import (
	"context"

	"github.com/aponysus/verdict/handler"
)

// Result is the outcome of handling one error.
type Result = handler.Result

// Init sets the global default handler.
// It must be called before Handle/QueryErrorHandler are used.
func Init(h *handler.Handler) {
	handler.SetGlobal(h)
}

// Handle normalizes err using the default handler.
func Handle(ctx context.Context, err error) Result {
	return handler.DefaultHandler().Handle(ctx, err)
}

// QueryErrorHandler returns a data-fetching error callback bound to the
// default handler.
func QueryErrorHandler(name string, onError func(error, Result)) func(context.Context, error) {
	return handler.DefaultHandler().QueryErrorHandler(name, onError)
}
