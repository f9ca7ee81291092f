package handler

import (
	"context"
	"fmt"
)

// QueryErrorHandler returns an error callback for data-fetching hooks. The
// callback handles the error as usual, then logs a name-tagged line with
// the query name in the metadata, then invokes onError with the raw error
// and the result.
//
// The name-tagged line is an attribution aid and bypasses the severity
// threshold; only LevelNone suppresses it.
func (h *Handler) QueryErrorHandler(name string, onError func(error, Result)) func(context.Context, error) {
	return func(ctx context.Context, err error) {
		res := h.Handle(ctx, err)

		if h.logLevel != LevelNone {
			h.logger(
				fmt.Sprintf("Error in query [%s]: %s", name, res.Message),
				err,
				map[string]any{
					"queryName": name,
					"errorVerb": string(res.ErrorVerb),
				},
			)
		}

		if onError != nil {
			onError(err, res)
		}
	}
}
