package adapt

import (
	"context"
	"errors"

	"github.com/aponysus/verdict/verb"
)

// HTTPError is an adapt-owned interface that lets the HTTP adapter
// recognize status-carrying errors without importing client packages.
//
// Implementations should use status code 0 for transport-level failures
// (connection refused, DNS, TLS) where no response was received.
type HTTPError interface {
	error
	HTTPStatusCode() int
}

// StatusVerb maps an HTTP status code to a verb. Code 0 (no response)
// maps to network-error; codes with no entry map to unknown.
func StatusVerb(status int) verb.Verb {
	switch status {
	case 0:
		return verb.NetworkError
	case 400:
		return verb.BadRequest
	case 401:
		return verb.Unauthorized
	case 403:
		return verb.Forbidden
	case 404:
		return verb.NotFound
	case 408, 504:
		return verb.Timeout
	case 409:
		return verb.Conflict
	case 422:
		return verb.UnprocessableEntity
	case 429:
		return verb.TooManyRequests
	case 500, 501, 502, 503:
		return verb.ServerError
	default:
		return verb.Unknown
	}
}

// HTTPAdapter classifies errors implementing HTTPError by status code.
// Context cancellation on the error chain wins over the status code.
type HTTPAdapter struct{}

func (HTTPAdapter) Name() string { return "http" }

func (HTTPAdapter) CanHandle(err error) bool {
	var he HTTPError
	return errors.As(err, &he)
}

func (HTTPAdapter) Verb(err error) verb.Verb {
	if errors.Is(err, context.Canceled) {
		return verb.Cancelled
	}
	var he HTTPError
	if !errors.As(err, &he) {
		return verb.Unknown
	}
	return StatusVerb(he.HTTPStatusCode())
}

func (HTTPAdapter) ExtractMetadata(_ context.Context, err error) (map[string]any, error) {
	var he HTTPError
	if !errors.As(err, &he) {
		return nil, errors.New("verdict: not an HTTPError")
	}
	return map[string]any{"status": he.HTTPStatusCode()}, nil
}
