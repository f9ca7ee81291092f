package adapt

import (
	"context"
	"errors"
	"net"
	"net/url"

	"github.com/aponysus/verdict/verb"
)

// TransportAdapter classifies errors produced by the standard library HTTP
// client and the net package: *url.Error, net.Error and context signals.
type TransportAdapter struct{}

func (TransportAdapter) Name() string { return "transport" }

func (TransportAdapter) CanHandle(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ue *url.Error
	if errors.As(err, &ue) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne)
}

func (TransportAdapter) Verb(err error) verb.Verb {
	if errors.Is(err, context.Canceled) {
		return verb.Cancelled
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return verb.Timeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return verb.Timeout
	}
	return verb.NetworkError
}

func (TransportAdapter) ExtractMetadata(_ context.Context, err error) (map[string]any, error) {
	var ue *url.Error
	if !errors.As(err, &ue) {
		return nil, nil
	}
	return map[string]any{"op": ue.Op, "url": ue.URL}, nil
}
