// Package grpc provides an adapter that classifies gRPC status errors into
// taxonomy verbs. It lives in its own module so the core stays free of the
// grpc dependency; register the adapter to opt in.
package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/aponysus/verdict/adapt"
	"github.com/aponysus/verdict/verb"
)

// StatusAdapter maps gRPC status codes to verbs.
type StatusAdapter struct{}

var _ adapt.Adapter = StatusAdapter{}
var _ adapt.MetadataExtractor = StatusAdapter{}

func (StatusAdapter) Name() string { return "grpc-status" }

func (StatusAdapter) CanHandle(err error) bool {
	if err == nil {
		return false
	}
	_, ok := status.FromError(err)
	return ok
}

func (StatusAdapter) Verb(err error) verb.Verb {
	st, ok := status.FromError(err)
	if !ok {
		return verb.Unknown
	}
	return codeVerb(st.Code())
}

func (StatusAdapter) ExtractMetadata(_ context.Context, err error) (map[string]any, error) {
	st, ok := status.FromError(err)
	if !ok {
		return nil, nil
	}
	meta := map[string]any{"grpcCode": st.Code().String()}
	if msg := st.Message(); msg != "" {
		meta["grpcMessage"] = msg
	}
	return meta, nil
}

func codeVerb(code codes.Code) verb.Verb {
	switch code {
	case codes.NotFound:
		return verb.NotFound
	case codes.Unauthenticated:
		return verb.Unauthorized
	case codes.PermissionDenied:
		return verb.Forbidden
	case codes.InvalidArgument:
		return verb.BadRequest
	case codes.Internal, codes.Unavailable, codes.DataLoss, codes.Unimplemented:
		return verb.ServerError
	case codes.DeadlineExceeded:
		return verb.Timeout
	case codes.AlreadyExists, codes.Aborted:
		return verb.Conflict
	case codes.ResourceExhausted:
		return verb.TooManyRequests
	case codes.FailedPrecondition, codes.OutOfRange:
		return verb.UnprocessableEntity
	case codes.Canceled:
		return verb.Cancelled
	default:
		return verb.Unknown
	}
}
