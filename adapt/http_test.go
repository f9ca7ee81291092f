package adapt

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aponysus/verdict/verb"
)

type testHTTPError struct {
	status int
}

func (e testHTTPError) Error() string { return fmt.Sprintf("http %d", e.status) }

func (e testHTTPError) HTTPStatusCode() int { return e.status }

func TestStatusVerb(t *testing.T) {
	tests := []struct {
		status int
		want   verb.Verb
	}{
		{0, verb.NetworkError},
		{400, verb.BadRequest},
		{401, verb.Unauthorized},
		{403, verb.Forbidden},
		{404, verb.NotFound},
		{408, verb.Timeout},
		{409, verb.Conflict},
		{422, verb.UnprocessableEntity},
		{429, verb.TooManyRequests},
		{500, verb.ServerError},
		{501, verb.ServerError},
		{502, verb.ServerError},
		{503, verb.ServerError},
		{504, verb.Timeout},
		{418, verb.Unknown},
		{200, verb.Unknown},
	}
	for _, tt := range tests {
		if got := StatusVerb(tt.status); got != tt.want {
			t.Errorf("StatusVerb(%d)=%q want %q", tt.status, got, tt.want)
		}
	}
}

func TestHTTPAdapter(t *testing.T) {
	a := HTTPAdapter{}

	if a.CanHandle(errors.New("plain")) {
		t.Fatal("claimed a plain error")
	}
	if !a.CanHandle(testHTTPError{status: 404}) {
		t.Fatal("did not claim an HTTPError")
	}
	if got := a.Verb(testHTTPError{status: 404}); got != verb.NotFound {
		t.Fatalf("verb=%q want not-found", got)
	}

	// Wrapped errors still classify.
	wrapped := fmt.Errorf("fetch user: %w", testHTTPError{status: 401})
	if !a.CanHandle(wrapped) {
		t.Fatal("did not claim a wrapped HTTPError")
	}
	if got := a.Verb(wrapped); got != verb.Unauthorized {
		t.Fatalf("verb=%q want unauthorized", got)
	}
}

func TestHTTPAdapter_CancellationWins(t *testing.T) {
	a := HTTPAdapter{}
	err := fmt.Errorf("%w: %w", context.Canceled, error(testHTTPError{status: 500}))
	if got := a.Verb(err); got != verb.Cancelled {
		t.Fatalf("verb=%q want cancelled", got)
	}
}

func TestHTTPAdapter_Metadata(t *testing.T) {
	a := HTTPAdapter{}
	meta, err := a.ExtractMetadata(context.Background(), testHTTPError{status: 503})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta["status"] != 503 {
		t.Fatalf("status=%v want 503", meta["status"])
	}

	if _, err := a.ExtractMetadata(context.Background(), errors.New("plain")); err == nil {
		t.Fatal("expected error for non-HTTPError")
	}
}
