package adapt

import (
	"context"
	"errors"

	"github.com/mitchellh/mapstructure"

	"github.com/aponysus/verdict/verb"
)

// PayloadError exposes a decoded error envelope, typically the JSON body a
// REST client attached to its error value.
type PayloadError interface {
	error
	ErrorPayload() map[string]any
}

// payloadBody is the subset of envelope fields classification cares about.
// Decoding is weakly typed: envelopes that carry `"status": "404"` still
// classify.
type payloadBody struct {
	Status  int    `mapstructure:"status"`
	Code    string `mapstructure:"code"`
	Message string `mapstructure:"message"`
}

func decodePayload(raw map[string]any) (payloadBody, error) {
	var body payloadBody
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &body,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return body, err
	}
	return body, dec.Decode(raw)
}

// PayloadAdapter classifies errors carrying a decoded error envelope by the
// envelope's status field.
type PayloadAdapter struct{}

func (PayloadAdapter) Name() string { return "payload" }

func (PayloadAdapter) CanHandle(err error) bool {
	var pe PayloadError
	return errors.As(err, &pe) && pe.ErrorPayload() != nil
}

func (PayloadAdapter) Verb(err error) verb.Verb {
	var pe PayloadError
	if !errors.As(err, &pe) {
		return verb.Unknown
	}
	body, decErr := decodePayload(pe.ErrorPayload())
	if decErr != nil {
		return verb.Unknown
	}
	if body.Code == "cancelled" {
		return verb.Cancelled
	}
	return StatusVerb(body.Status)
}

func (PayloadAdapter) ExtractMetadata(_ context.Context, err error) (map[string]any, error) {
	var pe PayloadError
	if !errors.As(err, &pe) {
		return nil, errors.New("verdict: not a PayloadError")
	}
	body, decErr := decodePayload(pe.ErrorPayload())
	if decErr != nil {
		return nil, decErr
	}
	meta := map[string]any{"status": body.Status}
	if body.Code != "" {
		meta["code"] = body.Code
	}
	if body.Message != "" {
		meta["serverMessage"] = body.Message
	}
	return meta, nil
}
