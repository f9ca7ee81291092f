// Package adapt converts raw errors from arbitrary transports into
// taxonomy verbs via an ordered list of pluggable adapters.
package adapt

import (
	"context"

	"github.com/aponysus/verdict/verb"
)

// Adapter recognizes a family of raw error shapes and maps them to a verb.
//
// CanHandle must be side-effect-free and must not panic; a panicking
// CanHandle is a defect and propagates to the caller of Handle. Verb is only
// called with errors the adapter claimed via CanHandle.
type Adapter interface {
	// Name identifies the adapter in diagnostics.
	Name() string

	CanHandle(err error) bool

	Verb(err error) verb.Verb
}

// MetadataExtractor is an optional capability of an Adapter. When the
// matched adapter implements it and the handled error will be logged, the
// handler calls ExtractMetadata and merges the result into log metadata.
//
// Extraction failures degrade gracefully: the handler omits the metadata
// and still delivers the message, action and result.
type MetadataExtractor interface {
	ExtractMetadata(ctx context.Context, err error) (map[string]any, error)
}
