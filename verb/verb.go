// Package verb defines the closed set of semantic error categories
// that raw transport errors are normalized into.
package verb

// Verb is a semantic error category. The set is closed: adapters may only
// return one of the constants below, and configuration is resolved per verb.
type Verb string

const (
	NotFound            Verb = "not-found"
	Unauthorized        Verb = "unauthorized"
	Forbidden           Verb = "forbidden"
	BadRequest          Verb = "bad-request"
	ServerError         Verb = "server-error"
	NetworkError        Verb = "network-error"
	Timeout             Verb = "timeout"
	Conflict            Verb = "conflict"
	TooManyRequests     Verb = "too-many-requests"
	UnprocessableEntity Verb = "unprocessable-entity"
	Cancelled           Verb = "cancelled"

	// Unknown is both a real verb and the universal fallback when no
	// adapter recognizes an error.
	Unknown Verb = "unknown"
)

// All returns every verb in the taxonomy. The slice is freshly allocated.
func All() []Verb {
	return []Verb{
		NotFound,
		Unauthorized,
		Forbidden,
		BadRequest,
		ServerError,
		NetworkError,
		Timeout,
		Conflict,
		TooManyRequests,
		UnprocessableEntity,
		Cancelled,
		Unknown,
	}
}

// IsValid reports whether v is a member of the taxonomy.
func (v Verb) IsValid() bool {
	switch v {
	case NotFound, Unauthorized, Forbidden, BadRequest, ServerError,
		NetworkError, Timeout, Conflict, TooManyRequests,
		UnprocessableEntity, Cancelled, Unknown:
		return true
	default:
		return false
	}
}

func (v Verb) String() string { return string(v) }
