package config

import "github.com/aponysus/verdict/verb"

// defaultEntry is the per-verb seed for built-in defaults. Keeping message,
// severity and reportable in one table means a verb added to the taxonomy
// without a row here fails the taxonomy completeness test, not a lookup at
// runtime.
type defaultEntry struct {
	message    string
	severity   Severity
	reportable bool
}

var defaults = map[verb.Verb]defaultEntry{
	verb.NotFound: {
		message:  "The requested resource was not found.",
		severity: SeverityInfo,
	},
	verb.Unauthorized: {
		message:  "Your session has expired. Please sign in again.",
		severity: SeverityWarning,
	},
	verb.Forbidden: {
		message:  "You do not have permission to perform this action.",
		severity: SeverityWarning,
	},
	verb.BadRequest: {
		message:  "The request could not be understood. Please check your input.",
		severity: SeverityWarning,
	},
	verb.ServerError: {
		message:    "Something went wrong on our end. Please try again later.",
		severity:   SeverityError,
		reportable: true,
	},
	verb.NetworkError: {
		message:  "A network error occurred. Check your connection and try again.",
		severity: SeverityWarning,
	},
	verb.Timeout: {
		message:  "The request timed out. Please try again.",
		severity: SeverityWarning,
	},
	verb.Conflict: {
		message:  "This item was changed by someone else. Refresh and try again.",
		severity: SeverityWarning,
	},
	verb.TooManyRequests: {
		message:  "Too many requests. Please wait a moment and try again.",
		severity: SeverityWarning,
	},
	verb.UnprocessableEntity: {
		message:  "The submitted data could not be processed.",
		severity: SeverityWarning,
	},
	verb.Cancelled: {
		message:  "The request was cancelled.",
		severity: SeverityInfo,
	},
	verb.Unknown: {
		message:    "An unexpected error occurred.",
		severity:   SeverityError,
		reportable: true,
	},
}

// Defaults returns the built-in configuration for every verb in the
// taxonomy. The map is freshly allocated; callers may mutate it.
func Defaults() ConfigMap {
	out := make(ConfigMap, len(defaults))
	for v, e := range defaults {
		out[v] = ErrorConfig{
			Message:    e.message,
			Severity:   e.severity,
			Reportable: e.reportable,
		}
	}
	return out
}
