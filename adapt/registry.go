package adapt

import "github.com/aponysus/verdict/verb"

// Registry is an ordered, append-only adapter list. Registration order is
// significant: classification tries adapters first-registered, first-tried
// and short-circuits on the first match.
//
// Registry is not synchronized; register adapters at setup time, before
// classification traffic starts.
type Registry struct {
	adapters []Adapter
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a to the list. Nil adapters are ignored.
func (r *Registry) Register(a Adapter) *Registry {
	if r == nil || a == nil {
		return r
	}
	r.adapters = append(r.adapters, a)
	return r
}

// Len returns the number of registered adapters.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.adapters)
}

// Classify returns the verb of the first adapter claiming err, along with
// that adapter. If no adapter claims err (including err == nil), it returns
// verb.Unknown and a nil adapter. Exactly one adapter's verdict is used;
// adapters are never combined.
func (r *Registry) Classify(err error) (verb.Verb, Adapter) {
	if r == nil {
		return verb.Unknown, nil
	}
	for _, a := range r.adapters {
		if a.CanHandle(err) {
			return a.Verb(err), a
		}
	}
	return verb.Unknown, nil
}
