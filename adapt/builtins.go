package adapt

// RegisterBuiltins registers the built-in adapters into reg, most specific
// first: HTTP status shape, decoded payload shape, stdlib transport errors.
func RegisterBuiltins(reg *Registry) {
	if reg == nil {
		return
	}
	reg.Register(HTTPAdapter{})
	reg.Register(PayloadAdapter{})
	reg.Register(TransportAdapter{})
}
