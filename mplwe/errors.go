package mplwe

// ConfigurationError reports invalid caller-supplied inputs: an
// out-of-range security parameter, a message of the wrong length, or
// operands built under mismatched parameter sets.
type ConfigurationError struct {
	Msg string
	Err error // underlying cause, may be nil
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return "mplwe: invalid configuration: " + e.Msg + ": " + e.Err.Error()
	}
	return "mplwe: invalid configuration: " + e.Msg
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// InternalInvariantError reports a mismatch between derived quantities
// that must always agree for a correctly derived parameter set. It
// signals a logic bug, never caller error, and the operation that
// detected it returns no partial result.
type InternalInvariantError struct {
	Msg string
}

func (e *InternalInvariantError) Error() string {
	return "mplwe: internal invariant violated: " + e.Msg
}
