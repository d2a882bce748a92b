package dss

import "fmt"

// InitializationError reports that a DSS engine context could not be
// created: the native bindings were not built in, the shared library
// refused to start, or allocation of a new context failed.
type InitializationError struct {
	Err error
}

func (e *InitializationError) Error() string {
	return "godss: could not initialize DSS context: " + e.Err.Error()
}

func (e *InitializationError) Unwrap() error { return e.Err }

// EngineError is a failure reported by the engine itself through its
// per-context error cell. Code and Message are carried verbatim.
type EngineError struct {
	Code    int32
	Message string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("(DSSError#%d) %s", e.Code, e.Message)
}

// MarshalError reports a result whose shape does not match what the
// operation promises, such as an odd number of values where re/im
// pairs are expected. It is detected by this package, never reported
// by the engine.
type MarshalError struct {
	Op   string
	Want int
	Got  int
}

func (e *MarshalError) Error() string {
	return fmt.Sprintf("godss: %s: result shape mismatch: expected %d values, got %d", e.Op, e.Want, e.Got)
}
