package circuit

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownWire is returned when a wire has neither a value nor a driving gate
	ErrUnknownWire = errors.New("unknown wire")
	// ErrCycleDetected is returned when evaluation re-enters a wire it is still resolving
	ErrCycleDetected = errors.New("cycle detected")
	// ErrDuplicateOutput is returned when two gates drive the same wire
	ErrDuplicateOutput = errors.New("duplicate gate output")
	// ErrMissingWire is returned when a bit-vector wire is absent from the network
	ErrMissingWire = errors.New("missing wire")
)

// WireError annotates a network error with the wire that caused it
type WireError struct {
	Op   string
	Wire string
	Err  error
}

func (e *WireError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Wire, e.Err)
}

func (e *WireError) Unwrap() error {
	return e.Err
}
