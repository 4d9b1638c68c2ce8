package core

import "errors"

// Error taxonomy shared by every package. Callers match with errors.Is;
// the detecting call wraps the sentinel with context using %w.
var (
	// ErrInvalidArgument reports malformed input such as a color that is not
	// three components long or a per-primitive list with the wrong length.
	ErrInvalidArgument = errors.New("fresnel: invalid argument")

	// ErrOutOfRange reports an index outside the primitive or geometry count.
	ErrOutOfRange = errors.New("fresnel: index out of range")

	// ErrDeviceMismatch reports a render request for a scene bound to a
	// different device than the tracer.
	ErrDeviceMismatch = errors.New("fresnel: scene and tracer use different devices")

	// ErrUnsupportedDevice reports an execution mode that is not available
	// in the running environment.
	ErrUnsupportedDevice = errors.New("fresnel: unsupported device")
)
