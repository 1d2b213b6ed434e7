package control

import "errors"

var (
	// ErrInvalidDescriptor is returned when a descriptor is built without
	// event codes or given a nil callback.
	ErrInvalidDescriptor = errors.New("invalid control descriptor")
	// ErrUnknownControl is returned when a control name is not present on a controller.
	ErrUnknownControl = errors.New("unknown control")
	// ErrDeadzoneUnsupported is returned when a deadzone is set on a kind that has none.
	ErrDeadzoneUnsupported = errors.New("deadzone not supported for control kind")
	ErrInvalidDeadzone     = errors.New("invalid deadzone bounds")
)
