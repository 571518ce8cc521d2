package hook

import "errors"

// Registry errors.
var (
	// ErrEmptyHookName is returned when a filter is added without a hook name.
	ErrEmptyHookName = errors.New("hook: hook name is required")

	// ErrEmptyFilterID is returned when a filter is added without an id.
	ErrEmptyFilterID = errors.New("hook: filter id is required")

	// ErrNilFilter is returned when a nil callback is added.
	ErrNilFilter = errors.New("hook: filter func is nil")

	// ErrInvalidArity is returned when AcceptedArgs is less than one.
	ErrInvalidArity = errors.New("hook: accepted args must be at least 1")
)
