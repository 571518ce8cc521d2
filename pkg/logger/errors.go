package logger

import "errors"

// ErrInvalidConfig is returned when Config holds an unknown level or format.
var ErrInvalidConfig = errors.New("logger: invalid configuration")
