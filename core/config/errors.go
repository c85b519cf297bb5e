package config

import "errors"

var (
	// ErrNilConfig is returned when Load receives a nil pointer.
	ErrNilConfig = errors.New("config: nil config pointer")
	// ErrNotStruct is returned when the config type is not a struct.
	ErrNotStruct = errors.New("config: config type must be a struct")
	// ErrParse wraps environment parsing failures (missing required vars, bad values).
	ErrParse = errors.New("config: failed to parse environment")
)
