package session

import "errors"

var (
	// ErrNotFound is returned when a session id is not present in the table.
	ErrNotFound = errors.New("session not found")
	// ErrExpired is returned when a session has outlived its TTL.
	// The expired entry is removed before the error is returned.
	ErrExpired = errors.New("session has expired")
)
