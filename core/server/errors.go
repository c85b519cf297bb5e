package server

import "errors"

var (
	ErrMissingAddress       = errors.New("server: address is required")
	ErrEmptyCertPath        = errors.New("server: both certificate and key files are required")
	ErrFailedLoadCert       = errors.New("server: cannot load certificate pair")
	ErrServerAlreadyRunning = errors.New("server: already running")
)
