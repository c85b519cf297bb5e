package server

import (
	"crypto/tls"
	"log/slog"
	"time"
)

type Option func(*Server)

// WithTLS serves HTTPS with config. NewFromConfig sets it from the certificate files.
func WithTLS(config *tls.Config) Option {
	return func(s *Server) { s.tlsConfig = config }
}

// WithLogger receives lifecycle events and http.Server errors. Nil is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithShutdownTimeout bounds how long Stop waits for in-flight requests.
func WithShutdownTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		if timeout > 0 {
			s.cfg.ShutdownTimeout = timeout
		}
	}
}
