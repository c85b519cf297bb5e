package server

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"

	"github.com/dmitrymomot/admingate/core/logger"
)

// Server owns one http.Server at a time. Start and Stop may be called from
// different goroutines.
type Server struct {
	cfg       Config
	tlsConfig *tls.Config
	logger    *slog.Logger

	mu  sync.Mutex
	srv *http.Server // non-nil while running
	ln  net.Listener
}

// New builds a Server on addr with default timeouts.
func New(addr string, opts ...Option) *Server {
	cfg := DefaultConfig()
	cfg.Addr = addr
	s := newServer(cfg)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newServer(cfg Config) *Server {
	return &Server{
		cfg:    cfg,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Addr is the bound address while running and the configured one otherwise,
// so ":0" resolves to the real port once listening.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.cfg.Addr
}

func (s *Server) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.srv != nil
}

// Start listens and serves h until ctx is done or serving fails. A bind
// failure is returned at once. On cancellation Start returns ctx.Err() and
// leaves the server running; Stop shuts it down.
func (s *Server) Start(ctx context.Context, h http.Handler) error {
	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return ErrServerAlreadyRunning
	}
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if s.tlsConfig != nil {
		ln = tls.NewListener(ln, s.tlsConfig)
	}
	srv := &http.Server{
		Handler:        h,
		ReadTimeout:    s.cfg.ReadTimeout,
		WriteTimeout:   s.cfg.WriteTimeout,
		IdleTimeout:    s.cfg.IdleTimeout,
		MaxHeaderBytes: s.cfg.MaxHeaderBytes,
		TLSConfig:      s.tlsConfig,
		ErrorLog:       slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
		BaseContext:    func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}
	s.srv, s.ln = srv, ln
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "listening",
		logger.Component("server"),
		slog.String("addr", ln.Addr().String()),
		slog.Bool("tls", s.tlsConfig != nil),
	)

	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.Serve(ln) }()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		s.reset(srv)
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop drains in-flight requests for at most the shutdown timeout.
// It is a no-op when the server is not running.
func (s *Server) Stop() error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	s.logger.Info("shutting down", logger.Component("server"), logger.Duration(s.cfg.ShutdownTimeout))

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	err := srv.Shutdown(ctx)
	s.reset(srv)
	if err != nil {
		s.logger.Error("shutdown failed", logger.Component("server"), logger.Error(err))
		return err
	}
	s.logger.Info("stopped", logger.Component("server"))
	return nil
}

// reset clears the running state if srv is still the current server.
func (s *Server) reset(srv *http.Server) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.srv == srv {
		s.srv, s.ln = nil, nil
	}
}

// Run adapts Start and Stop to errgroup.Group.Go: it serves until ctx is done,
// then shuts down. Cancellation is not an error.
func (s *Server) Run(ctx context.Context, h http.Handler) func() error {
	return func() error {
		err := s.Start(ctx, h)
		if ctx.Err() == nil {
			return err
		}
		if stopErr := s.Stop(); stopErr != nil {
			return stopErr
		}
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return nil
	}
}
