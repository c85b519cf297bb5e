package admin

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/admingate/core/cookie"
	"github.com/dmitrymomot/admingate/core/credential"
	"github.com/dmitrymomot/admingate/core/logger"
	"github.com/dmitrymomot/admingate/core/router"
	"github.com/dmitrymomot/admingate/core/server"
	"github.com/dmitrymomot/admingate/core/session"
	"github.com/dmitrymomot/admingate/core/sessiontransport"
)

// App wires the session manager, credential check and HTTP surface together.
type App struct {
	config    Config
	logger    *slog.Logger
	now       func() time.Time
	sessions  *session.Manager
	verifier  credential.Verifier
	transport *sessiontransport.Cookie
	server    *server.Server
	router    router.Router[*router.Context]
}

// Option configures an App.
type Option func(*App) error

// WithLogger sets the application logger.
func WithLogger(log *slog.Logger) Option {
	return func(a *App) error {
		if log == nil {
			return errors.New("logger cannot be nil")
		}
		a.logger = log
		return nil
	}
}

// WithSessionManager replaces the session manager built from config.
func WithSessionManager(sessions *session.Manager) Option {
	return func(a *App) error {
		if sessions == nil {
			return errors.New("session manager cannot be nil")
		}
		a.sessions = sessions
		return nil
	}
}

// WithVerifier replaces the bcrypt verifier bound to ADMIN_PASSWORD_HASH.
func WithVerifier(v credential.Verifier) Option {
	return func(a *App) error {
		if v == nil {
			return errors.New("verifier cannot be nil")
		}
		a.verifier = v
		return nil
	}
}

// WithServer replaces the HTTP server built from config.
func WithServer(s *server.Server) Option {
	return func(a *App) error {
		if s == nil {
			return errors.New("server cannot be nil")
		}
		a.server = s
		return nil
	}
}

// WithClock replaces time.Now for status timestamps.
func WithClock(now func() time.Time) Option {
	return func(a *App) error {
		if now == nil {
			return errors.New("clock cannot be nil")
		}
		a.now = now
		return nil
	}
}

// New builds the application. A missing or malformed admin password hash is fatal
// outside development and logged as a warning in development.
func New(cfg Config, opts ...Option) (*App, error) {
	a := &App{
		config: cfg,
		logger: slog.Default(),
		now:    time.Now,
	}

	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		if !cfg.IsDevelopment() {
			return nil, err
		}
		a.logger.Warn("environment validation failed, logins will be rejected",
			logger.Component("admin"),
			logger.Error(err),
		)
	}

	if a.sessions == nil {
		a.sessions = session.NewFromConfig(cfg.Session, session.WithLogger(a.logger))
	}

	if a.verifier == nil {
		a.verifier = credential.NewBcrypt(cfg.AdminPasswordHash)
	}

	a.transport = sessiontransport.NewCookieFromConfig(
		cfg.SessionCookie,
		cookie.NewFromConfig(cfg.Cookie),
		a.sessions.TTL(),
		!cfg.IsDevelopment(),
	)

	if a.server == nil {
		s, err := server.NewFromConfig(cfg.Server, server.WithLogger(a.logger))
		if err != nil {
			return nil, err
		}
		a.server = s
	}

	a.router = a.routes()

	return a, nil
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler {
	return a.router
}

// Sessions returns the session manager.
func (a *App) Sessions() *session.Manager {
	return a.sessions
}

// Run serves HTTP and sweeps expired sessions until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	for _, route := range a.router.Routes() {
		a.logger.Debug("route registered",
			logger.Component("router"),
			logger.Method(route.Method),
			logger.Path(route.Pattern),
		)
	}

	a.logger.InfoContext(ctx, "starting admin service",
		logger.Component("admin"),
		slog.String("app", a.config.AppName),
		slog.String("env", a.config.Env),
		logger.Version(Version),
		logger.Group("session",
			slog.Duration("ttl", a.sessions.TTL()),
			slog.Duration("sweep_interval", a.config.Session.SweepInterval),
		),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(a.server.Run(ctx, a.router))
	g.Go(a.sessions.Run(ctx, a.config.Session.SweepInterval))

	err := g.Wait()
	a.sessions.Clear()
	return err
}

// ready fails when the verifier cannot accept any password.
func (a *App) ready(context.Context) error {
	if r, ok := a.verifier.(interface{ Ready() error }); ok {
		return r.Ready()
	}
	return nil
}
