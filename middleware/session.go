package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/admingate/core/handler"
	"github.com/dmitrymomot/admingate/core/logger"
	"github.com/dmitrymomot/admingate/core/response"
	"github.com/dmitrymomot/admingate/core/sessiontransport"
)

type sessionKey struct{}

// Default redirect targets of the session guards.
const (
	DefaultLoginPath = "/login"
	DefaultHomePath  = "/"
)

// SessionValidator reports whether a session id is live.
// *session.Manager satisfies it.
type SessionValidator interface {
	Validate(id string) bool
}

// SessionTransport reads and clears the session id carried by a request.
// *sessiontransport.Cookie satisfies it.
type SessionTransport interface {
	Extract(r *http.Request) (string, error)
	Revoke(w http.ResponseWriter)
}

// SessionConfig configures the session guard middleware.
type SessionConfig[C handler.Context] struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx C) bool
	// Sessions validates ids. Required.
	Sessions SessionValidator
	// Transport extracts ids from requests. Required.
	Transport SessionTransport
	// Logger for debug output (default: discard)
	Logger *slog.Logger
	// RequireAuth rejects requests without a live session.
	RequireAuth bool
	// RequireGuest rejects requests that already carry a live session.
	RequireGuest bool
	// ErrorHandler renders rejected requests. err is response.ErrUnauthorized for
	// RequireAuth and response.ErrForbidden for RequireGuest.
	// Default: 303 to DefaultLoginPath or DefaultHomePath respectively.
	ErrorHandler func(ctx C, err error) handler.Response
}

// RequireSession redirects requests without a live session to DefaultLoginPath.
// Absent, expired and forged ids are indistinguishable to the caller.
func RequireSession[C handler.Context](sessions SessionValidator, transport SessionTransport) handler.Middleware[C] {
	return SessionWithConfig(SessionConfig[C]{
		Sessions:    sessions,
		Transport:   transport,
		RequireAuth: true,
	})
}

// RequireGuest redirects requests that already hold a live session to DefaultHomePath.
func RequireGuest[C handler.Context](sessions SessionValidator, transport SessionTransport) handler.Middleware[C] {
	return SessionWithConfig(SessionConfig[C]{
		Sessions:     sessions,
		Transport:    transport,
		RequireGuest: true,
	})
}

// SessionWithConfig validates the request's session id and stores live ids in the context.
// A stale cookie is cleared on the way out.
func SessionWithConfig[C handler.Context](cfg SessionConfig[C]) handler.Middleware[C] {
	if cfg.Sessions == nil {
		panic("session middleware: sessions validator is required")
	}
	if cfg.Transport == nil {
		panic("session middleware: transport is required")
	}
	if cfg.RequireAuth && cfg.RequireGuest {
		panic("session middleware: RequireAuth and RequireGuest cannot both be true")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(_ C, err error) handler.Response {
			var httpErr response.HTTPError
			if errors.As(err, &httpErr) && httpErr.Status == http.StatusForbidden {
				return response.RedirectSeeOther(DefaultHomePath)
			}
			return response.RedirectSeeOther(DefaultLoginPath)
		}
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			id, err := cfg.Transport.Extract(ctx.Request())
			hasToken := err == nil
			if err != nil && !errors.Is(err, sessiontransport.ErrNoToken) {
				cfg.Logger.DebugContext(ctx, "session token unreadable", logger.Error(err))
			}

			live := hasToken && cfg.Sessions.Validate(id)
			if live {
				ctx.SetValue(sessionKey{}, id)
			}

			var resp handler.Response
			switch {
			case cfg.RequireAuth && !live:
				resp = cfg.ErrorHandler(ctx, response.ErrUnauthorized)
			case cfg.RequireGuest && live:
				return cfg.ErrorHandler(ctx, response.ErrForbidden)
			default:
				resp = next(ctx)
			}

			if hasToken && !live {
				return revokeBefore(resp, cfg.Transport)
			}
			return resp
		}
	}
}

func revokeBefore(resp handler.Response, transport SessionTransport) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		transport.Revoke(w)
		return resp(w, r)
	}
}

// GetSessionID returns the live session id stored by the session guard.
func GetSessionID(ctx handler.Context) (string, bool) {
	id, ok := ctx.Value(sessionKey{}).(string)
	return id, ok
}
