package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/admingate/core/handler"
)

const (
	// DefaultRequestIDHeader carries the request id in both directions.
	DefaultRequestIDHeader = "X-Request-ID"

	// MaxRequestIDLength bounds inbound ids accepted from upstream proxies.
	MaxRequestIDLength = 128
)

type requestIDKey struct{}

// RequestIDConfig configures the request id middleware.
type RequestIDConfig struct {
	Skip func(ctx handler.Context) bool

	// Generator returns a fresh id. Defaults to a random UUID.
	Generator func() string

	// HeaderName defaults to DefaultRequestIDHeader.
	HeaderName string

	// UseExisting keeps a well-formed id sent by an upstream proxy instead
	// of generating one. Ids that fail validInboundID are replaced.
	UseExisting bool
}

// RequestID tags every request with a generated UUID.
func RequestID[C handler.Context]() handler.Middleware[C] {
	return RequestIDWithConfig[C](RequestIDConfig{})
}

// RequestIDWithConfig stores the id in the request context, where the logging
// middleware picks it up, and echoes it in the response header.
func RequestIDWithConfig[C handler.Context](cfg RequestIDConfig) handler.Middleware[C] {
	header := cfg.HeaderName
	if header == "" {
		header = DefaultRequestIDHeader
	}
	generate := cfg.Generator
	if generate == nil {
		generate = uuid.NewString
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			id := ""
			if cfg.UseExisting {
				if inbound := ctx.Request().Header.Get(header); validInboundID(inbound) {
					id = inbound
				}
			}
			if id == "" {
				id = generate()
			}
			ctx.SetValue(requestIDKey{}, id)

			resp := next(ctx)
			return func(w http.ResponseWriter, r *http.Request) error {
				w.Header().Set(header, id)
				return resp(w, r)
			}
		}
	}
}

// GetRequestID returns the id assigned by RequestID, if any.
func GetRequestID(ctx handler.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}

// validInboundID accepts non-empty printable ASCII without spaces, so upstream
// values cannot break log lines.
func validInboundID(id string) bool {
	if id == "" || len(id) > MaxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}
