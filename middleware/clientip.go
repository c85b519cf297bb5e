package middleware

import (
	"github.com/dmitrymomot/admingate/core/handler"
	"github.com/dmitrymomot/admingate/pkg/clientip"
)

type clientIPContextKey struct{}

// ClientIPConfig configures the client IP middleware.
type ClientIPConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool
	// TrustProxyHeaders reads CF-Connecting-IP, X-Forwarded-For and similar headers.
	// Leave false unless a proxy in front of the service overwrites them.
	TrustProxyHeaders bool
}

// ClientIP stores the peer address in the request context, ignoring proxy headers.
func ClientIP[C handler.Context]() handler.Middleware[C] {
	return ClientIPWithConfig[C](ClientIPConfig{})
}

// ClientIPWithConfig stores the client IP in the request context.
func ClientIPWithConfig[C handler.Context](cfg ClientIPConfig) handler.Middleware[C] {
	extract := clientip.RemoteIP
	if cfg.TrustProxyHeaders {
		extract = clientip.GetIP
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			ctx.SetValue(clientIPContextKey{}, extract(ctx.Request()))
			return next(ctx)
		}
	}
}

// GetClientIP retrieves the client IP stored by ClientIP.
func GetClientIP(ctx handler.Context) (string, bool) {
	ip, ok := ctx.Value(clientIPContextKey{}).(string)
	return ip, ok
}
