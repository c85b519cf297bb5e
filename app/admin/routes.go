package admin

import (
	"strings"

	"github.com/dmitrymomot/admingate/core/handler"
	"github.com/dmitrymomot/admingate/core/health"
	"github.com/dmitrymomot/admingate/core/response"
	"github.com/dmitrymomot/admingate/core/router"
	"github.com/dmitrymomot/admingate/middleware"
)

// Context is the request context of every admin handler.
type Context = router.Context

func (a *App) routes() router.Router[*Context] {
	r := router.New[*Context](
		router.WithErrorHandler(response.JSONErrorHandler[*Context]),
		router.WithLogger[*Context](a.logger),
	)

	headers := middleware.StrictSecurity
	if a.config.IsDevelopment() {
		headers = middleware.DevelopmentSecurity
	}

	r.Use(
		middleware.RequestIDWithConfig[*Context](middleware.RequestIDConfig{
			UseExisting: a.config.TrustProxyHeaders,
		}),
		middleware.ClientIPWithConfig[*Context](middleware.ClientIPConfig{
			TrustProxyHeaders: a.config.TrustProxyHeaders,
		}),
		middleware.LoggingWithConfig[*Context](middleware.LoggingConfig{
			Logger: a.logger,
			Skip: func(ctx handler.Context) bool {
				return strings.HasPrefix(ctx.Request().URL.Path, "/health/")
			},
		}),
		middleware.SecurityHeadersWithConfig[*Context](headers),
		middleware.BodyLimitWithSize[*Context](a.config.MaxBodyBytes),
	)

	guest := middleware.RequireGuest[*Context](a.sessions, a.transport)
	authenticated := middleware.RequireSession[*Context](a.sessions, a.transport)

	r.With(guest).Get(loginPath, a.loginPage)
	r.Post(loginPath, a.login)
	r.Post(logoutPath, a.logout)
	r.With(authenticated).Get("/{$}", a.dashboard)

	r.Get("/api", a.apiInfo)
	r.Get("/api/health", health.Status[*Context](a.now))
	r.Get("/health/live", health.Liveness[*Context])
	r.Get("/health/ready", health.Readiness[*Context](a.logger, a.ready))

	return r
}
