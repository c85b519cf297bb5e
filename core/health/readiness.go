package health

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/admingate/core/handler"
	"github.com/dmitrymomot/admingate/core/logger"
	"github.com/dmitrymomot/admingate/core/response"
)

// Readiness runs every check and answers "READY", or 503 when any check fails.
//
//	r.Get("/health/ready", health.Readiness[*router.Context](log, func(context.Context) error {
//		return verifier.Ready()
//	}))
func Readiness[C handler.Context](log *slog.Logger, checks ...func(context.Context) error) handler.HandlerFunc[C] {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return func(ctx C) handler.Response {
		for _, check := range checks {
			if err := check(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed",
					logger.Component("health"),
					logger.Error(err),
				)
				return response.Error(response.ErrServiceUnavailable)
			}
		}

		return response.String("READY")
	}
}
