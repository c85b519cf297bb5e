// Package health provides HTTP handlers for service health monitoring.
//
// Handlers:
//   - Liveness: process is running, no dependency checks
//   - Readiness: every dependency check passes, 503 otherwise
//   - Status: JSON {"status":"healthy","timestamp":...} for uptime monitors
//
//	r.Get("/health/live", health.Liveness[*router.Context])
//	r.Get("/health/ready", health.Readiness[*router.Context](log, checkHash))
//	r.Get("/api/health", health.Status[*router.Context](nil))
//
// Dependency checks follow the func(context.Context) error signature.
package health
