// Package admin is the password-gated admin service.
//
// An operator posts the shared admin password to /login. On success the service
// mints a session, stores it in memory for 24 hours and sets the admin-session
// cookie; the dashboard at / requires that session. /logout ends it.
//
//	var cfg admin.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	app, err := admin.New(cfg, admin.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	return app.Run(ctx)
//
// Routes:
//
//	GET  /login         login status, signed-in callers are redirected to /
//	POST /login         form field "password"; 422, 401 or 303 to /
//	POST /logout        303 to /login
//	GET  /              dashboard status, 303 to /login without a live session
//	GET  /api           API info
//	GET  /api/health    {"status":"healthy","timestamp":...}
//	GET  /health/live   ALIVE
//	GET  /health/ready  READY, or 503 when the password hash is unusable
package admin
