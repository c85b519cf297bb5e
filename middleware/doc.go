// Package middleware provides HTTP middleware for the admin service.
//
// Every middleware is a generic function over the handler.Context type, with a
// default constructor and a WithConfig variant:
//
//	r := router.New[*router.Context]()
//	r.Use(
//		middleware.RequestID[*router.Context](),
//		middleware.ClientIP[*router.Context](),
//		middleware.LoggingWithLogger[*router.Context](log),
//		middleware.SecurityHeaders[*router.Context](),
//	)
//
// Session guards read the session id through a transport and check it against the
// session manager. Protected routes redirect to /login; guest-only routes redirect
// signed-in callers to /:
//
//	r.With(middleware.RequireSession[*router.Context](sessions, transport)).
//		Get("/{$}", dashboard)
//	r.With(middleware.RequireGuest[*router.Context](sessions, transport)).
//		Post("/login", login)
//
// Values stored by middleware are read back with GetRequestID, GetClientIP and
// GetSessionID.
package middleware
