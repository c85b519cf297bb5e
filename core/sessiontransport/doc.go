// Package sessiontransport binds session ids to HTTP requests and responses.
//
// The Cookie transport stores the opaque id issued by core/session as the value of
// a single cookie ("admin-session" by default). Embed writes it with HttpOnly,
// SameSite=Lax and a Max-Age equal to the session TTL; Secure is set by the caller,
// normally everywhere except development.
//
//	sessions := session.New()
//	transport := sessiontransport.NewCookie(cookie.New(), "admin-session", sessions.TTL(), true)
//
//	// after login
//	err := transport.Embed(w, sessions.Create())
//
//	// on a protected request
//	id, err := transport.Extract(r)
//	if errors.Is(err, sessiontransport.ErrNoToken) || !sessions.Validate(id) {
//		// not authenticated
//	}
//
//	// on logout
//	sessions.Delete(id)
//	transport.Revoke(w)
//
// The transport never inspects the id. Validation is the session manager's job.
package sessiontransport
