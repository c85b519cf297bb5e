// Package cookie provides HTTP cookie management with secure defaults.
//
// Every cookie written by a Manager is HttpOnly, SameSite=Lax and scoped to "/"
// unless options say otherwise. Serialized cookies larger than 4KB are rejected.
//
//	m := cookie.New(cookie.WithSecure(true))
//
//	err := m.Set(w, "admin-session", id, cookie.WithMaxAge(86400))
//
//	id, err := m.Get(r, "admin-session")
//	if errors.Is(err, cookie.ErrCookieNotFound) {
//		// no cookie, or an empty one
//	}
//
//	m.Delete(w, "admin-session")
package cookie
