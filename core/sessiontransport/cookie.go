package sessiontransport

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmitrymomot/admingate/core/cookie"
)

// Transport moves session ids between the HTTP exchange and the server.
type Transport interface {
	Embed(w http.ResponseWriter, id string) error
	Extract(r *http.Request) (string, error)
	Revoke(w http.ResponseWriter)
}

var _ Transport = (*Cookie)(nil)

// Cookie provides HTTP cookie-based session transport.
// It stores the session id as the cookie value.
type Cookie struct {
	cookieMgr *cookie.Manager
	name      string
	maxAge    int
	secure    bool
}

// NewCookie creates a new cookie-based session transport.
// The cookie lives for ttl, truncated to whole seconds. An empty name falls back to DefaultCookieName.
func NewCookie(cookieMgr *cookie.Manager, name string, ttl time.Duration, secure bool) *Cookie {
	if cookieMgr == nil {
		cookieMgr = cookie.New()
	}
	if name == "" {
		name = DefaultCookieName
	}
	return &Cookie{
		cookieMgr: cookieMgr,
		name:      name,
		maxAge:    int(ttl / time.Second),
		secure:    secure,
	}
}

// Name returns the cookie name.
func (c *Cookie) Name() string {
	return c.name
}

// MaxAge returns the cookie lifetime in seconds.
func (c *Cookie) MaxAge() int {
	return c.maxAge
}

// Embed sets the session cookie.
func (c *Cookie) Embed(w http.ResponseWriter, id string) error {
	if id == "" {
		return ErrNoToken
	}

	return c.cookieMgr.Set(w, c.name, id,
		cookie.WithHTTPOnly(true),
		cookie.WithSecure(c.secure),
		cookie.WithSameSite(http.SameSiteLaxMode),
		cookie.WithMaxAge(c.maxAge),
	)
}

// Extract reads the session id from the request cookie.
func (c *Cookie) Extract(r *http.Request) (string, error) {
	id, err := c.cookieMgr.Get(r, c.name)
	if err != nil {
		if errors.Is(err, cookie.ErrCookieNotFound) {
			return "", ErrNoToken
		}
		return "", err
	}
	return id, nil
}

// Revoke clears the session cookie on the client.
func (c *Cookie) Revoke(w http.ResponseWriter) {
	c.cookieMgr.Delete(w, c.name)
}
