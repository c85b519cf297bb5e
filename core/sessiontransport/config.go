package sessiontransport

import (
	"time"

	"github.com/dmitrymomot/admingate/core/cookie"
)

// DefaultCookieName is the name of the admin session cookie.
const DefaultCookieName = "admin-session"

// CookieConfig provides environment-based configuration for cookie-based session transport.
type CookieConfig struct {
	// CookieName is the name of the session cookie
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"admin-session"`
}

// DefaultCookieConfig returns a CookieConfig with sensible defaults.
func DefaultCookieConfig() CookieConfig {
	return CookieConfig{
		CookieName: DefaultCookieName,
	}
}

// NewCookieFromConfig creates a cookie-based session transport from configuration.
// The cookie.Manager must be provided by the caller.
func NewCookieFromConfig(cfg CookieConfig, cookieMgr *cookie.Manager, ttl time.Duration, secure bool) *Cookie {
	return NewCookie(cookieMgr, cfg.CookieName, ttl, secure)
}
