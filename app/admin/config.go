package admin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/admingate/core/cookie"
	"github.com/dmitrymomot/admingate/core/credential"
	"github.com/dmitrymomot/admingate/core/logger"
	"github.com/dmitrymomot/admingate/core/server"
	"github.com/dmitrymomot/admingate/core/session"
	"github.com/dmitrymomot/admingate/core/sessiontransport"
	"github.com/dmitrymomot/admingate/middleware"
)

var (
	ErrMissingPasswordHash = errors.New("missing required environment variable: ADMIN_PASSWORD_HASH")
	ErrInvalidPasswordHash = errors.New("ADMIN_PASSWORD_HASH is not a valid bcrypt hash")
)

// Config is the complete service configuration, loaded from the environment.
type Config struct {
	AppName string `env:"APP_NAME" envDefault:"admingate"`
	Env     string `env:"APP_ENV" envDefault:"development"`

	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	// TrustProxyHeaders makes client IP attribution read X-Forwarded-For and friends.
	TrustProxyHeaders bool  `env:"TRUST_PROXY_HEADERS" envDefault:"false"`
	MaxBodyBytes      int64 `env:"HTTP_MAX_BODY_BYTES" envDefault:"65536"`

	Log           logger.Config
	Session       session.Config
	Cookie        cookie.Config
	SessionCookie sessiontransport.CookieConfig
	Server        server.Config
}

// DefaultConfig returns the configuration used when no environment is set.
// AdminPasswordHash stays empty.
func DefaultConfig() Config {
	return Config{
		AppName:       "admingate",
		Env:           "development",
		MaxBodyBytes:  middleware.DefaultBodyLimit,
		Log:           logger.Config{Level: "info", Format: "text"},
		Session:       session.DefaultConfig(),
		Cookie:        cookie.DefaultConfig(),
		SessionCookie: sessiontransport.DefaultCookieConfig(),
		Server:        server.DefaultConfig(),
	}
}

// IsDevelopment reports whether the service runs locally. Session cookies drop
// the Secure flag only in development.
func (c Config) IsDevelopment() bool {
	switch strings.ToLower(c.Env) {
	case "development", "dev", "local", "test":
		return true
	}
	return false
}

// Validate checks the admin password hash.
func (c Config) Validate() error {
	if c.AdminPasswordHash == "" {
		return ErrMissingPasswordHash
	}
	if !credential.IsValidHash(c.AdminPasswordHash) {
		return fmt.Errorf("%w (generate one with: genhash <password>)", ErrInvalidPasswordHash)
	}
	return nil
}
