package admin_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/admingate/app/admin"
	"github.com/dmitrymomot/admingate/core/config"
)

func TestConfig_IsDevelopment(t *testing.T) {
	t.Parallel()

	for env, want := range map[string]bool{
		"development": true,
		"DEV":         true,
		"local":       true,
		"test":        true,
		"production":  false,
		"staging":     false,
		"":            false,
	} {
		assert.Equal(t, want, admin.Config{Env: env}.IsDevelopment(), env)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	cfg := admin.DefaultConfig()
	assert.ErrorIs(t, cfg.Validate(), admin.ErrMissingPasswordHash)

	cfg.AdminPasswordHash = "$2a$10$short"
	assert.ErrorIs(t, cfg.Validate(), admin.ErrInvalidPasswordHash)

	cfg.AdminPasswordHash = passwordHash(t)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_LoadFromEnvironment(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	t.Setenv("APP_ENV", "production")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuu")
	t.Setenv("SESSION_TTL", "12h")
	t.Setenv("SESSION_COOKIE_NAME", "ops-session")
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("TRUST_PROXY_HEADERS", "true")

	var cfg admin.Config
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "admingate", cfg.AppName)
	assert.Equal(t, "production", cfg.Env)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "$2a$10$abcdefghijklmnopqrstuu", cfg.AdminPasswordHash)
	assert.Equal(t, 12*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 10*time.Minute, cfg.Session.SweepInterval)
	assert.Equal(t, "ops-session", cfg.SessionCookie.CookieName)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.True(t, cfg.TrustProxyHeaders)
	assert.Equal(t, int64(65536), cfg.MaxBodyBytes)
	assert.Equal(t, "/", cfg.Cookie.Path)
}
