package session

import (
	"io"
	"log/slog"
	"time"
)

const (
	// DefaultTTL is the fixed lifetime of an admin session.
	DefaultTTL = 24 * time.Hour
	// DefaultSweepInterval is how often the background janitor sweeps expired sessions.
	DefaultSweepInterval = 10 * time.Minute
)

// Config provides environment-based configuration for the session manager.
type Config struct {
	TTL           time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"10m"` // 0 disables the janitor
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		TTL:           DefaultTTL,
		SweepInterval: DefaultSweepInterval,
	}
}

// NewFromConfig creates a Manager from configuration.
// Only non-zero config values override defaults. Options are applied after config values.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	configOpts := make([]Option, 0, len(opts)+1)
	if cfg.TTL > 0 {
		configOpts = append(configOpts, WithTTL(cfg.TTL))
	}
	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}

// Option is a functional option for configuring the session manager.
type Option func(*Manager)

// WithTTL sets the session time-to-live. Non-positive values are ignored.
func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.ttl = ttl
		}
	}
}

// WithClock replaces time.Now. Tests use it to move time forward.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// WithIDGenerator replaces the session id generator.
// The generator must return unpredictable ids with at least 128 bits of entropy.
// Create panics if the generator returns ids already in the table several times
// in a row; the default 256-bit generator cannot reach that in practice.
func WithIDGenerator(fn func() string) Option {
	return func(m *Manager) {
		if fn != nil {
			m.generate = fn
		}
	}
}

// WithLogger sets a logger for sweep and janitor events.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
