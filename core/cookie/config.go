package cookie

// Config provides environment-based configuration for the cookie manager.
// Secure, HttpOnly and SameSite are not configurable here: session cookies fix them.
type Config struct {
	Path   string `env:"COOKIE_PATH" envDefault:"/"`
	Domain string `env:"COOKIE_DOMAIN" envDefault:""`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Path: "/",
	}
}

// NewFromConfig creates a Manager from configuration.
// Only non-zero config values override defaults. Options are applied after config values.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	configOpts := make([]Option, 0, len(opts)+2)

	if cfg.Path != "" {
		configOpts = append(configOpts, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		configOpts = append(configOpts, WithDomain(cfg.Domain))
	}

	return New(append(configOpts, opts...)...)
}
