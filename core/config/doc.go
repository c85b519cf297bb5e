// Package config loads typed configuration from environment variables.
//
// On first use the package loads a .env file from the working directory (if any)
// and then parses struct fields with caarlos0/env tags:
//
//	type Config struct {
//		AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`
//		Env               string `env:"APP_ENV" envDefault:"development"`
//		Session           session.Config
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Each config type is parsed once and cached; a second Load of the same type copies
// the cached value without touching the environment again. Different types are cached
// independently. Tests that change the environment call Reset between loads.
package config
