package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/admingate/core/config"
)

// These tests mutate process environment and the package cache, so they are not parallel.

type appConfig struct {
	Name    string        `env:"CONFIG_TEST_NAME" envDefault:"admingate"`
	TTL     time.Duration `env:"CONFIG_TEST_TTL" envDefault:"24h"`
	Verbose bool          `env:"CONFIG_TEST_VERBOSE"`
}

type requiredConfig struct {
	Secret string `env:"CONFIG_TEST_SECRET,required"`
}

func TestLoad_Defaults(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	var cfg appConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "admingate", cfg.Name)
	assert.Equal(t, 24*time.Hour, cfg.TTL)
	assert.False(t, cfg.Verbose)
}

func TestLoad_FromEnvironment(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)
	t.Setenv("CONFIG_TEST_NAME", "custom")
	t.Setenv("CONFIG_TEST_TTL", "90m")
	t.Setenv("CONFIG_TEST_VERBOSE", "true")

	var cfg appConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "custom", cfg.Name)
	assert.Equal(t, 90*time.Minute, cfg.TTL)
	assert.True(t, cfg.Verbose)
}

func TestLoad_Caches(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)
	t.Setenv("CONFIG_TEST_NAME", "first")

	var first appConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("CONFIG_TEST_NAME", "second")

	var second appConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Name)

	config.Reset()

	var third appConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Name)
}

func TestLoad_Errors(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *appConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilConfig)
	})

	t.Run("non-struct type", func(t *testing.T) {
		var s string
		assert.ErrorIs(t, config.Load(&s), config.ErrNotStruct)
	})

	t.Run("missing required variable", func(t *testing.T) {
		var cfg requiredConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParse)
	})

	t.Run("bad duration", func(t *testing.T) {
		config.Reset()
		t.Setenv("CONFIG_TEST_TTL", "forever")

		var cfg appConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParse)
	})
}

func TestMustLoad(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})

	assert.NotPanics(t, func() {
		var cfg appConfig
		config.MustLoad(&cfg)
	})
}
