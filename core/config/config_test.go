package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/core/config"
)

type sampleConfig struct {
	Mode     string        `env:"CONFIG_TEST_MODE" envDefault:"blur"`
	Strict   bool          `env:"CONFIG_TEST_STRICT"`
	Debounce time.Duration `env:"CONFIG_TEST_DEBOUNCE" envDefault:"1s"`
}

type requiredConfig struct {
	Token string `env:"CONFIG_TEST_TOKEN,required"`
}

func TestLoad(t *testing.T) {
	t.Setenv("CONFIG_TEST_STRICT", "true")
	config.Reset()
	t.Cleanup(config.Reset)

	var cfg sampleConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "blur", cfg.Mode)
	assert.True(t, cfg.Strict)
	assert.Equal(t, time.Second, cfg.Debounce)

	t.Run("second load is served from cache", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_MODE", "keyup")

		var again sampleConfig
		require.NoError(t, config.Load(&again))
		assert.Equal(t, cfg, again)
	})

	t.Run("reset reloads", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_MODE", "keyup")
		config.Reset()

		var fresh sampleConfig
		require.NoError(t, config.Load(&fresh))
		assert.Equal(t, "keyup", fresh.Mode)
	})
}

func TestLoad_Error(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	var cfg requiredConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsing)

	assert.Panics(t, func() { config.MustLoad(&cfg) })
}
