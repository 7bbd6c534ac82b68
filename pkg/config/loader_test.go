package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicbase/clinickit/pkg/config"
)

type appConfig struct {
	RootDomain string `env:"TEST_APP_ROOT_DOMAIN" envDefault:"localhost"`
	CacheTTL   int    `env:"TEST_APP_CACHE_TTL" envDefault:"300"`
}

type requiredConfig struct {
	Value string `env:"TEST_APP_REQUIRED,required"`
}

func TestLoad(t *testing.T) {
	t.Setenv("TEST_APP_ROOT_DOMAIN", "example.com")
	config.ResetCache()

	var cfg appConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "example.com", cfg.RootDomain)
	assert.Equal(t, 300, cfg.CacheTTL, "default applies when unset")
}

func TestLoad_CachesPerType(t *testing.T) {
	t.Setenv("TEST_APP_ROOT_DOMAIN", "first.com")
	config.ResetCache()

	var first appConfig
	require.NoError(t, config.Load(&first))

	// A later environment change is invisible until the cache is reset.
	t.Setenv("TEST_APP_ROOT_DOMAIN", "second.com")
	var second appConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first.com", second.RootDomain)

	config.ResetCache()
	var third appConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second.com", third.RootDomain)
}

func TestLoad_RequiredMissing(t *testing.T) {
	config.ResetCache()

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	err := config.Load[appConfig](nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestMustLoad_PanicsOnFailure(t *testing.T) {
	config.ResetCache()

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv_MissingFile(t *testing.T) {
	assert.Error(t, config.LoadEnv("testdata/does-not-exist.env"))
	assert.Panics(t, func() { config.MustLoadEnv("testdata/does-not-exist.env") })
}
