package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cpfkit/pkg/config"
)

type cachedConfig struct {
	Language string `env:"CONFIG_TEST_LANGUAGE" envDefault:"en"`
}

type requiredConfig struct {
	Required string `env:"CONFIG_TEST_REQUIRED,required"`
}

type validatorConfig struct {
	Language string `env:"LANGUAGE" envDefault:"en"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Debug    bool   `env:"DEBUG"`
}

func TestLoad_CachesPerType(t *testing.T) {
	config.Reset[cachedConfig]()
	t.Cleanup(config.Reset[cachedConfig])

	t.Setenv("CONFIG_TEST_LANGUAGE", "pt-BR")

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "pt-BR", first.Language)

	t.Setenv("CONFIG_TEST_LANGUAGE", "en")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "pt-BR", second.Language, "second load must be served from cache")

	config.Reset[cachedConfig]()
	var third cachedConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "en", third.Language)
}

func TestLoad_MissingRequired(t *testing.T) {
	config.Reset[requiredConfig]()
	t.Cleanup(config.Reset[requiredConfig])
	os.Unsetenv("CONFIG_TEST_REQUIRED")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.ErrorIs(t, err, config.ErrParsingConfig)

	assert.Panics(t, func() {
		config.MustLoad(&cfg)
	})
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *cachedConfig
	require.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	require.ErrorIs(t, config.Parse(cfg), config.ErrNilPointer)
}

func TestParse_WithEnvironmentAndPrefix(t *testing.T) {
	t.Parallel()

	var cfg validatorConfig
	err := config.Parse(&cfg,
		config.WithPrefix("CPFKIT_"),
		config.WithEnvironment(map[string]string{
			"CPFKIT_LANGUAGE": "pt-BR",
			"CPFKIT_DEBUG":    "true",
			"LOG_LEVEL":       "error",
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, "pt-BR", cfg.Language)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "info", cfg.LogLevel, "unprefixed variables are ignored")
}

func TestParse_InvalidValue(t *testing.T) {
	t.Parallel()

	var cfg validatorConfig
	err := config.Parse(&cfg, config.WithEnvironment(map[string]string{"DEBUG": "maybe"}))
	require.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestParse_WithEnvFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(file, []byte("LANGUAGE=pt-BR\nLOG_LEVEL=debug\n"), 0o600))

	var cfg validatorConfig
	err := config.Parse(&cfg,
		config.WithEnvironment(map[string]string{"LOG_LEVEL": "warn"}),
		config.WithEnvFiles(file),
	)
	require.NoError(t, err)
	assert.Equal(t, "pt-BR", cfg.Language)
	assert.Equal(t, "warn", cfg.LogLevel, "explicit environment wins over the file")

	err = config.Parse(&cfg, config.WithEnvFiles(filepath.Join(dir, "missing.env")))
	require.ErrorIs(t, err, config.ErrReadingEnvFile)
}
