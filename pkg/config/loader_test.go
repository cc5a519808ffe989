package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uasniff/pkg/config"
)

type defaultsConfig struct {
	TestString string `env:"UASNIFF_TEST_STRING_DEFAULT" envDefault:"default_value"`
	TestInt    int    `env:"UASNIFF_TEST_INT_DEFAULT" envDefault:"42"`
	TestBool   bool   `env:"UASNIFF_TEST_BOOL_DEFAULT" envDefault:"true"`
}

type requiredConfig struct {
	Required string `env:"UASNIFF_TEST_REQUIRED,required"`
}

type fileConfig struct {
	Value string `env:"UASNIFF_TEST_FILE_VALUE"`
	Int   int    `env:"UASNIFF_TEST_FILE_INT"`
}

func TestLoadDefaults(t *testing.T) {
	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "default_value", cfg.TestString)
	assert.Equal(t, 42, cfg.TestInt)
	assert.True(t, cfg.TestBool)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("UASNIFF_TEST_STRING_DEFAULT", "from_env")
	t.Setenv("UASNIFF_TEST_INT_DEFAULT", "7")
	t.Setenv("UASNIFF_TEST_BOOL_DEFAULT", "false")

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "from_env", cfg.TestString)
	assert.Equal(t, 7, cfg.TestInt)
	assert.False(t, cfg.TestBool)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing required value", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("malformed value", func(t *testing.T) {
		t.Setenv("UASNIFF_TEST_INT_DEFAULT", "many")
		var cfg defaultsConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[defaultsConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
	assert.NotPanics(t, func() {
		var cfg defaultsConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Cleanup(func() {
		_ = os.Unsetenv("UASNIFF_TEST_FILE_VALUE")
		_ = os.Unsetenv("UASNIFF_TEST_FILE_INT")
	})

	require.NoError(t, config.LoadEnv())
	require.NoError(t, config.LoadEnv("testdata/.env.test"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_file", cfg.Value)
	assert.Equal(t, 7, cfg.Int)

	t.Run("existing variables win", func(t *testing.T) {
		t.Setenv("UASNIFF_TEST_FILE_VALUE", "from_env")
		require.NoError(t, config.LoadEnv("testdata/.env.test"))

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "from_env", cfg.Value)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv("testdata/missing.env")
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}
