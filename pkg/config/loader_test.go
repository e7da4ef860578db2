package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apikit/pkg/config"
)

type serverConfig struct {
	Addr    string        `env:"TEST_SERVER_ADDR" envDefault:":8080"`
	Timeout time.Duration `env:"TEST_SERVER_TIMEOUT" envDefault:"5s"`
	Tags    []string      `env:"TEST_SERVER_TAGS" envSeparator:","`
}

type requiredConfig struct {
	Secret string `env:"TEST_REQUIRED_SECRET,required"`
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("TEST_SERVER_ADDR")
	os.Unsetenv("TEST_SERVER_TIMEOUT")
	config.ResetCache()

	var cfg serverConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TEST_SERVER_ADDR", ":9090")
	t.Setenv("TEST_SERVER_TIMEOUT", "30s")
	t.Setenv("TEST_SERVER_TAGS", "a,b,c")
	config.ResetCache()

	var cfg serverConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Tags)
}

func TestLoad_CachesPerType(t *testing.T) {
	t.Setenv("TEST_SERVER_ADDR", ":1111")
	config.ResetCache()

	var first serverConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, ":1111", first.Addr)

	// Later environment changes are invisible without a forced reload.
	t.Setenv("TEST_SERVER_ADDR", ":2222")

	var second serverConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, ":1111", second.Addr)

	var third serverConfig
	require.NoError(t, config.ForceReloadConfig(&third))
	assert.Equal(t, ":2222", third.Addr)
}

func TestLoad_RequiredMissing(t *testing.T) {
	os.Unsetenv("TEST_REQUIRED_SECRET")
	config.ResetCache()

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	assert.ErrorIs(t, config.Load[serverConfig](nil), config.ErrNilPointer)
}

func TestMustLoad_PanicsOnFailure(t *testing.T) {
	os.Unsetenv("TEST_REQUIRED_SECRET")
	config.ResetCache()

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()

	base := filepath.Join(dir, "base.env")
	require.NoError(t, os.WriteFile(base, []byte("TEST_ENVFILE_A=base\nTEST_ENVFILE_B=base\n"), 0o644))

	override := filepath.Join(dir, "override.env")
	require.NoError(t, os.WriteFile(override, []byte("TEST_ENVFILE_B=override\n"), 0o644))

	os.Unsetenv("TEST_ENVFILE_A")
	os.Unsetenv("TEST_ENVFILE_B")
	t.Cleanup(func() {
		os.Unsetenv("TEST_ENVFILE_A")
		os.Unsetenv("TEST_ENVFILE_B")
	})

	require.NoError(t, config.LoadEnv(base, override))

	assert.Equal(t, "base", os.Getenv("TEST_ENVFILE_A"))
	assert.Equal(t, "override", os.Getenv("TEST_ENVFILE_B"), "later files take precedence")
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv(filepath.Join(t.TempDir(), "absent.env"))
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)

	assert.Panics(t, func() {
		config.MustLoadEnv(filepath.Join(t.TempDir(), "absent.env"))
	})
}
