package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fezwebco/getintouch/pkg/config"
)

type defaultsConfig struct {
	Name    string        `env:"CFG_TEST_NAME" envDefault:"default_value"`
	Port    int           `env:"CFG_TEST_PORT" envDefault:"42"`
	Enabled bool          `env:"CFG_TEST_ENABLED" envDefault:"true"`
	Timeout time.Duration `env:"CFG_TEST_TIMEOUT" envDefault:"5s"`
}

type requiredConfig struct {
	Value string `env:"CFG_TEST_REQUIRED,required"`
}

type validatedConfig struct {
	Email    string `env:"CFG_TEST_EMAIL" validate:"required,email"`
	Provider string `env:"CFG_TEST_PROVIDER" envDefault:"dev" validate:"oneof=sendgrid postmark dev"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "default_value", cfg.Name)
	assert.Equal(t, 42, cfg.Port)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CFG_TEST_NAME", "custom")
	t.Setenv("CFG_TEST_PORT", "100")
	t.Setenv("CFG_TEST_ENABLED", "false")
	t.Setenv("CFG_TEST_TIMEOUT", "250ms")

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "custom", cfg.Name)
	assert.Equal(t, 100, cfg.Port)
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
}

func TestLoad_ParseErrors(t *testing.T) {
	t.Run("missing required variable", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("malformed value", func(t *testing.T) {
		t.Setenv("CFG_TEST_PORT", "not-a-number")
		var cfg defaultsConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestLoad_Validation(t *testing.T) {
	t.Run("valid values", func(t *testing.T) {
		t.Setenv("CFG_TEST_EMAIL", "owner@example.com")
		var cfg validatedConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "dev", cfg.Provider)
	})

	t.Run("invalid email", func(t *testing.T) {
		t.Setenv("CFG_TEST_EMAIL", "not-an-email")
		var cfg validatedConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "Email")
	})

	t.Run("value outside allowed set", func(t *testing.T) {
		t.Setenv("CFG_TEST_EMAIL", "owner@example.com")
		t.Setenv("CFG_TEST_PROVIDER", "carrier-pigeon")
		var cfg validatedConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "Provider")
	})
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *defaultsConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("loads values without overriding", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "test.env")
		require.NoError(t, os.WriteFile(path, []byte("CFG_TEST_FILE_ONLY=from-file\nCFG_TEST_FILE_SET=from-file\n"), 0o600))

		t.Setenv("CFG_TEST_FILE_SET", "from-process")
		// Registered so t.Setenv restores the unset state afterwards.
		t.Setenv("CFG_TEST_FILE_ONLY", "")
		require.NoError(t, os.Unsetenv("CFG_TEST_FILE_ONLY"))

		require.NoError(t, config.LoadEnvFile(path))
		assert.Equal(t, "from-file", os.Getenv("CFG_TEST_FILE_ONLY"))
		assert.Equal(t, "from-process", os.Getenv("CFG_TEST_FILE_SET"))
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnvFile(filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorIs(t, err, config.ErrEnvFile)
	})

	t.Run("no paths is a no-op", func(t *testing.T) {
		assert.NoError(t, config.LoadEnvFile())
	})
}
