package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults with API key set", func(t *testing.T) {
		t.Setenv("API_KEY", "test-key")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "development", cfg.Environment)
		assert.Equal(t, "INFO", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "habitquest", cfg.DBName)
		assert.Equal(t, "dead_letter_events.jsonl", cfg.DeadLetterPath)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("explicit values override defaults", func(t *testing.T) {
		t.Setenv("API_KEY", "test-key")
		t.Setenv("PORT", "9090")
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("DB_HOST", "db.internal")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Port)
		assert.True(t, cfg.IsProduction())
		assert.Contains(t, cfg.GetDBConnString(), "db.internal")
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("API_KEY", "test-key")
		t.Setenv("PORT", "not-a-port")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("missing API key", func(t *testing.T) {
		t.Setenv("API_KEY", "")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestValidateEnv(t *testing.T) {
	setAll := func(t *testing.T) {
		t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
		t.Setenv("DB_USER", "postgres")
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_PORT", "5432")
		t.Setenv("DB_NAME", "habitquest")
		t.Setenv("API_KEY", "test-key")
	}

	t.Run("complete environment passes", func(t *testing.T) {
		setAll(t)
		assert.NoError(t, ValidateEnv())
	})

	t.Run("missing schema version", func(t *testing.T) {
		setAll(t)
		t.Setenv("ENV_SCHEMA_VERSION", "")
		assert.Error(t, ValidateEnv())
	})

	t.Run("schema version mismatch", func(t *testing.T) {
		setAll(t)
		t.Setenv("ENV_SCHEMA_VERSION", "0.9")
		assert.Error(t, ValidateEnv())
	})

	t.Run("missing variable is named", func(t *testing.T) {
		setAll(t)
		t.Setenv("DB_PASSWORD", "")
		err := ValidateEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_PASSWORD")
	})

	t.Run("example values warn", func(t *testing.T) {
		setAll(t)
		t.Setenv("API_KEY", "generate_with_openssl_rand_hex_32")
		warnings, err := ValidateEnvWithWarnings()
		require.NoError(t, err)
		assert.Len(t, warnings, 1)
	})
}
