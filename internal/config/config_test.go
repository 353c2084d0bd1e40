package config

import (
	"errors"
	"testing"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every key Load reads so the host environment does not leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_ENV", "SERVER_PORT", "SERVER_HOST", "ASSET_STORE", "DB_PATH",
		"CORS_ALLOWED_ORIGINS", "ADVISORY_MODEL", "ADVISORY_TIMEOUT",
		"DISPLAY_CURRENCY", "DISPLAY_LOCALE", "SEED_DEMO_DATA",
		"MATURITY_WATCH_SCHEDULE", "MATURITY_WATCH_WINDOW_DAYS",
		"GEMINI_API_KEY", "GEMINI_API_KEY_ENCRYPTED", "FERNET_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost:5001", cfg.Server.Addr)
	assert.Equal(t, StoreMemory, cfg.Store.Kind)
	assert.Equal(t, ":memory:", cfg.Store.DBPath)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "gemini-2.5-flash", cfg.Advisory.Model)
	assert.Equal(t, 20*time.Second, cfg.Advisory.Timeout)
	assert.Empty(t, cfg.Advisory.APIKey)
	assert.Equal(t, "AOA", cfg.Display.Currency)
	assert.Equal(t, "pt-AO", cfg.Display.Locale)
	assert.True(t, cfg.Seed.DemoData)
	assert.Equal(t, "0 8 * * *", cfg.Scheduler.MaturitySchedule)
	assert.Equal(t, 30*24*time.Hour, cfg.Scheduler.MaturityWindow)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("ASSET_STORE", "SQLite")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://app.kwanzafolio.com , ")
	t.Setenv("ADVISORY_TIMEOUT", "5s")
	t.Setenv("SEED_DEMO_DATA", "false")
	t.Setenv("MATURITY_WATCH_WINDOW_DAYS", "7")
	t.Setenv("GEMINI_API_KEY", "plain-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Server.Addr)
	assert.Equal(t, StoreSQLite, cfg.Store.Kind)
	assert.Equal(t, []string{"https://app.kwanzafolio.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.Advisory.Timeout)
	assert.False(t, cfg.Seed.DemoData)
	assert.Equal(t, 7*24*time.Hour, cfg.Scheduler.MaturityWindow)
	assert.Equal(t, "plain-key", cfg.Advisory.APIKey)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"ASSET_STORE", "redis"},
		{"ADVISORY_TIMEOUT", "soon"},
		{"SEED_DEMO_DATA", "maybe"},
		{"MATURITY_WATCH_WINDOW_DAYS", "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_EncryptedAPIKey(t *testing.T) {
	var k fernet.Key
	require.NoError(t, k.Generate())
	tok, err := fernet.EncryptAndSign([]byte("secret-gemini-key"), &k)
	require.NoError(t, err)

	t.Run("decrypts with the right key", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GEMINI_API_KEY_ENCRYPTED", string(tok))
		t.Setenv("FERNET_KEY", k.Encode())

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "secret-gemini-key", cfg.Advisory.APIKey)
	})

	t.Run("wrong key is a load error", func(t *testing.T) {
		var other fernet.Key
		require.NoError(t, other.Generate())

		clearEnv(t)
		t.Setenv("GEMINI_API_KEY_ENCRYPTED", string(tok))
		t.Setenv("FERNET_KEY", other.Encode())

		_, err := Load()
		assert.True(t, errors.Is(err, ErrDecryptAPIKey))
	})

	t.Run("missing fernet key is a load error", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GEMINI_API_KEY_ENCRYPTED", string(tok))

		_, err := Load()
		assert.True(t, errors.Is(err, ErrDecryptAPIKey))
	})
}
