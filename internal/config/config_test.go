package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/config"
)

type testConfig struct {
	Log      config.Log
	Postgres config.Postgres
	HTTP     config.HTTP
	Admin    config.Admin
	WhatsApp config.WhatsApp
	Session  config.Session
}

func TestNew(t *testing.T) {
	t.Run("Should apply defaults", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/shop")

		cfg, err := config.New[testConfig]()
		require.NoError(t, err)

		assert.Equal(t, uint32(5000), cfg.HTTP.Port)
		assert.True(t, cfg.HTTP.Metrics)
		assert.Equal(t, config.LogFormatJSON, cfg.Log.Format)
		assert.Equal(t, slog.LevelInfo, cfg.Log.Level)
		assert.Equal(t, int32(10), cfg.Postgres.MaxConns)
		assert.Equal(t, "studio_session", cfg.Session.CookieName)
		assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
		assert.Empty(t, cfg.Admin.Password)
		assert.Empty(t, cfg.WhatsApp.Number)
	})

	t.Run("Should fail without database url", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")

		_, err := config.New[testConfig]()
		assert.Error(t, err)
	})

	t.Run("Should not overwrite environment from env file", func(t *testing.T) {
		dir := t.TempDir()
		first := filepath.Join(dir, "first.env")
		second := filepath.Join(dir, "second.env")
		require.NoError(t, os.WriteFile(first, []byte("WHATSAPP_NUMBER=111\nPORT=6000\n"), 0o600))
		require.NoError(t, os.WriteFile(second, []byte("WHATSAPP_NUMBER=222\nADMIN_PASS=from-file\n"), 0o600))

		t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/shop")
		t.Setenv("PORT", "7000")
		// godotenv sets variables directly; register cleanup for the ones it may create.
		t.Setenv("WHATSAPP_NUMBER", "")
		require.NoError(t, os.Unsetenv("WHATSAPP_NUMBER"))
		t.Setenv("ADMIN_PASS", "")
		require.NoError(t, os.Unsetenv("ADMIN_PASS"))

		cfg, err := config.New[testConfig](first, second, filepath.Join(dir, "missing.env"))
		require.NoError(t, err)

		assert.Equal(t, uint32(7000), cfg.HTTP.Port)
		assert.Equal(t, "111", cfg.WhatsApp.Number)
		assert.Equal(t, "from-file", cfg.Admin.Password)
	})

	t.Run("Should parse log settings", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/shop")
		t.Setenv("LOG_FORMAT", "text")
		t.Setenv("LOG_LEVEL", "DEBUG")

		cfg, err := config.New[testConfig]()
		require.NoError(t, err)

		assert.Equal(t, config.LogFormatText, cfg.Log.Format)
		assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
	})
}

func TestLogFormat(t *testing.T) {
	var f config.LogFormat
	require.NoError(t, f.UnmarshalText([]byte(" json ")))
	assert.Equal(t, config.LogFormatJSON, f)

	require.NoError(t, f.UnmarshalText([]byte("Text")))
	assert.Equal(t, "TEXT", f.String())

	assert.Error(t, f.UnmarshalText([]byte("xml")))
	assert.Equal(t, "LogFormat(7)", config.LogFormat(7).String())
}

func TestOtel_ExportEnabled(t *testing.T) {
	assert.False(t, config.Otel{}.ExportEnabled())
	assert.False(t, config.Otel{CollectorURL: "  "}.ExportEnabled())
	assert.True(t, config.Otel{CollectorURL: "otel:4317"}.ExportEnabled())
}
