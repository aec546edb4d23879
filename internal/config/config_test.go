package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, time.UTC, cfg.App.Location)
	assert.Empty(t, cfg.App.CORSAllowedOrigins)
	assert.Equal(t, "convoy", cfg.Database.Name)
	assert.Equal(t, "./logs/app.log", cfg.Log.File)
	assert.True(t, cfg.Log.Compress)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_TIMEZONE", "Africa/Nairobi")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://ops.example, http://localhost:5173,")
	t.Setenv("APP_READ_TIMEOUT", "3s")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")
	t.Setenv("LOG_COMPRESS", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "Africa/Nairobi", cfg.App.Location.String())
	assert.Equal(t, []string{"https://ops.example", "http://localhost:5173"}, cfg.App.CORSAllowedOrigins)
	assert.Equal(t, 3*time.Second, cfg.App.ReadTimeout)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.False(t, cfg.Log.Compress)
	assert.Contains(t, cfg.Database.DSN(), "host=db.internal")
	assert.Contains(t, cfg.Database.DSN(), "dbname=convoy")
}

func TestLoadRejectsUnknownTimezone(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "Mars/Olympus_Mons")

	_, err := Load()
	assert.Error(t, err)
}

func TestNowIsUTCMicroseconds(t *testing.T) {
	now := Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond()%1000)
}
