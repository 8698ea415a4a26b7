package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "./public", cfg.Source.Dir)
	assert.Empty(t, cfg.Source.BaseURL)
	assert.True(t, cfg.UsesDirectory())
	assert.Equal(t, 10*time.Second, cfg.Dashboard.FetchTimeout)
	assert.Equal(t, "dark", cfg.Dashboard.DefaultTheme)
	require.NoError(t, cfg.Validate())
}

func TestNew_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DASHBOARD_SOURCE_URL", "https://reports.example.com/techhelp")
	t.Setenv("DASHBOARD_FETCH_TIMEOUT", "2500ms")
	t.Setenv("DASHBOARD_DEFAULT_THEME", "light")
	t.Setenv("RATE_LIMIT_PER_SECOND", "5.5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.local, http://b.local")

	cfg := New()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.False(t, cfg.UsesDirectory())
	assert.Equal(t, 2500*time.Millisecond, cfg.Dashboard.FetchTimeout)
	assert.Equal(t, "light", cfg.Dashboard.DefaultTheme)
	assert.Equal(t, 5.5, cfg.RateLimit.PerSecond)
	assert.Equal(t, []string{"http://a.local", "http://b.local"}, cfg.CORS.AllowedOrigins)
	require.NoError(t, cfg.Validate())
}

func TestNew_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("DASHBOARD_FETCH_TIMEOUT", "soon")
	t.Setenv("RATE_LIMIT_BURST", "many")

	cfg := New()

	assert.Equal(t, 10*time.Second, cfg.Dashboard.FetchTimeout)
	assert.Equal(t, 40, cfg.RateLimit.Burst)
}

func TestValidate_Rejects(t *testing.T) {
	t.Setenv("DASHBOARD_DEFAULT_THEME", "sepia")
	assert.Error(t, New().Validate())

	t.Setenv("DASHBOARD_DEFAULT_THEME", "dark")
	t.Setenv("DASHBOARD_SOURCE_URL", "not a url")
	assert.Error(t, New().Validate())

	t.Setenv("DASHBOARD_SOURCE_URL", "")
	t.Setenv("DASHBOARD_SOURCE_DIR", "")
	assert.Error(t, New().Validate())

	t.Setenv("DASHBOARD_SOURCE_DIR", "./public")
	t.Setenv("DASHBOARD_FETCH_TIMEOUT", "0s")
	assert.Error(t, New().Validate())
}
