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

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "assets", cfg.AssetsDir)
	assert.Empty(t, cfg.FontDir)
	assert.Equal(t, time.Hour, cfg.RenderCacheTTL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATA_DIR", "/var/lib/thumbtalk")
	t.Setenv("RENDER_CACHE_TTL", "15m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, "/var/lib/thumbtalk", cfg.DataDir)
	assert.Equal(t, 15*time.Minute, cfg.RenderCacheTTL)
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("PORT", "70000")
	_, err := Load()
	assert.Error(t, err)
}
