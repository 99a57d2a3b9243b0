package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DISCORD_TOKEN", "REDIS_URL", "REDIS_KEY_MAINS",
		"STRATEGY_BASE_URL", "HERO_ICON_URL", "DATA_DIR", "HEALTH_ADDR",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "draftbot:mains", cfg.RedisKeyMains)
	assert.Equal(t, "https://howdoiplay.com", cfg.StrategyBaseURL)
	assert.Equal(t, ":8080", cfg.HealthAddr)
	assert.Contains(t, cfg.HeroIconURL, "%s")
	assert.Empty(t, cfg.DiscordToken)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATA_DIR", "/srv/draftbot/data")
	t.Setenv("STRATEGY_BASE_URL", "http://localhost:9999")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/draftbot/data", cfg.DataDir)
	assert.Equal(t, "http://localhost:9999", cfg.StrategyBaseURL)
}

func TestValidate(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())

	cfg.DiscordToken = "token"
	assert.NoError(t, cfg.Validate())
}

