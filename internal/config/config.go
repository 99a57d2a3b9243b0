// Package config provides configuration management for DraftBot.
package config

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the application.
type Config struct {
	// Discord
	DiscordToken string

	// Redis
	RedisURL      string
	RedisKeyMains string

	// Strategy site (source of the per-hero tip documents)
	StrategyBaseURL string

	// Hero portrait CDN
	HeroIconURL string

	// Paths
	DataDir string

	// Health check server
	HealthAddr string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		// Discord
		DiscordToken: os.Getenv("DISCORD_TOKEN"),

		// Redis
		RedisURL:      os.Getenv("REDIS_URL"),
		RedisKeyMains: getEnvOrDefault("REDIS_KEY_MAINS", "draftbot:mains"),

		// Strategy site
		StrategyBaseURL: getEnvOrDefault("STRATEGY_BASE_URL", "https://howdoiplay.com"),

		// Hero portrait CDN
		HeroIconURL: getEnvOrDefault("HERO_ICON_URL",
			"https://cdn.cloudflare.steamstatic.com/apps/dota2/images/dota_react/heroes/%s.png"),

		// Paths
		DataDir: getEnvOrDefault("DATA_DIR", "data"),

		// Health check server
		HealthAddr: getEnvOrDefault("HEALTH_ADDR", ":8080"),
	}

	return cfg, nil
}

// Validate checks if all values required to run the bot are set.
// The -sync pipeline does not need a Discord token, so it skips this.
func (c *Config) Validate() error {
	var errs []string

	if c.DiscordToken == "" {
		errs = append(errs, "DISCORD_TOKEN is missing")
	}

	if len(errs) > 0 {
		log.Println("Config errors:")
		for _, e := range errs {
			log.Printf("  - %s", e)
		}
		return errors.New("configuration validation failed")
	}

	return nil
}

// getEnvOrDefault returns the environment variable value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
