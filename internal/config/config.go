package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerAddress string

	// Model collaborator (listing drafts + image search keywords).
	AnthropicBaseURL string
	AnthropicAPIKey  string
	AnthropicModel   string
	ModelTimeout     time.Duration

	// Simulated counterparty timing.
	SellerReplyDelay     time.Duration
	OfferResolutionDelay time.Duration

	// Browsing defaults.
	DefaultRadiusMiles float64

	SeedListings bool
}

func Load() *Config {
	return &Config{
		ServerAddress:        getEnv("SERVER_ADDRESS", ":8080"),
		AnthropicBaseURL:     getEnv("ANTHROPIC_BASE_URL", "https://api.anthropic.com"),
		AnthropicAPIKey:      getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicModel:       getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),
		ModelTimeout:         getDurationEnv("MODEL_TIMEOUT", 60*time.Second),
		SellerReplyDelay:     getDurationEnv("SELLER_REPLY_DELAY", 2*time.Second),
		OfferResolutionDelay: getDurationEnv("OFFER_RESOLUTION_DELAY", 3*time.Second),
		DefaultRadiusMiles:   25,
		SeedListings:         getBoolEnv("SEED_LISTINGS", true),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
