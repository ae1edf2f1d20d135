package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Identity provider selector values.
const (
	ProviderLocal = "local"
	ProviderGIP   = "gip"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// Config aggregates application-wide configuration values.
type Config struct {
	DatabaseURL        string
	JWTSecret          string
	Port               string
	TokenTTL           time.Duration
	IdentityProvider   string
	GIPEndpoint        string
	GIPAPIKey          string
	PhoneRegion        string
	RateLimitProvision RateLimitConfig
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		JWTSecret:        getEnv("JWT_SECRET", "dev-secret"),
		Port:             getEnv("PORT", "8080"),
		TokenTTL:         parseDuration(getEnv("JWT_TTL", "24h")),
		IdentityProvider: getEnv("IDENTITY_PROVIDER", ProviderLocal),
		GIPEndpoint:      getEnv("GIP_ENDPOINT", ""),
		GIPAPIKey:        getEnv("GIP_API_KEY", ""),
		PhoneRegion:      getEnv("PHONE_REGION", "MX"),
	}

	switch cfg.IdentityProvider {
	case ProviderLocal:
	case ProviderGIP:
		if cfg.GIPAPIKey == "" {
			return nil, fmt.Errorf("GIP_API_KEY is required when IDENTITY_PROVIDER=%s", ProviderGIP)
		}
	default:
		return nil, fmt.Errorf("unsupported IDENTITY_PROVIDER value: %s", cfg.IdentityProvider)
	}

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_PROVISION", "30/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_PROVISION value: %w", err)
	}
	cfg.RateLimitProvision = rl

	return cfg, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(input string) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}
