// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// RateLimitConfig provides settings for the per-IP rate limiter.
type RateLimitConfig interface {
	GetRateLimitRPS() float64
	GetRateLimitBurst() int
}

// PlanConfig provides settings for the numbering plan store.
type PlanConfig interface {
	// GetPlanDataPath returns an optional path to a numbering plan YAML file
	// that overrides the embedded plan. Empty means use the embedded data.
	GetPlanDataPath() string
}

// NumberingConfig provides settings for the numbering module.
type NumberingConfig interface {
	// IsCarrierHintsEnabled reports whether the cosmetic estimated-carrier
	// decoration is attached to validation responses. Off by default.
	IsCarrierHintsEnabled() bool
}

// Config holds the application configuration loaded from the environment.
type Config struct {
	Env            string
	HTTPAddr       string
	CORSAllowAll   bool
	CORSOrigins    []string
	CORSAllowCreds bool
	RateLimitRPS   float64
	RateLimitBurst int
	PlanDataPath   string
	CarrierHints   bool
}

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// RateLimitConfig implementation
func (c *Config) GetRateLimitRPS() float64 { return c.RateLimitRPS }
func (c *Config) GetRateLimitBurst() int   { return c.RateLimitBurst }

// PlanConfig implementation
func (c *Config) GetPlanDataPath() string { return c.PlanDataPath }

// NumberingConfig implementation
func (c *Config) IsCarrierHintsEnabled() bool { return c.CarrierHints }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	rps, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "25"), 64)
	if err != nil || rps <= 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS: %q", getEnv("RATE_LIMIT_RPS", "25"))
	}
	burst, err := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "50"))
	if err != nil || burst <= 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BURST: %q", getEnv("RATE_LIMIT_BURST", "50"))
	}

	cfg := &Config{
		Env:            getEnv("APP_ENV", "development"),
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:   corsAllowAll,
		CORSOrigins:    corsOrigins,
		CORSAllowCreds: strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		RateLimitRPS:   rps,
		RateLimitBurst: burst,
		PlanDataPath:   getEnv("PLAN_DATA_PATH", ""),
		CarrierHints:   strings.EqualFold(getEnv("CARRIER_HINTS_ENABLED", "false"), "true"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
