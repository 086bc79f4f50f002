package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	defaultDataDir         = "."
	defaultServerPort      = "0.0.0.0:3000"
	defaultLogLevel        = "info"
	defaultAllowedOrigins  = "*"
	defaultRateLimitRPS    = 50
	defaultRateLimitBurst  = 100
	defaultFilePermissions = 0644
)

type Config struct {
	DataDir         string
	ServerPort      string
	LogLevel        string
	AllowedOrigins  []string
	RateLimitRPS    float64
	RateLimitBurst  int
	FilePermissions os.FileMode
}

func Load() (*Config, error) {
	cfg := &Config{
		DataDir:         getEnvOrDefault("DATA_DIR", defaultDataDir),
		ServerPort:      getEnvOrDefault("SERVER_PORT", defaultServerPort),
		LogLevel:        getEnvOrDefault("LOG_LEVEL", defaultLogLevel),
		AllowedOrigins:  splitList(getEnvOrDefault("ALLOWED_ORIGINS", defaultAllowedOrigins)),
		RateLimitRPS:    defaultRateLimitRPS,
		RateLimitBurst:  defaultRateLimitBurst,
		FilePermissions: defaultFilePermissions,
	}

	if err := cfg.loadRateLimit(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadRateLimit() error {
	if raw := os.Getenv("RATE_LIMIT_RPS"); raw != "" {
		rps, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_RPS value %q: %w", raw, err)
		}
		c.RateLimitRPS = rps
	}

	if raw := os.Getenv("RATE_LIMIT_BURST"); raw != "" {
		burst, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_BURST value %q: %w", raw, err)
		}
		c.RateLimitBurst = burst
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func (c *Config) CatalogPath() string {
	return c.DataDir + "/catalog.json"
}
