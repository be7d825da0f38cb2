package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server  ServerConfig
	Access  AccessConfig
	Weather WeatherConfig
	Digest  DigestConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// AccessConfig holds the preview access gate settings.
type AccessConfig struct {
	Code string
}

// WeatherConfig contains settings for the OpenWeatherMap integration. APIKey
// may be empty; weather panels then show a configuration warning instead of
// data.
type WeatherConfig struct {
	APIKey   string
	BaseURL  string
	CacheTTL time.Duration
}

// DigestConfig holds scheduler-related settings.
type DigestConfig struct {
	CronSchedule string
	Timezone     string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cacheTTL, err := time.ParseDuration(getenvWithDefault("WEATHER_CACHE_TTL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid WEATHER_CACHE_TTL: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Access: AccessConfig{
			Code: getenvWithDefault("ACCESS_CODE", "PropHealth2025!"),
		},
		Weather: WeatherConfig{
			APIKey:   os.Getenv("OPENWEATHER_API_KEY"),
			BaseURL:  getenvWithDefault("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5"),
			CacheTTL: cacheTTL,
		},
		Digest: DigestConfig{
			CronSchedule: getenvWithDefault("DIGEST_CRON_SCHEDULE", "0 8 * * *"),
			Timezone:     getenvWithDefault("TIMEZONE", "America/New_York"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated. The
// weather API key is deliberately not required: its absence degrades the
// weather panel, nothing else.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.Access.Code == "" {
		return errors.New("ACCESS_CODE must not be empty")
	}

	if c.Weather.BaseURL == "" {
		return errors.New("OPENWEATHER_BASE_URL must not be empty")
	}

	if c.Weather.CacheTTL <= 0 {
		return errors.New("WEATHER_CACHE_TTL must be positive")
	}

	if c.Digest.CronSchedule == "" {
		return errors.New("DIGEST_CRON_SCHEDULE must be provided")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
