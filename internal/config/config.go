// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Data    DataConfig
	Search  SearchConfig
	Logging LoggingConfig
	App     AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// DataConfig holds flight dataset settings.
type DataConfig struct {
	// FlightsFile is the path to the JSON dataset holding airports and flights
	FlightsFile string `env:"FLIGHTS_FILE" envDefault:"data/flights.json"`
}

// SearchConfig holds itinerary search engine settings.
type SearchConfig struct {
	// MaxSegments bounds path enumeration depth (1-3)
	MaxSegments int `env:"SEARCH_MAX_SEGMENTS" envDefault:"3"`

	// MinDomesticLayover is the minimum gap for a domestic connection
	MinDomesticLayover time.Duration `env:"LAYOVER_MIN_DOMESTIC" envDefault:"45m"`

	// MinInternationalLayover is the minimum gap for an international connection
	MinInternationalLayover time.Duration `env:"LAYOVER_MIN_INTERNATIONAL" envDefault:"90m"`

	// MaxLayover is the maximum gap for any connection
	MaxLayover time.Duration `env:"LAYOVER_MAX" envDefault:"6h"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	if cfg.Data.FlightsFile == "" {
		return fmt.Errorf("FLIGHTS_FILE must not be empty")
	}

	if cfg.Search.MaxSegments < 1 || cfg.Search.MaxSegments > 3 {
		return fmt.Errorf("SEARCH_MAX_SEGMENTS must be between 1 and 3, got %d", cfg.Search.MaxSegments)
	}
	if cfg.Search.MinDomesticLayover <= 0 {
		return fmt.Errorf("LAYOVER_MIN_DOMESTIC must be positive")
	}
	if cfg.Search.MinInternationalLayover <= 0 {
		return fmt.Errorf("LAYOVER_MIN_INTERNATIONAL must be positive")
	}
	if cfg.Search.MaxLayover <= cfg.Search.MinDomesticLayover {
		return fmt.Errorf("LAYOVER_MAX (%s) must exceed LAYOVER_MIN_DOMESTIC (%s)",
			cfg.Search.MaxLayover, cfg.Search.MinDomesticLayover)
	}
	if cfg.Search.MaxLayover <= cfg.Search.MinInternationalLayover {
		return fmt.Errorf("LAYOVER_MAX (%s) must exceed LAYOVER_MIN_INTERNATIONAL (%s)",
			cfg.Search.MaxLayover, cfg.Search.MinInternationalLayover)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
