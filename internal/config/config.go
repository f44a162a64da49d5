package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	defaultAddr         = ":4000"
	defaultDatabaseURL  = "invtrack.db"
	defaultTemplatesDir = "web/templates"
)

type Config struct {
	AppEnv       string
	Addr         string
	DatabaseURL  string
	TemplatesDir string
}

func Load() (*Config, error) {
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}

	cfg := &Config{
		AppEnv:       strings.ToLower(appEnv),
		Addr:         strings.TrimSpace(getEnv("ADDR", defaultAddr)),
		DatabaseURL:  strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL)),
		TemplatesDir: strings.TrimSpace(getEnv("TEMPLATES_DIR", defaultTemplatesDir)),
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Addr == "" {
		return fmt.Errorf("ADDR must not be empty")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.TemplatesDir == "" {
		return fmt.Errorf("TEMPLATES_DIR must not be empty")
	}
	return nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
