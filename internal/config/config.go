package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/PauloHFS/pagelinks/internal/validator"
	"github.com/PauloHFS/pagelinks/internal/view"
	"github.com/joho/godotenv"
)

type Config struct {
	Port           string   `env:"PORT" validate:"required,numeric"`
	DatabaseURL    string   `env:"DATABASE_URL" validate:"required"`
	Env            string   `env:"APP_ENV" validate:"oneof=dev prod test"`
	MaxLinks       int      `env:"MAX_LINKS" validate:"gte=0,lte=1000"`
	PerPage        int      `env:"PER_PAGE" validate:"gte=1,lte=500"`
	LinkCacheSize  int      `env:"LINK_CACHE_SIZE" validate:"gte=1"`
	RateLimitRPS   float64  `env:"RATE_LIMIT_RPS" validate:"gt=0"`
	RateLimitBurst int      `env:"RATE_LIMIT_BURST" validate:"gte=1"`
	CORSOrigins    []string `env:"CORS_ALLOWED_ORIGINS"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "./pagelinks.db"),
		Env:         getEnv("APP_ENV", "dev"),
		CORSOrigins: getEnvList("CORS_ALLOWED_ORIGINS"),
	}

	var err error
	if cfg.MaxLinks, err = getEnvInt("MAX_LINKS", view.DefaultMaxLinks); err != nil {
		return nil, err
	}
	if cfg.PerPage, err = getEnvInt("PER_PAGE", 10); err != nil {
		return nil, err
	}
	if cfg.LinkCacheSize, err = getEnvInt("LINK_CACHE_SIZE", 1024); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getEnvInt("RATE_LIMIT_BURST", 10); err != nil {
		return nil, err
	}
	if cfg.RateLimitRPS, err = getEnvFloat("RATE_LIMIT_RPS", 5); err != nil {
		return nil, err
	}

	if result := validator.Result(validator.Validate(cfg)); !result.Valid {
		return nil, fmt.Errorf("configuração inválida: %s", result.Error())
	}

	return cfg, nil
}

func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvList(key string) []string {
	var out []string
	for v := range strings.SplitSeq(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func getEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return f, nil
}
