package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the service configuration, read from the environment.
type Config struct {
	AppEnv       string
	Port         string
	LogoPath     string
	SpritePath   string
	SharePageURL string

	MaxPhotoBytes  int64
	MaxPhotoPixels int64
	FetchTimeout   time.Duration

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
}

// Load reads .env when present, then the environment, and applies defaults.
func Load() (*Config, error) {
	// a missing .env is fine
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "8080"),
		LogoPath:         getEnv("LOGO_PATH", "public/vodun-days.png"),
		SpritePath:       os.Getenv("SPRITE_PATH"),
		SharePageURL:     getEnv("SHARE_PAGE_URL", "http://localhost:8080/"),
		MaxPhotoBytes:    int64(getEnvInt("MAX_PHOTO_BYTES", 10<<20)),
		MaxPhotoPixels:   int64(getEnvInt("MAX_PHOTO_PIXELS", 40_000_000)),
		FetchTimeout:     time.Second * time.Duration(getEnvInt("FETCH_TIMEOUT_SECONDS", 12)),
		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
	}
	if _, ok := os.LookupEnv("SPRITE_PATH"); !ok {
		cfg.SpritePath = "public/cowrie.png"
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.LogoPath == "" {
		return fmt.Errorf("LOGO_PATH is required")
	}
	if c.MaxPhotoBytes <= 0 {
		return fmt.Errorf("MAX_PHOTO_BYTES must be positive, got %d", c.MaxPhotoBytes)
	}
	if c.MaxPhotoPixels <= 0 {
		return fmt.Errorf("MAX_PHOTO_PIXELS must be positive, got %d", c.MaxPhotoPixels)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

// Development reports whether the service runs with development defaults.
func (c *Config) Development() bool {
	return c.AppEnv == "development"
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
