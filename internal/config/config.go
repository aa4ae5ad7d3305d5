package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultHTTPAddr         = ":8080"
	defaultDatabaseURL      = "mediavault.db"
	defaultJWTSecret        = "change-me-jwt-secret"
	defaultJWTTTL           = "60m"
	defaultStorageDir       = "./data"
	defaultFFmpegBin        = "ffmpeg"
	defaultTranscodeTimeout = "5m"
)

// Config is built once in main and passed down; nothing mutates it afterwards.
type Config struct {
	AppEnv           string
	HTTPAddr         string
	DatabaseURL      string
	JWTSecret        string
	JWTTTL           time.Duration
	StorageDir       string
	FFmpegBin        string
	TranscodeTimeout time.Duration
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
		AppEnv:      strings.ToLower(appEnv),
		HTTPAddr:    strings.TrimSpace(getEnv("HTTP_ADDR", defaultHTTPAddr)),
		DatabaseURL: strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL)),
		JWTSecret:   strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),
		StorageDir:  strings.TrimSpace(getEnv("STORAGE_DIR", defaultStorageDir)),
		FFmpegBin:   strings.TrimSpace(getEnv("FFMPEG_BIN", defaultFFmpegBin)),
	}

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}
	cfg.TranscodeTimeout, err = parseDurationEnv("TRANSCODE_TIMEOUT", defaultTranscodeTimeout)
	if err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.TranscodeTimeout <= 0 {
		return fmt.Errorf("TRANSCODE_TIMEOUT must be > 0")
	}
	if cfg.StorageDir == "" {
		return fmt.Errorf("STORAGE_DIR must not be empty")
	}
	if isProdLike(cfg.AppEnv) {
		if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
	}
	return nil
}

func isProdLike(env string) bool {
	switch env {
	case "prod", "production", "release":
		return true
	}
	return false
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, raw, err)
	}
	return d, nil
}
