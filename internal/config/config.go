// Package config loads the portal's settings from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// File store backends.
const (
	FileStoreSQLite = "sqlite"
	FileStoreS3     = "s3"
)

// Config holds every setting the server needs.
type Config struct {
	Port         string
	DatabasePath string
	JWTSecret    string
	CookieSecure bool
	LogLevel     slog.Level

	OTPTTL        time.Duration
	OTPBcryptCost int
	OTPPerMinute  float64
	OTPBurst      int

	SessionIdleTTL  time.Duration
	ClientCookieTTL time.Duration

	AllowedOrigins []string

	FileStore         string
	S3Bucket          string
	S3Region          string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
}

// Load reads the configuration, applying defaults and validating values.
func Load() (*Config, error) {
	cfg := &Config{
		Port:         envOrDefault("PORT", "8080"),
		DatabasePath: envOrDefault("DATABASE_PATH", "portal.db"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		// Secure unless explicitly disabled for local development.
		CookieSecure: os.Getenv("COOKIE_SECURE") != "false",
		FileStore:    envOrDefault("FILE_STORE", FileStoreSQLite),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters for HMAC-SHA256 security")
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(envOrDefault("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	var err error
	if cfg.OTPTTL, err = durationEnv("OTP_TTL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.SessionIdleTTL, err = durationEnv("SESSION_IDLE_TTL", 2*time.Hour); err != nil {
		return nil, err
	}
	if cfg.ClientCookieTTL, err = durationEnv("CLIENT_COOKIE_TTL", 720*time.Hour); err != nil {
		return nil, err
	}

	if cfg.OTPBcryptCost, err = intEnv("OTP_BCRYPT_COST", 10); err != nil {
		return nil, err
	}
	if cfg.OTPBcryptCost < 4 || cfg.OTPBcryptCost > 14 {
		return nil, fmt.Errorf("OTP_BCRYPT_COST must be between 4 and 14, got %d", cfg.OTPBcryptCost)
	}

	perMinute, err := intEnv("OTP_RATE_PER_MINUTE", 3)
	if err != nil {
		return nil, err
	}
	if perMinute < 1 {
		return nil, fmt.Errorf("OTP_RATE_PER_MINUTE must be positive, got %d", perMinute)
	}
	cfg.OTPPerMinute = float64(perMinute)

	if cfg.OTPBurst, err = intEnv("OTP_BURST", 3); err != nil {
		return nil, err
	}
	if cfg.OTPBurst < 1 {
		return nil, fmt.Errorf("OTP_BURST must be positive, got %d", cfg.OTPBurst)
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	}

	switch cfg.FileStore {
	case FileStoreSQLite:
	case FileStoreS3:
		cfg.S3Bucket = os.Getenv("S3_BUCKET")
		cfg.S3Region = os.Getenv("S3_REGION")
		cfg.S3Endpoint = os.Getenv("S3_ENDPOINT")
		cfg.S3AccessKeyID = os.Getenv("S3_ACCESS_KEY_ID")
		cfg.S3SecretAccessKey = os.Getenv("S3_SECRET_ACCESS_KEY")
		for name, v := range map[string]string{
			"S3_BUCKET": cfg.S3Bucket,
			"S3_REGION": cfg.S3Region,
		} {
			if v == "" {
				return nil, fmt.Errorf("%s environment variable is required when FILE_STORE=s3", name)
			}
		}
		// Static keys come as a pair; without them the default AWS chain applies.
		if (cfg.S3AccessKeyID == "") != (cfg.S3SecretAccessKey == "") {
			return nil, fmt.Errorf("S3_ACCESS_KEY_ID and S3_SECRET_ACCESS_KEY must be set together")
		}
	default:
		return nil, fmt.Errorf("FILE_STORE must be %q or %q, got %q", FileStoreSQLite, FileStoreS3, cfg.FileStore)
	}

	return cfg, nil
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func durationEnv(key string, defaultVal time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, d)
	}
	return d, nil
}

func intEnv(key string, defaultVal int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
