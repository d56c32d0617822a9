package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting. It is built once by Load and passed down.
type Config struct {
	Port    string
	GinMode string

	DBDriver string
	DBSource string

	SessionSecret []byte
	SessionTTL    time.Duration
	SecureCookies bool

	AdminUsername string
	AdminPassword string

	CORSOrigins []string

	// Requests per minute allowed per client on /login and /register.
	LoginRatePerMinute int
	LoginBurst         int

	ImageStore  string
	UploadDir   string
	S3Bucket    string
	S3Region    string
	S3PublicURL string

	LogLevel  string
	LogFormat string
}

const defaultSessionSecret = "restaurant_session_secret_change_me"

// Load reads an optional .env file and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("SESSION_TTL: %w", err)
	}
	rate, err := strconv.Atoi(getEnv("LOGIN_RATE_PER_MIN", "30"))
	if err != nil {
		return nil, fmt.Errorf("LOGIN_RATE_PER_MIN: %w", err)
	}
	burst, err := strconv.Atoi(getEnv("LOGIN_BURST", "10"))
	if err != nil {
		return nil, fmt.Errorf("LOGIN_BURST: %w", err)
	}

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		DBDriver:           getEnv("DB_DRIVER", "sqlite"),
		DBSource:           getEnv("DB_SOURCE", "restaurant.db"),
		SessionSecret:      []byte(getEnv("SESSION_SECRET", defaultSessionSecret)),
		SessionTTL:         ttl,
		SecureCookies:      getEnv("SECURE_COOKIES", "false") == "true",
		AdminUsername:      getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:      os.Getenv("ADMIN_PASSWORD"),
		CORSOrigins:        splitList(getEnv("CORS_ORIGINS", "http://localhost:8080")),
		LoginRatePerMinute: rate,
		LoginBurst:         burst,
		ImageStore:         getEnv("IMAGE_STORE", "local"),
		UploadDir:          getEnv("UPLOAD_DIR", "uploads"),
		S3Bucket:           os.Getenv("S3_BUCKET"),
		S3Region:           getEnv("S3_REGION", os.Getenv("AWS_REGION")),
		S3PublicURL:        os.Getenv("S3_PUBLIC_URL"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that would otherwise fail late at runtime.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("DB_DRIVER must be sqlite or postgres, got %q", c.DBDriver)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be debug, release or test, got %q", c.GinMode)
	}
	switch c.ImageStore {
	case "local":
	case "s3":
		if c.S3Bucket == "" {
			return errors.New("IMAGE_STORE=s3 requires S3_BUCKET")
		}
	default:
		return fmt.Errorf("IMAGE_STORE must be local or s3, got %q", c.ImageStore)
	}
	if c.AdminUsername == "" {
		return errors.New("ADMIN_USERNAME must not be empty")
	}
	if c.GinMode == "release" && string(c.SessionSecret) == defaultSessionSecret {
		return errors.New("SESSION_SECRET must be set in release mode")
	}
	if c.LoginRatePerMinute <= 0 || c.LoginBurst <= 0 {
		return errors.New("LOGIN_RATE_PER_MIN and LOGIN_BURST must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
