package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string
	AppURL      string
	StaticDir   string
	// ContentFile overrides the embedded content tables when set
	ContentFile string
	// AssetVersioner selects the cache-busting token source: "clock" or "uuid"
	AssetVersioner          string
	MetricsEnabled          bool
	GracefulShutdownTimeout time.Duration
	AllowedOrigins          []string
	ChromePath              string
	// Cloudflare R2 Storage
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicURL       string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:              getEnv("SERVER_PORT", "8080"),
		Environment:             getEnv("ENVIRONMENT", "development"),
		AppURL:                  strings.TrimSuffix(getEnv("APP_URL", "http://localhost:8080"), "/"),
		StaticDir:               getEnv("STATIC_DIR", "static"),
		ContentFile:             getEnv("CONTENT_FILE", ""),
		AssetVersioner:          getEnv("ASSET_VERSIONER", "clock"),
		MetricsEnabled:          getEnvBool("METRICS_ENABLED", true),
		GracefulShutdownTimeout: getEnvDuration("GRACEFUL_SHUTDOWN_TIMEOUT", 10*time.Second),
		AllowedOrigins:          strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		ChromePath:              getEnv("CHROME_PATH", ""),
		R2AccountID:             getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:           getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey:       getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2BucketName:            getEnv("R2_BUCKET_NAME", ""),
		R2PublicURL:             getEnv("R2_PUBLIC_URL", ""),
	}
}

// IsProduction reports whether the site runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// R2Enabled reports whether every R2 credential is present
func (c *Config) R2Enabled() bool {
	return c.R2AccountID != "" && c.R2AccessKeyID != "" && c.R2SecretAccessKey != "" && c.R2BucketName != ""
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		if defaultValue != "" {
			log.Printf("Using default value for %s: %s", key, defaultValue)
		}
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("[WARNING] Invalid duration for %s (%q), using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
