package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string

	// LogDir additionally writes session log files when set
	LogDir string

	// TrustedProxies may set X-Forwarded-For
	TrustedProxies  []string
	MaxRequestBytes int64

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// StorageBaseURL is the root of the hosted backend; public object URLs hang off it
	StorageBaseURL string
	S3Endpoint     string
	S3Region       string
	S3AccessKey    string
	S3SecretKey    string

	JWTSecret string

	// DiscordWebhookURL enables discovery announcements when set
	DiscordWebhookURL string

	CanvasMaxWidth     int
	CanvasMaxHeight    int
	ImageFetchMaxBytes int64
	ImageFetchTimeout  time.Duration

	MissionCacheSize int
	MissionCacheTTL  time.Duration
	UnlockMaxRetries int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		LogDir:      getEnv("LOG_DIR", ""),
		ServiceName: getEnv("SERVICE_NAME", "star-sailors"),
		Version:     getEnv("VERSION", "dev"),
		Environment: getEnv("ENVIRONMENT", "dev"),

		TrustedProxies:  splitList(getEnv("TRUSTED_PROXIES", "")),
		MaxRequestBytes: int64(getEnvAsInt("MAX_REQUEST_BYTES", DefaultMaxRequestBytes)),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "starsailors"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		StorageBaseURL: strings.TrimRight(getEnv("STORAGE_BASE_URL", ""), "/"),
		S3Endpoint:     getEnv("S3_ENDPOINT", ""),
		S3Region:       getEnv("S3_REGION", DefaultS3Region),
		S3AccessKey:    getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:    getEnv("S3_SECRET_KEY", ""),

		JWTSecret: getEnv("JWT_SECRET", ""),

		DiscordWebhookURL: getEnv("DISCORD_WEBHOOK_URL", ""),

		CanvasMaxWidth:     getEnvAsInt("CANVAS_MAX_WIDTH", DefaultCanvasMaxWidth),
		CanvasMaxHeight:    getEnvAsInt("CANVAS_MAX_HEIGHT", DefaultCanvasMaxHeight),
		ImageFetchMaxBytes: int64(getEnvAsInt("IMAGE_FETCH_MAX_BYTES", DefaultImageFetchMaxBytes)),
		ImageFetchTimeout:  getEnvAsDuration("IMAGE_FETCH_TIMEOUT", DefaultImageFetchTimeout),

		MissionCacheSize: getEnvAsInt("MISSION_CACHE_SIZE", DefaultMissionCacheSize),
		MissionCacheTTL:  getEnvAsDuration("MISSION_CACHE_TTL", DefaultMissionCacheTTL),
		UnlockMaxRetries: getEnvAsInt("UNLOCK_MAX_RETRIES", DefaultUnlockMaxRetries),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable must be set for security")
	}
	if cfg.StorageBaseURL == "" {
		return nil, fmt.Errorf("STORAGE_BASE_URL environment variable must be set")
	}

	// The S3 gateway is served by the same backend unless overridden
	if cfg.S3Endpoint == "" {
		cfg.S3Endpoint = cfg.StorageBaseURL + S3GatewayPath
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsDuration parses a Go duration string, falling back to the default when unset or malformed
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultValue
	}
	return d
}

// splitList parses a comma-separated variable, dropping empty entries
func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
