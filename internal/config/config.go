package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const PROD_STRING = "prod"

// MinRequestTimeout is the shortest per-request deadline accepted.
const MinRequestTimeout = 3 * time.Second

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	HTTPAddr       string
	DBDSN          string
	JWTSecret      string
	LogLevel       string
	RequestTimeout time.Duration

	// Redis is optional; when RedisAddr is empty bookings are serialized
	// in-process only.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SlotLockTTL   time.Duration

	// StoragePath is the directory uploaded files (the club logo) live in.
	StoragePath string
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to load .env file: %v", err)
	}
	return FromEnv()
}

// FromEnv reads the configuration from the process environment only.
func FromEnv() (*Config, error) {
	var err error
	cfg := &Config{}

	// Production origin (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// Application environment (default: dev)
	cfg.IsProduction = getEnv("APP_ENV", "dev") == PROD_STRING
	if cfg.IsProduction && cfg.ProdOrigins == "" {
		return nil, fmt.Errorf("PROD_ORIGINS is required in production")
	}

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	// Database DSN is required
	cfg.DBDSN = os.Getenv("DB_DSN")
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}

	// JWT secret is required for verifying tokens
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	// Log level (default: environment dependent)
	cfg.LogLevel = getEnv("LOG_LEVEL", "")

	cfg.RequestTimeout, err = getEnvAsDuration("REQUEST_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	if cfg.RequestTimeout < MinRequestTimeout {
		return nil, fmt.Errorf("REQUEST_TIMEOUT must be at least %s, got %s", MinRequestTimeout, cfg.RequestTimeout)
	}

	cfg.RedisAddr = getEnv("REDIS_ADDR", "")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.RedisDB, err = getEnvAsInt("REDIS_DB", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg.SlotLockTTL, err = getEnvAsDuration("SLOT_LOCK_TTL", 5*time.Second)
	if err != nil {
		return nil, err
	}
	if cfg.SlotLockTTL <= 0 {
		return nil, fmt.Errorf("SLOT_LOCK_TTL must be positive, got %s", cfg.SlotLockTTL)
	}

	cfg.StoragePath = getEnv("STORAGE_PATH", "./data/uploads")
	if cfg.StoragePath == "" {
		return nil, fmt.Errorf("STORAGE_PATH must not be empty")
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer.
// It returns the default value if the variable is not set.
// It returns an error if the variable is set but is not a valid integer.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid integer: %w", key, valStr, err)
	}

	return val, nil
}

// getEnvAsDuration parses values such as "10s" or "1m".
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := time.ParseDuration(valStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return val, nil
}
