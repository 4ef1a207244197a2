package database

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Pool settings applied when the environment does not override them. The
// fabric's write pattern is many small checkpoint upserts, so the pool
// leans toward connection reuse over size.
const (
	defaultMaxOpenConns    = 25
	defaultMaxIdleConns    = 10
	defaultConnMaxLifetime = time.Hour
	defaultConnMaxIdleTime = 15 * time.Minute
)

// LoadConfigFromEnv reads the DB_* environment variables into a validated
// Config.
func LoadConfigFromEnv() (Config, error) {
	cfg := Config{
		Host:     getEnvOrDefault("DB_HOST", "localhost"),
		User:     getEnvOrDefault("DB_USER", "alfred"),
		Password: os.Getenv("DB_PASSWORD"),
		Database: getEnvOrDefault("DB_NAME", "alfred"),
		SSLMode:  getEnvOrDefault("DB_SSLMODE", "disable"),
	}

	var err error
	if cfg.Port, err = intEnv("DB_PORT", 5432); err != nil {
		return Config{}, err
	}
	if cfg.MaxOpenConns, err = intEnv("DB_MAX_OPEN_CONNS", defaultMaxOpenConns); err != nil {
		return Config{}, err
	}
	if cfg.MaxIdleConns, err = intEnv("DB_MAX_IDLE_CONNS", defaultMaxIdleConns); err != nil {
		return Config{}, err
	}
	if cfg.ConnMaxLifetime, err = durationEnv("DB_CONN_MAX_LIFETIME", defaultConnMaxLifetime); err != nil {
		return Config{}, err
	}
	if cfg.ConnMaxIdleTime, err = durationEnv("DB_CONN_MAX_IDLE_TIME", defaultConnMaxIdleTime); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN renders the config as a libpq-style connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// Validate rejects configurations the pool cannot run with.
func (c Config) Validate() error {
	if c.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.MaxOpenConns < 1 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be at least 1")
	}
	if c.MaxIdleConns < 0 {
		return fmt.Errorf("DB_MAX_IDLE_CONNS cannot be negative")
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		return fmt.Errorf("DB_MAX_IDLE_CONNS (%d) cannot exceed DB_MAX_OPEN_CONNS (%d)",
			c.MaxIdleConns, c.MaxOpenConns)
	}
	return nil
}

func intEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
