// Package redisclient loads Redis connection settings from the environment
// and constructs a ready-to-use client, mirroring pkg/database's
// LoadConfigFromEnv/NewClient split.
package redisclient

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds Redis connection settings.
type Config struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
}

// LoadConfigFromEnv loads Redis configuration from the environment with
// production-ready defaults.
func LoadConfigFromEnv() (Config, error) {
	db, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	poolSize, err := strconv.Atoi(getEnvOrDefault("REDIS_POOL_SIZE", "20"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid REDIS_POOL_SIZE: %w", err)
	}

	cfg := Config{
		Addr:         getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		Password:     os.Getenv("REDIS_PASSWORD"),
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		PoolSize:     poolSize,
	}
	if cfg.PoolSize < 1 {
		return Config{}, fmt.Errorf("REDIS_POOL_SIZE must be at least 1")
	}
	return cfg, nil
}

// NewClient creates and pings a new Redis client.
func NewClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolSize:     cfg.PoolSize,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return rdb, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
