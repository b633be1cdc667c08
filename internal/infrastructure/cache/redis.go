package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vitrine-app/vitrine/internal/shared/config"
	appLogger "github.com/vitrine-app/vitrine/internal/shared/logger"
)

var (
	client   *redis.Client
	clientMu sync.RWMutex
)

// Init establishes the shared redis connection.
func Init(cfg *config.RedisConfig) error {
	c := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	clientMu.Lock()
	client = c
	clientMu.Unlock()

	appLogger.Info("redis connection established", "addr", c.Options().Addr)
	return nil
}

// Get returns the shared redis client; nil when Init has not run.
func Get() *redis.Client {
	clientMu.RLock()
	defer clientMu.RUnlock()
	return client
}

// Close closes the shared redis connection.
func Close() error {
	clientMu.RLock()
	c := client
	clientMu.RUnlock()

	if c == nil {
		return nil
	}
	return c.Close()
}
