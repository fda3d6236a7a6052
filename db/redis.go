package database

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisService holds the client of the backup account store.
type RedisService struct {
	Client *redis.Client
	logger *zap.Logger
}

func NewRedisService(ctx context.Context, addr, password string, db int, logger *zap.Logger) (*RedisService, error) {
	if addr == "" {
		return nil, errors.New("missing redis address")
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		PoolSize:     50,
		MinIdleConns: 5,
		MaxRetries:   3,
		DialTimeout:  800 * time.Millisecond,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrap(err, "failed to connect to redis")
	}

	return &RedisService{Client: client, logger: logger.Named("redis")}, nil
}

func (s *RedisService) Health(ctx context.Context) map[string]string {
	stats := make(map[string]string)
	stats["store"] = "redis"

	if err := s.Client.Ping(ctx).Err(); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("redis down: %v", err)
		return stats
	}

	poolStats := s.Client.PoolStats()
	stats["status"] = "up"
	stats["message"] = "It's healthy"
	stats["total_connections"] = fmt.Sprintf("%d", poolStats.TotalConns)
	stats["idle_connections"] = fmt.Sprintf("%d", poolStats.IdleConns)
	return stats
}

func (s *RedisService) Close() error {
	s.logger.Info("closing redis connection")
	return s.Client.Close()
}
