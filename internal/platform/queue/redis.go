package queue

import (
	"context"
	"fmt"

	"jobtrack/internal/platform/config"
	"jobtrack/internal/platform/logger"

	"github.com/redis/go-redis/v9"
)

var RDB *redis.Client

// ConnectRedis dials Redis using the loaded configuration. The client backs
// the notification dispatch queue.
func ConnectRedis() error {
	RDB = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})

	if _, err := RDB.Ping(context.Background()).Result(); err != nil {
		return fmt.Errorf("connecting to redis: %w", err)
	}

	logger.Log.Infow("connected to Redis", "addr", config.AppConfig.RedisAddr)
	return nil
}

func CloseRedis() {
	if RDB != nil {
		RDB.Close()
		logger.Log.Info("redis connection closed")
	}
}
