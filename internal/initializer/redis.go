package initializer

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/SkribbLoL/game-service/config"
)

func InitRedis(appConfig config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", appConfig.Redis.Host, appConfig.Redis.Port),
		Password: appConfig.Redis.Password,
		DB:       appConfig.Redis.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		zap.L().Fatal("Failed to connect to redis", zap.Error(err))
	}

	return client
}
