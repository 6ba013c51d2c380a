package initializer

import (
	"go.uber.org/zap"

	"github.com/SkribbLoL/game-service/config"
	"github.com/SkribbLoL/game-service/infra/kafka"
)

// InitMessaging builds the bus publisher, or returns nil when no brokers
// are configured. The bus is an optional capability; its absence only
// disables the side notifications, never in-room behavior.
func InitMessaging(appConfig config.Config) *kafka.Publisher {
	if len(appConfig.Kafka.Brokers) == 0 {
		zap.L().Info("Event bus disabled, no kafka brokers configured")
		return nil
	}

	zap.L().Info("Event bus enabled",
		zap.Strings("brokers", appConfig.Kafka.Brokers),
		zap.String("topic", appConfig.Kafka.Topic))
	return kafka.NewPublisher(appConfig.Kafka.Brokers, appConfig.Kafka.Topic)
}
