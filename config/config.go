package config

import (
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Server ServerConfig `mapstructure:"server"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Kafka  KafkaConfig  `mapstructure:"kafka"`
	Game   GameConfig   `mapstructure:"game"`
}

type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Host string `mapstructure:"host"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// KafkaConfig configures the optional inter-service event bus. An empty
// broker list disables publishing entirely.
type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

type GameConfig struct {
	RoomTTLSeconds  int `mapstructure:"roomttlseconds"`
	Rounds          int `mapstructure:"rounds"`
	MaxPlayers      int `mapstructure:"maxplayers"`
	RoundDuration   int `mapstructure:"roundduration"`
	GuessEndDelayMS int `mapstructure:"guessenddelayms"`
	WordOptions     int `mapstructure:"wordoptions"`
}

func Read() Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/app")
	viper.AddConfigPath("/")

	// Defaults
	viper.SetDefault("app.name", "game-service")
	viper.SetDefault("server.port", "8083")
	viper.SetDefault("server.host", "0.0.0.0")

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", "6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("kafka.brokers", []string{})
	viper.SetDefault("kafka.topic", "game-events")

	viper.SetDefault("game.roomttlseconds", 3600)
	viper.SetDefault("game.rounds", 3)
	viper.SetDefault("game.maxplayers", 10)
	viper.SetDefault("game.roundduration", 60)
	viper.SetDefault("game.guessenddelayms", 3000)
	viper.SetDefault("game.wordoptions", 3)

	// ENV overrides with prefix GAME_ and dot-to-underscore replacement
	viper.SetEnvPrefix("GAME")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		zap.L().Warn("Failed to read configuration file", zap.Error(err))
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		zap.L().Error("Configuration could not be parsed", zap.Error(err))
	}

	return config
}
