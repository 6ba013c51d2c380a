package bootstrap

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/SkribbLoL/game-service/config"
	"github.com/SkribbLoL/game-service/infra/kafka"
	"github.com/SkribbLoL/game-service/infra/redisstore"
	"github.com/SkribbLoL/game-service/internal/api/ws/hub"
	"github.com/SkribbLoL/game-service/internal/game"
	"github.com/SkribbLoL/game-service/internal/initializer"
	"github.com/SkribbLoL/game-service/internal/words"
	"github.com/SkribbLoL/game-service/pkg/graceful"
)

type App struct {
	config      config.Config
	redisClient *redis.Client
	store       *redisstore.Store
	bus         *kafka.Publisher
	hub         *hub.Hub
	machine     *game.Machine
	fiberApp    *fiber.App
	cancel      context.CancelFunc
}

func NewApp(config config.Config) *App {
	app := &App{config: config}
	app.initDependencies()
	return app
}

func (a *App) initDependencies() {
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel

	a.redisClient = initializer.InitRedis(a.config)
	a.store = redisstore.New(a.redisClient, time.Duration(a.config.Game.RoomTTLSeconds)*time.Second)
	a.bus = initializer.InitMessaging(a.config)
	a.hub = initializer.InitWebsocket(ctx)

	// A nil *Publisher must not become a non-nil interface value.
	var bus game.BusPublisher
	if a.bus != nil {
		bus = a.bus
	}

	a.machine = game.NewMachine(a.store, words.NewBank(), a.hub, bus, game.Config{
		Rounds:          a.config.Game.Rounds,
		MaxPlayers:      a.config.Game.MaxPlayers,
		RoundDuration:   a.config.Game.RoundDuration,
		GuessEndDelay:   time.Duration(a.config.Game.GuessEndDelayMS) * time.Millisecond,
		WordOptionCount: a.config.Game.WordOptions,
	})
	a.hub.AttachGame(a.machine)

	httpHandlers := SetupHTTPHandlers(a.store, a.machine)
	wsHandlers := SetupWSHandlers(a.store, a.hub)
	a.fiberApp = SetupServer(a.config, httpHandlers, wsHandlers)
}

func (a *App) Start() {
	go func() {
		port := a.config.Server.Port
		if err := a.fiberApp.Listen(":" + port); err != nil {
			zap.L().Error("Failed to start server", zap.Error(err))
		}
	}()

	zap.L().Info("Server started", zap.String("port", a.config.Server.Port))

	graceful.WaitForShutdown(a.fiberApp, 5*time.Second, context.Background())

	a.cancel()
	if a.bus != nil {
		if err := a.bus.Close(); err != nil {
			zap.L().Error("Failed to close bus publisher", zap.Error(err))
		}
	}
	if err := a.redisClient.Close(); err != nil {
		zap.L().Error("Failed to close redis client", zap.Error(err))
	}
}
