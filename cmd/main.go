package main

import (
	"go.uber.org/zap"

	"github.com/SkribbLoL/game-service/config"
	"github.com/SkribbLoL/game-service/internal/bootstrap"
	_ "github.com/SkribbLoL/game-service/log"
)

func main() {
	appConfig := config.Read()
	defer zap.L().Sync()
	zap.L().Info("app starting...", zap.String("app name", appConfig.App.Name))

	app := bootstrap.NewApp(appConfig)

	app.Start()
}
