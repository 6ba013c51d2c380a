package initializer

import (
	"context"

	gameHub "github.com/SkribbLoL/game-service/internal/api/ws/hub"
)

func InitWebsocket(ctx context.Context) *gameHub.Hub {
	hub := gameHub.NewHub()
	go hub.Run(ctx)
	return hub
}
