package wsUsecase

import (
	"context"

	"github.com/SkribbLoL/game-service/domain"
)

type RoomStore interface {
	Get(ctx context.Context, code string) (*domain.Room, error)
}

type Hub interface {
	RegisterClient(client *domain.Client)
}
