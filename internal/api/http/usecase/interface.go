package httpUsecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/SkribbLoL/game-service/domain"
)

type RoomStore interface {
	Get(ctx context.Context, code string) (*domain.Room, error)
	Set(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, code string) error
}

// RoomLocker serializes room mutations against the game state machine so a
// join over HTTP cannot race a start-game over the socket.
type RoomLocker interface {
	Lock(code string) func()
}

// Notifier fans a committed transition out to the room (and the bus).
type Notifier interface {
	Emit(ctx context.Context, roomCode string, event domain.Event)
}

// GameActions is the slice of the state machine HTTP endpoints delegate to.
type GameActions interface {
	RemovePlayer(ctx context.Context, roomCode string, userID uuid.UUID, reason string) error
}
