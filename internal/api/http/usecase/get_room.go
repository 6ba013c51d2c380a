package httpUsecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/SkribbLoL/game-service/domain"
)

type GetRoomUseCase interface {
	Execute(ctx context.Context, roomCode string) (*domain.Room, int, error)
}

type getRoomUseCase struct {
	store RoomStore
}

func NewGetRoomUseCase(store RoomStore) GetRoomUseCase {
	return &getRoomUseCase{store: store}
}

func (u *getRoomUseCase) Execute(ctx context.Context, roomCode string) (*domain.Room, int, error) {
	room, err := u.store.Get(ctx, roomCode)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRoomNotFound):
			return nil, http.StatusNotFound, err
		default:
			return nil, http.StatusInternalServerError, err
		}
	}
	return room.Snapshot(), http.StatusOK, nil
}
