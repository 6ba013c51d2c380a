package httpUsecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/SkribbLoL/game-service/domain"
)

type LeaveRoomUseCase interface {
	Execute(ctx context.Context, roomCode string, userID uuid.UUID) (int, error)
}

type leaveRoomUseCase struct {
	game GameActions
}

func NewLeaveRoomUseCase(game GameActions) LeaveRoomUseCase {
	return &leaveRoomUseCase{game: game}
}

func (u *leaveRoomUseCase) Execute(ctx context.Context, roomCode string, userID uuid.UUID) (int, error) {
	if err := u.game.RemovePlayer(ctx, roomCode, userID, "left"); err != nil {
		switch {
		case errors.Is(err, domain.ErrRoomNotFound):
			return http.StatusNotFound, err
		default:
			return http.StatusInternalServerError, err
		}
	}
	return http.StatusOK, nil
}
