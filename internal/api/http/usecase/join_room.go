package httpUsecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/SkribbLoL/game-service/domain"
)

type JoinRoomUseCase interface {
	Execute(ctx context.Context, roomCode string, userID uuid.UUID, nickname string) (*domain.Room, int, error)
}

type joinRoomUseCase struct {
	store    RoomStore
	locker   RoomLocker
	notifier Notifier
}

func NewJoinRoomUseCase(store RoomStore, locker RoomLocker, notifier Notifier) JoinRoomUseCase {
	return &joinRoomUseCase{store: store, locker: locker, notifier: notifier}
}

func (u *joinRoomUseCase) Execute(ctx context.Context, roomCode string, userID uuid.UUID, nickname string) (*domain.Room, int, error) {
	unlock := u.locker.Lock(roomCode)
	defer unlock()

	room, err := u.store.Get(ctx, roomCode)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRoomNotFound):
			return nil, http.StatusNotFound, err
		default:
			return nil, http.StatusInternalServerError, err
		}
	}

	// Re-joining with the same id is a no-op, not a conflict.
	if room.FindUser(userID) != nil {
		return room.Snapshot(), http.StatusOK, nil
	}

	if len(room.Users) >= room.MaxPlayers {
		return nil, http.StatusConflict, domain.ErrRoomFull
	}
	if room.NicknameTaken(nickname) {
		return nil, http.StatusConflict, domain.ErrNicknameTaken
	}

	player := &domain.Player{
		ID:       userID,
		Nickname: nickname,
		JoinedAt: time.Now(),
	}
	room.Users = append(room.Users, player)

	if err := u.store.Set(ctx, room); err != nil {
		return nil, http.StatusInternalServerError, err
	}

	u.notifier.Emit(ctx, roomCode, domain.Event{Type: domain.EventUserJoined, Content: domain.UserJoinedPayload{
		User:  player,
		Users: room.Users,
	}})

	return room.Snapshot(), http.StatusCreated, nil
}
