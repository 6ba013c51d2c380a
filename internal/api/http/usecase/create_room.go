package httpUsecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	gonanoid "github.com/jaevor/go-nanoid"
	"go.uber.org/zap"

	"github.com/SkribbLoL/game-service/domain"
)

// Room codes are short and human-typeable; the alphabet drops easily
// confused characters (0/O, 1/I/L).
const (
	roomCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
	roomCodeLength   = 6
	codeAttempts     = 5
)

type CreateRoomUseCase interface {
	Execute(ctx context.Context, userID uuid.UUID, nickname string) (*domain.Room, int, error)
}

type createRoomUseCase struct {
	store   RoomStore
	locker  RoomLocker
	newCode func() string
}

func NewCreateRoomUseCase(store RoomStore, locker RoomLocker) CreateRoomUseCase {
	newCode, err := gonanoid.CustomASCII(roomCodeAlphabet, roomCodeLength)
	if err != nil {
		// Static alphabet and length; only a programming error gets here.
		panic(fmt.Sprintf("room code generator: %v", err))
	}
	return &createRoomUseCase{store: store, locker: locker, newCode: newCode}
}

func (u *createRoomUseCase) Execute(ctx context.Context, userID uuid.UUID, nickname string) (*domain.Room, int, error) {
	creator := &domain.Player{
		ID:       userID,
		Nickname: nickname,
		JoinedAt: time.Now(),
	}

	for attempt := 0; attempt < codeAttempts; attempt++ {
		code := u.newCode()

		unlock := u.locker.Lock(code)
		_, err := u.store.Get(ctx, code)
		if err == nil {
			// Code collision, roll again.
			unlock()
			continue
		}
		if !errors.Is(err, domain.ErrRoomNotFound) {
			unlock()
			return nil, http.StatusInternalServerError, err
		}

		room := domain.NewRoom(code, creator)
		if err := u.store.Set(ctx, room); err != nil {
			unlock()
			return nil, http.StatusInternalServerError, err
		}
		unlock()

		zap.L().Info("Room created",
			zap.String("room", code), zap.String("host", userID.String()))
		return room, http.StatusCreated, nil
	}

	return nil, http.StatusInternalServerError, fmt.Errorf("could not allocate a free room code")
}
