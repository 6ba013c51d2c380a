package wsUsecase

import (
	"context"
	"errors"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SkribbLoL/game-service/domain"
)

const sendBufferSize = 256

// RoomConnectUseCase attaches an authenticated player connection to its
// room and serves it until the connection dies.
type RoomConnectUseCase interface {
	Execute(c *websocket.Conn, ctx context.Context, roomCode string, userID uuid.UUID)
}

type roomConnectUseCase struct {
	hub   Hub
	store RoomStore
}

func NewRoomConnectUseCase(hub Hub, store RoomStore) RoomConnectUseCase {
	return &roomConnectUseCase{hub: hub, store: store}
}

func (u *roomConnectUseCase) Execute(c *websocket.Conn, ctx context.Context, roomCode string, userID uuid.UUID) {
	room, err := u.store.Get(ctx, roomCode)
	if err != nil {
		msg := "Server error"
		if errors.Is(err, domain.ErrRoomNotFound) {
			msg = "Room not found"
		}
		sendErrorToClient(c, msg)
		c.Close()
		return
	}

	// Membership is established over HTTP before the socket opens.
	if room.FindUser(userID) == nil {
		sendErrorToClient(c, "You are not a member of this room")
		c.Close()
		return
	}

	// Written directly: the hub's write pump only starts on registration,
	// so the socket has no other writer yet. The snapshot never carries
	// the secret word or pending options.
	if err := c.WriteJSON(domain.Event{
		Type:    domain.EventRoomJoined,
		Content: domain.RoomJoinedPayload{Room: room.Snapshot()},
	}); err != nil {
		zap.L().Warn("Failed to deliver room snapshot",
			zap.String("room", roomCode), zap.String("user", userID.String()), zap.Error(err))
		c.Close()
		return
	}

	client := &domain.Client{
		ID:       userID,
		RoomCode: roomCode,
		Conn:     c,
		Send:     make(chan []byte, sendBufferSize),
		Done:     make(chan struct{}),
	}
	u.hub.RegisterClient(client)

	// Hold the fiber handler goroutine open until the hub releases the
	// session; the hub's pumps own the connection from here.
	<-client.Done
}

func sendErrorToClient(conn *websocket.Conn, msg string) {
	event := domain.Event{
		Type:    domain.EventError,
		Content: domain.ErrorPayload{Message: msg},
	}
	if err := conn.WriteJSON(event); err != nil {
		zap.L().Debug("Failed to send error to client", zap.Error(err))
	}
}
