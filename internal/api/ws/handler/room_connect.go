package wsHandler

import (
	"context"
	"fmt"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/SkribbLoL/game-service/domain"
	wsUsecase "github.com/SkribbLoL/game-service/internal/api/ws/usecase"
)

// RoomConnectHandler upgrades a player connection and hands it to the hub.
type RoomConnectHandler struct {
	usecase wsUsecase.RoomConnectUseCase
}

type RoomConnectRequest struct{}

func NewRoomConnectHandler(usecase wsUsecase.RoomConnectUseCase) *RoomConnectHandler {
	return &RoomConnectHandler{usecase: usecase}
}

func (h *RoomConnectHandler) HandleWS(c *websocket.Conn, ctx context.Context, req *RoomConnectRequest) {
	userID, err := uuid.Parse(c.Headers("X-User-Id"))
	if err != nil {
		h.sendErrorAndClose(c, "Invalid or missing X-User-Id header", fiber.StatusBadRequest)
		return
	}

	roomCode := c.Params("room_code")
	if roomCode == "" {
		h.sendErrorAndClose(c, "Missing room code", fiber.StatusBadRequest)
		return
	}

	h.usecase.Execute(c, ctx, roomCode, userID)
}

func (h *RoomConnectHandler) sendErrorAndClose(conn *websocket.Conn, msg string, code int) {
	event := domain.Event{
		Type:    domain.EventError,
		Content: domain.ErrorPayload{Message: fmt.Sprintf("%s (code %d)", msg, code)},
	}
	conn.WriteJSON(event)
	conn.Close()
}
