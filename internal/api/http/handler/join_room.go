package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/SkribbLoL/game-service/domain"
	httpUsecase "github.com/SkribbLoL/game-service/internal/api/http/usecase"
)

type JoinRoomRequest struct {
	RoomCode string `params:"room_code" validate:"required"`
	Nickname string `json:"nickname" validate:"required,min=1,max=24"`
}

type JoinRoomResponse struct {
	Room *domain.Room `json:"room"`
}

type JoinRoomHandler struct {
	usecase httpUsecase.JoinRoomUseCase
}

func NewJoinRoomHandler(usecase httpUsecase.JoinRoomUseCase) *JoinRoomHandler {
	return &JoinRoomHandler{usecase: usecase}
}

func (h *JoinRoomHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *JoinRoomRequest) (*JoinRoomResponse, int, error) {
	userID, status, err := requireUserID(fbrCtx)
	if err != nil {
		return nil, status, err
	}

	room, status, err := h.usecase.Execute(ctx, req.RoomCode, userID, req.Nickname)
	if err != nil {
		return nil, status, err
	}
	return &JoinRoomResponse{Room: room}, status, nil
}
