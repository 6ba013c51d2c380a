package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/SkribbLoL/game-service/domain"
	httpUsecase "github.com/SkribbLoL/game-service/internal/api/http/usecase"
)

type GetRoomRequest struct {
	RoomCode string `params:"room_code" validate:"required"`
}

type GetRoomResponse struct {
	Room *domain.Room `json:"room"`
}

type GetRoomHandler struct {
	usecase httpUsecase.GetRoomUseCase
}

func NewGetRoomHandler(usecase httpUsecase.GetRoomUseCase) *GetRoomHandler {
	return &GetRoomHandler{usecase: usecase}
}

func (h *GetRoomHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *GetRoomRequest) (*GetRoomResponse, int, error) {
	room, status, err := h.usecase.Execute(ctx, req.RoomCode)
	if err != nil {
		return nil, status, err
	}
	return &GetRoomResponse{Room: room}, status, nil
}
