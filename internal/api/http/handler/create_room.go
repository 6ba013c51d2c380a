package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/SkribbLoL/game-service/domain"
	httpUsecase "github.com/SkribbLoL/game-service/internal/api/http/usecase"
)

type CreateRoomRequest struct {
	Nickname string `json:"nickname" validate:"required,min=1,max=24"`
}

type CreateRoomResponse struct {
	Room *domain.Room `json:"room"`
}

type CreateRoomHandler struct {
	usecase httpUsecase.CreateRoomUseCase
}

func NewCreateRoomHandler(usecase httpUsecase.CreateRoomUseCase) *CreateRoomHandler {
	return &CreateRoomHandler{usecase: usecase}
}

func (h *CreateRoomHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *CreateRoomRequest) (*CreateRoomResponse, int, error) {
	userID, status, err := requireUserID(fbrCtx)
	if err != nil {
		return nil, status, err
	}

	room, status, err := h.usecase.Execute(ctx, userID, req.Nickname)
	if err != nil {
		return nil, status, err
	}
	return &CreateRoomResponse{Room: room}, status, nil
}

// requireUserID pulls the caller identity the gateway injects.
func requireUserID(fbrCtx *fiber.Ctx) (uuid.UUID, int, error) {
	raw := fbrCtx.Get("X-User-Id")
	if raw == "" {
		return uuid.Nil, fiber.StatusUnauthorized, domain.ErrNotAuthorized
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.StatusBadRequest, domain.NewActionError(domain.ErrNotAuthorized, "Invalid user ID format")
	}
	return userID, 0, nil
}
