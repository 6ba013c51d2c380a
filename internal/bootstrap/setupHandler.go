package bootstrap

import (
	"github.com/SkribbLoL/game-service/infra/redisstore"
	httpHandler "github.com/SkribbLoL/game-service/internal/api/http/handler"
	httpUsecase "github.com/SkribbLoL/game-service/internal/api/http/usecase"
	wsHandler "github.com/SkribbLoL/game-service/internal/api/ws/handler"
	"github.com/SkribbLoL/game-service/internal/api/ws/hub"
	wsUsecase "github.com/SkribbLoL/game-service/internal/api/ws/usecase"
	"github.com/SkribbLoL/game-service/internal/game"
)

func SetupHTTPHandlers(store *redisstore.Store, machine *game.Machine) map[string]interface{} {
	createRoomUseCase := httpUsecase.NewCreateRoomUseCase(store, machine)
	createRoomHandler := httpHandler.NewCreateRoomHandler(createRoomUseCase)

	joinRoomUseCase := httpUsecase.NewJoinRoomUseCase(store, machine, machine)
	joinRoomHandler := httpHandler.NewJoinRoomHandler(joinRoomUseCase)

	leaveRoomUseCase := httpUsecase.NewLeaveRoomUseCase(machine)
	leaveRoomHandler := httpHandler.NewLeaveRoomHandler(leaveRoomUseCase)

	getRoomUseCase := httpUsecase.NewGetRoomUseCase(store)
	getRoomHandler := httpHandler.NewGetRoomHandler(getRoomUseCase)

	return map[string]interface{}{
		"create-room": createRoomHandler,
		"join-room":   joinRoomHandler,
		"leave-room":  leaveRoomHandler,
		"get-room":    getRoomHandler,
	}
}

func SetupWSHandlers(store *redisstore.Store, wsHub *hub.Hub) map[string]interface{} {
	roomConnectUseCase := wsUsecase.NewRoomConnectUseCase(wsHub, store)
	roomConnectHandler := wsHandler.NewRoomConnectHandler(roomConnectUseCase)

	return map[string]interface{}{
		"room-connect": roomConnectHandler,
	}
}
