package bootstrap

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/SkribbLoL/game-service/config"
	httpHandler "github.com/SkribbLoL/game-service/internal/api/http/handler"
	wsHandler "github.com/SkribbLoL/game-service/internal/api/ws/handler"
	"github.com/SkribbLoL/game-service/internal/handler"
	"github.com/SkribbLoL/game-service/internal/server"
)

func SetupServer(config config.Config, httpHandlers map[string]interface{}, wsHandlers map[string]interface{}) *fiber.App {
	serverConfig := server.Config{
		Port:         config.Server.Port,
		IdleTimeout:  5 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	app := server.NewFiberApp(serverConfig)

	createRoomHandler := httpHandlers["create-room"].(*httpHandler.CreateRoomHandler)
	joinRoomHandler := httpHandlers["join-room"].(*httpHandler.JoinRoomHandler)
	leaveRoomHandler := httpHandlers["leave-room"].(*httpHandler.LeaveRoomHandler)
	getRoomHandler := httpHandlers["get-room"].(*httpHandler.GetRoomHandler)

	app.Post("/rooms", handler.HandleWithFiber[httpHandler.CreateRoomRequest, httpHandler.CreateRoomResponse](createRoomHandler))
	app.Post("/rooms/:room_code/join", handler.HandleWithFiber[httpHandler.JoinRoomRequest, httpHandler.JoinRoomResponse](joinRoomHandler))
	app.Post("/rooms/:room_code/leave", handler.HandleWithFiber[httpHandler.LeaveRoomRequest, httpHandler.LeaveRoomResponse](leaveRoomHandler))
	app.Get("/rooms/:room_code", handler.HandleWithFiber[httpHandler.GetRoomRequest, httpHandler.GetRoomResponse](getRoomHandler))

	roomConnectHandler := wsHandlers["room-connect"].(*wsHandler.RoomConnectHandler)
	wsRoute := app.Group("/ws")
	wsRoute.Get("/rooms/:room_code", handler.HandleWithFiberWS[wsHandler.RoomConnectRequest](roomConnectHandler))

	return app
}
