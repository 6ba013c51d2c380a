package handler

import (
	"context"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type Request any
type Response any

// FiberHandler is the HTTP handler shape: parse/validate happens in the
// middleware, the handler returns payload, status and error.
type FiberHandler[R Request, Res Response] interface {
	Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *R) (*Res, int, error)
}

// FiberWSHandler owns an upgraded websocket connection.
type FiberWSHandler[R Request] interface {
	HandleWS(c *websocket.Conn, ctx context.Context, req *R)
}
