package domain

import (
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// Client is one live websocket session bound to a (room, user) pair.
type Client struct {
	ID        uuid.UUID
	RoomCode  string
	Send      chan []byte
	Conn      *websocket.Conn
	WriteLock sync.Mutex
	Done      chan struct{}
}
