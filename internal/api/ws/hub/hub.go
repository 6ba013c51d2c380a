// Package hub tracks live websocket sessions per room and fans room events
// out to them. It is the presence side of the game: connection lookup for
// private deliveries, and disconnect detection feeding player removal.
package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SkribbLoL/game-service/domain"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
)

// Game is the slice of the state machine the hub drives with inbound
// player actions.
type Game interface {
	StartGame(ctx context.Context, roomCode string, actor uuid.UUID, settings domain.GameSettings) error
	SelectWord(ctx context.Context, roomCode string, actor uuid.UUID, word string) error
	HandleGuess(ctx context.Context, roomCode string, guesser uuid.UUID, text string) error
	EndRound(ctx context.Context, roomCode string) error
	RestartGame(ctx context.Context, roomCode string, actor uuid.UUID) error
	RemovePlayer(ctx context.Context, roomCode string, userID uuid.UUID, reason string) error
}

// Hub owns the roomCode -> userID -> client registry. Registration flows
// through channels into the Run loop; reads take the registry lock.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[uuid.UUID]*domain.Client

	register   chan *domain.Client
	unregister chan *domain.Client

	game   Game
	logger *zap.Logger
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[uuid.UUID]*domain.Client),
		register:   make(chan *domain.Client),
		unregister: make(chan *domain.Client),
		logger:     zap.L(),
	}
}

// AttachGame wires the state machine in after construction; the machine in
// turn broadcasts through this hub.
func (h *Hub) AttachGame(game Game) {
	h.game = game
}

// Run processes registration traffic until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)
			go h.readPump(client)
			go h.writePump(client)
		case client := <-h.unregister:
			h.unregisterClient(client)
		case <-ctx.Done():
			return
		}
	}
}

func (h *Hub) RegisterClient(client *domain.Client) {
	h.register <- client
}

func (h *Hub) registerClient(client *domain.Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	roomClients, ok := h.rooms[client.RoomCode]
	if !ok {
		roomClients = make(map[uuid.UUID]*domain.Client)
		h.rooms[client.RoomCode] = roomClients
	}

	// A reconnect supersedes the old session.
	if existing, ok := roomClients[client.ID]; ok {
		h.logger.Info("Replacing existing connection",
			zap.String("room", client.RoomCode), zap.String("user", client.ID.String()))
		close(existing.Done)
		existing.Conn.Close()
	}

	roomClients[client.ID] = client
}

func (h *Hub) unregisterClient(client *domain.Client) {
	h.mu.Lock()
	roomClients, ok := h.rooms[client.RoomCode]
	if !ok || roomClients[client.ID] != client {
		// Already replaced by a reconnect; nothing to clean up.
		h.mu.Unlock()
		return
	}
	delete(roomClients, client.ID)
	if len(roomClients) == 0 {
		delete(h.rooms, client.RoomCode)
	}
	close(client.Done)
	h.mu.Unlock()

	h.logger.Info("Client disconnected",
		zap.String("room", client.RoomCode), zap.String("user", client.ID.String()))

	if h.game != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := h.game.RemovePlayer(ctx, client.RoomCode, client.ID, "disconnected"); err != nil {
				h.logger.Error("Disconnect removal failed",
					zap.String("room", client.RoomCode), zap.String("user", client.ID.String()), zap.Error(err))
			}
		}()
	}
}

// IsConnected reports whether the (room, user) pair has a live session.
func (h *Hub) IsConnected(roomCode string, userID uuid.UUID) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, ok := h.rooms[roomCode]
	if !ok {
		return false
	}
	_, ok = clients[userID]
	return ok
}

// BroadcastToRoom delivers an event to every session in the room. Sends
// are non-blocking; a session with a full buffer misses the message rather
// than stalling the room.
func (h *Hub) BroadcastToRoom(roomCode string, event domain.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("Failed to marshal event", zap.String("event", event.Type), zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.rooms[roomCode] {
		h.push(client, data)
	}
}

// BroadcastToOthers delivers to everyone in the room except the sender.
// Used for drawing relays so the artist does not echo its own strokes.
func (h *Hub) BroadcastToOthers(roomCode string, senderID uuid.UUID, event domain.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("Failed to marshal event", zap.String("event", event.Type), zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, client := range h.rooms[roomCode] {
		if id == senderID {
			continue
		}
		h.push(client, data)
	}
}

// SendToUser delivers an event to one session. Returns an error when the
// user has no live connection so private deliveries can degrade.
func (h *Hub) SendToUser(roomCode string, userID uuid.UUID, event domain.Event) error {
	h.mu.RLock()
	client, ok := h.rooms[roomCode][userID]
	h.mu.RUnlock()
	if !ok {
		return fmt.Errorf("user %s has no connection in room %s", userID, roomCode)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.Type, err)
	}
	h.push(client, data)
	return nil
}

func (h *Hub) push(client *domain.Client, data []byte) {
	select {
	case client.Send <- data:
	default:
		h.logger.Warn("Send buffer full, dropping message",
			zap.String("room", client.RoomCode), zap.String("user", client.ID.String()))
	}
}

// writePump drains the client's send buffer onto the socket and keeps the
// connection alive with pings.
func (h *Hub) writePump(client *domain.Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.Conn.Close()
	}()

	for {
		select {
		case msg, ok := <-client.Send:
			if !ok {
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			client.WriteLock.Lock()
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := client.Conn.WriteMessage(websocket.TextMessage, msg)
			client.WriteLock.Unlock()
			if err != nil {
				return
			}
		case <-ticker.C:
			client.WriteLock.Lock()
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := client.Conn.WriteMessage(websocket.PingMessage, nil)
			client.WriteLock.Unlock()
			if err != nil {
				return
			}
		case <-client.Done:
			return
		}
	}
}
