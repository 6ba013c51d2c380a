package hub

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"

	"github.com/SkribbLoL/game-service/domain"
)

// Inbound action types players send over the socket.
const (
	ActionStartGame   = "start-game"
	ActionSelectWord  = "select-word"
	ActionGuess       = "guess"
	ActionChatMessage = "chat-message"
	ActionEndRound    = "end-round"
	ActionRestartGame = "restart-game"
	ActionLeaveRoom   = "leave-room"
	ActionDraw        = "draw"
)

// Action is the inbound message envelope.
type Action struct {
	Type    string          `json:"type"`
	Content json.RawMessage `json:"content"`
}

type selectWordAction struct {
	SelectedWord string `json:"selectedWord"`
}

type guessAction struct {
	Text string `json:"text"`
}

const actionTimeout = 10 * time.Second

// readPump reads player actions off the socket and applies them to the
// game. It owns the read side of the connection; returning triggers
// unregistration.
func (h *Hub) readPump(client *domain.Client) {
	defer func() {
		h.unregister <- client
		client.Conn.Close()
	}()

	client.Conn.SetReadLimit(maxMessageSize)
	client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	client.Conn.SetPongHandler(func(string) error {
		return client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, payload, err := client.Conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Debug("Read error",
					zap.String("room", client.RoomCode), zap.String("user", client.ID.String()), zap.Error(err))
			}
			return
		}

		var action Action
		if err := json.Unmarshal(payload, &action); err != nil {
			h.sendError(client, "Malformed message")
			continue
		}

		if done := h.dispatch(client, action); done {
			return
		}
	}
}

// dispatch applies one action. Returns true when the connection should
// close (explicit leave).
func (h *Hub) dispatch(client *domain.Client, action Action) bool {
	ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
	defer cancel()

	var err error
	switch action.Type {
	case ActionStartGame:
		var settings domain.GameSettings
		if action.Content != nil {
			if uerr := json.Unmarshal(action.Content, &settings); uerr != nil {
				h.sendError(client, "Malformed game settings")
				return false
			}
		}
		err = h.game.StartGame(ctx, client.RoomCode, client.ID, settings)

	case ActionSelectWord:
		var sel selectWordAction
		if uerr := json.Unmarshal(action.Content, &sel); uerr != nil {
			h.sendError(client, "Malformed word selection")
			return false
		}
		err = h.game.SelectWord(ctx, client.RoomCode, client.ID, sel.SelectedWord)

	case ActionGuess, ActionChatMessage:
		var g guessAction
		if uerr := json.Unmarshal(action.Content, &g); uerr != nil {
			h.sendError(client, "Malformed guess")
			return false
		}
		err = h.game.HandleGuess(ctx, client.RoomCode, client.ID, g.Text)

	case ActionEndRound:
		err = h.game.EndRound(ctx, client.RoomCode)

	case ActionRestartGame:
		err = h.game.RestartGame(ctx, client.RoomCode, client.ID)

	case ActionLeaveRoom:
		if err := h.game.RemovePlayer(ctx, client.RoomCode, client.ID, "left"); err != nil {
			h.logger.Error("Leave failed",
				zap.String("room", client.RoomCode), zap.String("user", client.ID.String()), zap.Error(err))
		}
		return true

	case ActionDraw:
		// Pure relay, never touches room state.
		h.BroadcastToOthers(client.RoomCode, client.ID, domain.Event{
			Type:    domain.EventDrawUpdate,
			Content: domain.DrawUpdatePayload{UserID: client.ID, Data: action.Content},
		})

	default:
		h.sendError(client, "Unknown action: "+action.Type)
	}

	if err != nil {
		h.sendError(client, playerMessage(err))
	}
	return false
}

// playerMessage maps an action error to what the acting player sees.
// Backend failures are never detailed to players.
func playerMessage(err error) string {
	if errors.Is(err, domain.ErrBackendUnavailable) {
		return "Server error"
	}
	return err.Error()
}

func (h *Hub) sendError(client *domain.Client, message string) {
	data, err := json.Marshal(domain.Event{
		Type:    domain.EventError,
		Content: domain.ErrorPayload{Message: message},
	})
	if err != nil {
		return
	}
	h.push(client, data)
}
