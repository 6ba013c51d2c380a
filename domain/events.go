package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Outbound event types. Every state transition committed against a Room is
// fanned out as one of these; the payload schemas are fixed structs so the
// wire format cannot drift between callers.
const (
	EventUserJoined         = "user-joined"
	EventRoomJoined         = "room-joined"
	EventUserLeft           = "user-left"
	EventGameStarted        = "game-started"
	EventWordOptions        = "word-options"
	EventWordSelected       = "word-selected"
	EventDrawerWord         = "drawer-word"
	EventCorrectGuess       = "correct-guess"
	EventNewRound           = "new-round"
	EventGameEnded          = "game-ended"
	EventGameRestarted      = "game-restarted"
	EventClearCanvasRound   = "clear-canvas-round"
	EventClearCanvasGameEnd = "clear-canvas-game-end"
	EventChatMessage        = "chat-message"
	EventDrawUpdate         = "draw-update"
	EventError              = "error"
)

// Event is the envelope delivered to clients and, for room-level events,
// onto the bus.
type Event struct {
	Type    string `json:"type"`
	Content any    `json:"content"`
}

type UserJoinedPayload struct {
	User  *Player   `json:"user"`
	Users []*Player `json:"users"`
}

type RoomJoinedPayload struct {
	Room *Room `json:"room"`
}

type UserLeftPayload struct {
	UserID   uuid.UUID `json:"userId"`
	Nickname string    `json:"nickname"`
	Reason   string    `json:"reason"`
	Users    []*Player `json:"users"`
}

type GameStartedPayload struct {
	Rounds        int       `json:"rounds"`
	CurrentRound  int       `json:"currentRound"`
	MaxPlayers    int       `json:"maxPlayers"`
	RoundDuration int       `json:"roundDuration"`
	DrawerID      uuid.UUID `json:"drawerId"`
	Users         []*Player `json:"users"`
}

type WordOptionsPayload struct {
	Options []string `json:"options"`
	Round   int      `json:"round"`
}

type WordSelectedPayload struct {
	MaskedWord    string    `json:"maskedWord"`
	RoundDuration int       `json:"roundDuration"`
	RoundEndTime  time.Time `json:"roundEndTime"`
	DrawerID      uuid.UUID `json:"drawerId"`
}

type DrawerWordPayload struct {
	Word string `json:"word"`
}

type CorrectGuessPayload struct {
	GuesserID    uuid.UUID `json:"guesserId"`
	Guesser      string    `json:"guesser"`
	Word         string    `json:"word"`
	GuesserGain  int       `json:"guesserGain"`
	DrawerGain   int       `json:"drawerGain"`
	GuesserScore int       `json:"guesserScore"`
	DrawerScore  int       `json:"drawerScore"`
}

type NewRoundPayload struct {
	Round    int       `json:"round"`
	Rounds   int       `json:"rounds"`
	DrawerID uuid.UUID `json:"drawerId"`
	Users    []*Player `json:"users"`
}

type RankedPlayer struct {
	ID       uuid.UUID `json:"id"`
	Nickname string    `json:"nickname"`
	Score    int       `json:"score"`
}

type GameEndedPayload struct {
	Winners     []RankedPlayer `json:"winners"`
	FinalScores []RankedPlayer `json:"finalScores"`
	Summary     string         `json:"summary"`
}

type GameRestartedPayload struct {
	Users []*Player `json:"users"`
}

type ChatMessagePayload struct {
	UserID   uuid.UUID `json:"userId"`
	Nickname string    `json:"nickname"`
	Text     string    `json:"text"`
}

type DrawUpdatePayload struct {
	UserID uuid.UUID       `json:"userId"`
	Data   json.RawMessage `json:"data"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}
