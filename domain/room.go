package domain

import (
	"time"

	"github.com/google/uuid"
)

// Game phases a Room moves through. A room starts in PhaseWaiting and
// cycles word-selection -> drawing for every round until PhaseGameEnd.
const (
	PhaseWaiting       = "waiting"
	PhaseWordSelection = "word-selection"
	PhaseDrawing       = "drawing"
	PhaseGameEnd       = "game-end"
)

// Defaults applied at room creation and on restart.
const (
	DefaultRounds        = 3
	DefaultMaxPlayers    = 10
	DefaultRoundDuration = 60
)

type Player struct {
	ID       uuid.UUID `json:"id"`
	Nickname string    `json:"nickname"`
	IsHost   bool      `json:"isHost"`
	Score    int       `json:"score"`
	JoinedAt time.Time `json:"joinedAt"`
}

// Room is the aggregate root for one game session. It is serialized as a
// single JSON blob in the room cache; all mutations go through a full
// read-modify-write of this struct. Users keeps join order, which drives
// drawer rotation and default host selection.
type Room struct {
	Code          string     `json:"code"`
	Users         []*Player  `json:"users"`
	GameStarted   bool       `json:"gameStarted"`
	GamePhase     string     `json:"gamePhase"`
	Rounds        int        `json:"rounds"`
	CurrentRound  int        `json:"currentRound"`
	CurrentDrawer uuid.UUID  `json:"currentDrawer"`
	CurrentWord   string     `json:"currentWord,omitempty"`
	WordOptions   []string   `json:"wordOptions,omitempty"`
	RoundStart    *time.Time `json:"roundStartTime,omitempty"`
	RoundEnd      *time.Time `json:"roundEndTime,omitempty"`
	MaxPlayers    int        `json:"maxPlayers"`
	RoundDuration int        `json:"roundDuration"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// GameSettings carries the optional start-game overrides. Zero values fall
// back to the room defaults.
type GameSettings struct {
	Rounds        int `json:"rounds"`
	MaxPlayers    int `json:"maxPlayers"`
	RoundDuration int `json:"roundDuration"`
}

// NewRoom creates a waiting room with the creator as host.
func NewRoom(code string, creator *Player) *Room {
	creator.IsHost = true
	return &Room{
		Code:          code,
		Users:         []*Player{creator},
		GamePhase:     PhaseWaiting,
		Rounds:        DefaultRounds,
		MaxPlayers:    DefaultMaxPlayers,
		RoundDuration: DefaultRoundDuration,
		CreatedAt:     time.Now(),
	}
}

// FindUser returns the player with the given id, or nil.
func (r *Room) FindUser(id uuid.UUID) *Player {
	for _, u := range r.Users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// Host returns the current host, or nil for an empty room.
func (r *Room) Host() *Player {
	for _, u := range r.Users {
		if u.IsHost {
			return u
		}
	}
	return nil
}

// NicknameTaken reports whether a player already uses the nickname.
func (r *Room) NicknameTaken(nickname string) bool {
	for _, u := range r.Users {
		if u.Nickname == nickname {
			return true
		}
	}
	return false
}

// RemoveUser removes the player and, when the removed player was host,
// promotes the first remaining player by join order. Returns the removed
// player, or nil if the id was not present.
func (r *Room) RemoveUser(id uuid.UUID) *Player {
	for i, u := range r.Users {
		if u.ID == id {
			r.Users = append(r.Users[:i], r.Users[i+1:]...)
			if u.IsHost && len(r.Users) > 0 {
				r.Users[0].IsHost = true
			}
			return u
		}
	}
	return nil
}

// NextDrawer returns the player after the current drawer in join order,
// wrapping around. An absent or unset drawer falls back to the first
// player.
func (r *Room) NextDrawer() uuid.UUID {
	if len(r.Users) == 0 {
		return uuid.Nil
	}
	for i, u := range r.Users {
		if u.ID == r.CurrentDrawer {
			return r.Users[(i+1)%len(r.Users)].ID
		}
	}
	return r.Users[0].ID
}

// ResetScores zeroes every player's score.
func (r *Room) ResetScores() {
	for _, u := range r.Users {
		u.Score = 0
	}
}

// ClearRoundState drops the per-round word state and timestamps.
func (r *Room) ClearRoundState() {
	r.CurrentWord = ""
	r.WordOptions = nil
	r.RoundStart = nil
	r.RoundEnd = nil
}

// Snapshot returns a copy safe to send to any client: the secret word and
// the drawer's pending options never leave the server through it.
func (r *Room) Snapshot() *Room {
	c := *r
	c.CurrentWord = ""
	c.WordOptions = nil
	c.Users = make([]*Player, len(r.Users))
	for i, u := range r.Users {
		uc := *u
		c.Users[i] = &uc
	}
	return &c
}
