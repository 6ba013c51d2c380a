package domain

import "errors"

// Sentinel errors for the room/game action taxonomy. Callers match with
// errors.Is; the message shown to a player comes from ActionError.
var (
	ErrNotAuthorized       = errors.New("not authorized")
	ErrInvalidSelection    = errors.New("invalid selection")
	ErrGameInProgress      = errors.New("game in progress")
	ErrInsufficientPlayers = errors.New("insufficient players")
	ErrTooManyPlayers      = errors.New("too many players")
	ErrRoomNotFound        = errors.New("room not found")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrRoomFull            = errors.New("room is full")
	ErrNicknameTaken       = errors.New("nickname already taken")
	ErrBackendUnavailable  = errors.New("backend unavailable")
)

// ActionError pairs a taxonomy sentinel with the human-readable message
// reported to the acting connection.
type ActionError struct {
	base error
	msg  string
}

func NewActionError(base error, msg string) error {
	return &ActionError{base: base, msg: msg}
}

func (e *ActionError) Error() string { return e.msg }

func (e *ActionError) Unwrap() error { return e.base }
