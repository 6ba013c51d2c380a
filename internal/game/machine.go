// Package game owns the authoritative room state machine: the lobby ->
// round loop -> game-end lifecycle, its permission guards, scoring, and the
// per-room round timer. Every action is one atomic read-modify-write of the
// Room record under a per-room mutex.
package game

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SkribbLoL/game-service/domain"
)

// Triggers that can end a drawing round.
const (
	TriggerTimeUp       = "time-up"
	TriggerCorrectGuess = "correct-guess"
	TriggerManual       = "manual"
)

// RoomStore is the room cache contract the machine drives.
type RoomStore interface {
	Get(ctx context.Context, code string) (*domain.Room, error)
	Set(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, code string) error
}

// Broadcaster fans events out to a room's live connections. SendToUser
// returns an error when the target has no live connection; callers that
// deliver optional private events degrade gracefully on it.
type Broadcaster interface {
	BroadcastToRoom(roomCode string, event domain.Event)
	SendToUser(roomCode string, userID uuid.UUID, event domain.Event) error
}

// BusPublisher mirrors room-level events onto the inter-service bus.
type BusPublisher interface {
	Publish(ctx context.Context, eventType, roomCode string, payload any)
}

// WordSource supplies drawer word choices and point values.
type WordSource interface {
	PickMixed(n int) []string
	Points(word string) int
}

// Config tunes the machine. Zero values fall back to the domain defaults.
type Config struct {
	Rounds        int
	MaxPlayers    int
	RoundDuration int
	// GuessEndDelay is the celebratory pause between a correct guess and
	// the round actually ending.
	GuessEndDelay   time.Duration
	WordOptionCount int
}

func (c Config) withDefaults() Config {
	if c.Rounds <= 0 {
		c.Rounds = domain.DefaultRounds
	}
	if c.MaxPlayers <= 0 {
		c.MaxPlayers = domain.DefaultMaxPlayers
	}
	if c.RoundDuration <= 0 {
		c.RoundDuration = domain.DefaultRoundDuration
	}
	if c.GuessEndDelay <= 0 {
		c.GuessEndDelay = 3 * time.Second
	}
	if c.WordOptionCount <= 0 {
		c.WordOptionCount = 3
	}
	return c
}

type roundTimer struct {
	round int
	timer *time.Timer
}

// Machine applies player- and timer-initiated actions to rooms. All
// collaborators are injected; the machine holds no room state of its own
// beyond the per-room locks and pending timers.
type Machine struct {
	store       RoomStore
	words       WordSource
	broadcaster Broadcaster
	bus         BusPublisher // nil disables bus publication
	cfg         Config
	logger      *zap.Logger

	mu     sync.Mutex
	locks  map[string]*sync.Mutex
	timers map[string]*roundTimer
}

func NewMachine(store RoomStore, words WordSource, broadcaster Broadcaster, bus BusPublisher, cfg Config) *Machine {
	return &Machine{
		store:       store,
		words:       words,
		broadcaster: broadcaster,
		bus:         bus,
		cfg:         cfg.withDefaults(),
		logger:      zap.L(),
		locks:       make(map[string]*sync.Mutex),
		timers:      make(map[string]*roundTimer),
	}
}

// Lock serializes actions on one room. The returned function releases the
// lock. HTTP membership mutations share this lock so a join cannot race a
// start-game on the same room.
func (m *Machine) Lock(code string) func() {
	m.mu.Lock()
	l, ok := m.locks[code]
	if !ok {
		l = &sync.Mutex{}
		m.locks[code] = l
	}
	m.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// forget drops the lock and timer bookkeeping for a deleted room. The
// caller still holds the room lock, so an action racing on the same code
// can mint a fresh mutex and enter before the holder's deferred unlock
// runs; that is safe because the room record was deleted inside the
// holder's critical section — the racer's Get sees ErrRoomNotFound and no
// further state is touched under the stale lock.
func (m *Machine) forget(code string) {
	m.mu.Lock()
	if t, ok := m.timers[code]; ok {
		t.timer.Stop()
		delete(m.timers, code)
	}
	delete(m.locks, code)
	m.mu.Unlock()
}

// armTimer schedules the single deferred round action for a room,
// cancelling any previously armed one. The timer carries the round it was
// armed for; endRound discards stale firings, so a cancelled callback that
// still fires is harmless.
func (m *Machine) armTimer(code string, round int, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t, ok := m.timers[code]; ok {
		t.timer.Stop()
	}
	m.timers[code] = &roundTimer{
		round: round,
		timer: time.AfterFunc(d, func() { m.timerFired(code, round) }),
	}
}

func (m *Machine) cancelTimer(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t, ok := m.timers[code]; ok {
		t.timer.Stop()
		delete(m.timers, code)
	}
}

func (m *Machine) timerFired(code string, round int) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := m.endRound(ctx, code, TriggerTimeUp, round); err != nil {
		m.logger.Error("Round timer action failed",
			zap.String("room", code), zap.Int("round", round), zap.Error(err))
	}
}

// Emit broadcasts a room-level event and mirrors it onto the bus when one
// is configured. Bus failures never reach the in-room path.
func (m *Machine) Emit(ctx context.Context, code string, ev domain.Event) {
	m.broadcaster.BroadcastToRoom(code, ev)
	if m.bus != nil {
		m.bus.Publish(ctx, ev.Type, code, ev.Content)
	}
}

// emitTo delivers a private event, tolerating an absent connection.
func (m *Machine) emitTo(code string, userID uuid.UUID, ev domain.Event) {
	if err := m.broadcaster.SendToUser(code, userID, ev); err != nil {
		m.logger.Debug("Private delivery skipped",
			zap.String("room", code), zap.String("user", userID.String()),
			zap.String("event", ev.Type), zap.Error(err))
	}
}
