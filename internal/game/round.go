package game

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SkribbLoL/game-service/domain"
)

// EndRound is the manual/debug trigger exposed over the transport. Timer
// and correct-guess endings go through endRound directly with the round
// generation they were armed for.
func (m *Machine) EndRound(ctx context.Context, code string) error {
	return m.endRound(ctx, code, TriggerManual, 0)
}

// endRound closes the current drawing round. expectRound > 0 marks a
// deferred (timer) invocation: if the room has already moved to another
// round, the firing is stale and ignored.
func (m *Machine) endRound(ctx context.Context, code string, trigger string, expectRound int) error {
	unlock := m.Lock(code)
	defer unlock()

	room, err := m.store.Get(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			m.cancelTimer(code)
			return nil
		}
		return err
	}

	if expectRound > 0 && (room.CurrentRound != expectRound || room.GamePhase != domain.PhaseDrawing) {
		m.logger.Debug("Stale round timer ignored",
			zap.String("room", code), zap.Int("armedFor", expectRound),
			zap.Int("currentRound", room.CurrentRound), zap.String("phase", room.GamePhase))
		return nil
	}
	if !room.GameStarted || room.GamePhase != domain.PhaseDrawing {
		return nil
	}

	m.cancelTimer(code)

	if room.CurrentRound >= room.Rounds {
		return m.finishGame(ctx, room)
	}

	room.CurrentRound++
	room.ClearRoundState()
	room.CurrentDrawer = room.NextDrawer()
	room.GamePhase = domain.PhaseWordSelection
	m.prepareWordOptions(room)

	if err := m.store.Set(ctx, room); err != nil {
		return err
	}

	m.Emit(ctx, code, domain.Event{Type: domain.EventNewRound, Content: domain.NewRoundPayload{
		Round:    room.CurrentRound,
		Rounds:   room.Rounds,
		DrawerID: room.CurrentDrawer,
		Users:    room.Users,
	}})
	m.Emit(ctx, code, domain.Event{Type: domain.EventClearCanvasRound, Content: struct{}{}})
	m.deliverWordOptions(room)

	m.logger.Info("Round advanced",
		zap.String("room", code), zap.Int("round", room.CurrentRound),
		zap.String("drawer", room.CurrentDrawer.String()), zap.String("trigger", trigger))
	return nil
}

// finishGame ends the game after the last round and publishes the final
// rankings. Caller holds the room lock.
func (m *Machine) finishGame(ctx context.Context, room *domain.Room) error {
	room.GameStarted = false
	room.GamePhase = domain.PhaseGameEnd
	room.CurrentDrawer = uuid.Nil
	room.ClearRoundState()

	if err := m.store.Set(ctx, room); err != nil {
		return err
	}

	result := Rank(room.Users)
	m.Emit(ctx, room.Code, domain.Event{Type: domain.EventGameEnded, Content: domain.GameEndedPayload{
		Winners:     result.Winners,
		FinalScores: result.FinalScores,
		Summary:     result.Summary,
	}})
	m.Emit(ctx, room.Code, domain.Event{Type: domain.EventClearCanvasGameEnd, Content: struct{}{}})

	m.logger.Info("Game ended", zap.String("room", room.Code), zap.String("summary", result.Summary))
	return nil
}

// prepareWordOptions stores fresh drawer choices on the room. The options
// are persisted with the room even when the drawer has no live connection,
// so a reconnecting drawer can be re-served them.
func (m *Machine) prepareWordOptions(room *domain.Room) {
	room.WordOptions = m.words.PickMixed(m.cfg.WordOptionCount)
}

// deliverWordOptions privately offers the stored options to the drawer.
// No retry when the connection is missing.
func (m *Machine) deliverWordOptions(room *domain.Room) {
	if len(room.WordOptions) == 0 || room.CurrentDrawer == uuid.Nil {
		return
	}
	m.emitTo(room.Code, room.CurrentDrawer, domain.Event{
		Type: domain.EventWordOptions,
		Content: domain.WordOptionsPayload{
			Options: room.WordOptions,
			Round:   room.CurrentRound,
		},
	})
}
