package game

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SkribbLoL/game-service/domain"
)

// StartGame moves a waiting room into the first word-selection phase.
// Host-only; admitted from the lobby only (a finished game goes through
// RestartGame); requires at least two players and no more than the
// configured maximum.
func (m *Machine) StartGame(ctx context.Context, code string, actor uuid.UUID, settings domain.GameSettings) error {
	unlock := m.Lock(code)
	defer unlock()

	room, err := m.store.Get(ctx, code)
	if err != nil {
		return err
	}

	host := room.Host()
	if host == nil || host.ID != actor {
		return domain.NewActionError(domain.ErrNotAuthorized, "Only the host can start the game")
	}
	if room.GamePhase != domain.PhaseWaiting {
		return domain.NewActionError(domain.ErrGameInProgress, "The game has already started")
	}
	if len(room.Users) < 2 {
		return domain.NewActionError(domain.ErrInsufficientPlayers, "At least 2 players are needed to start")
	}

	if settings.Rounds <= 0 {
		settings.Rounds = m.cfg.Rounds
	}
	if settings.MaxPlayers <= 0 {
		settings.MaxPlayers = m.cfg.MaxPlayers
	}
	if settings.RoundDuration <= 0 {
		settings.RoundDuration = m.cfg.RoundDuration
	}
	if len(room.Users) > settings.MaxPlayers {
		return domain.NewActionError(domain.ErrTooManyPlayers, "Too many players for these settings")
	}

	room.ResetScores()
	room.GameStarted = true
	room.Rounds = settings.Rounds
	room.MaxPlayers = settings.MaxPlayers
	room.RoundDuration = settings.RoundDuration
	room.CurrentRound = 1
	room.CurrentDrawer = room.Users[rand.Intn(len(room.Users))].ID
	room.ClearRoundState()
	room.GamePhase = domain.PhaseWordSelection
	m.prepareWordOptions(room)

	if err := m.store.Set(ctx, room); err != nil {
		return err
	}

	m.Emit(ctx, code, domain.Event{Type: domain.EventGameStarted, Content: domain.GameStartedPayload{
		Rounds:        room.Rounds,
		CurrentRound:  room.CurrentRound,
		MaxPlayers:    room.MaxPlayers,
		RoundDuration: room.RoundDuration,
		DrawerID:      room.CurrentDrawer,
		Users:         room.Users,
	}})
	m.deliverWordOptions(room)

	m.logger.Info("Game started",
		zap.String("room", code), zap.Int("rounds", room.Rounds),
		zap.String("drawer", room.CurrentDrawer.String()))
	return nil
}

// SelectWord commits the drawer's word choice and opens the drawing window.
func (m *Machine) SelectWord(ctx context.Context, code string, actor uuid.UUID, word string) error {
	unlock := m.Lock(code)
	defer unlock()

	room, err := m.store.Get(ctx, code)
	if err != nil {
		return err
	}

	if room.CurrentDrawer != actor {
		return domain.NewActionError(domain.ErrNotAuthorized, "Only the current drawer can select the word")
	}
	if !contains(room.WordOptions, word) {
		return domain.NewActionError(domain.ErrInvalidSelection, "That word is not one of your options")
	}

	now := time.Now()
	end := now.Add(time.Duration(room.RoundDuration) * time.Second)
	room.CurrentWord = word
	room.WordOptions = nil
	room.RoundStart = &now
	room.RoundEnd = &end
	room.GamePhase = domain.PhaseDrawing

	if err := m.store.Set(ctx, room); err != nil {
		return err
	}

	m.Emit(ctx, code, domain.Event{Type: domain.EventWordSelected, Content: domain.WordSelectedPayload{
		MaskedWord:    MaskWord(word),
		RoundDuration: room.RoundDuration,
		RoundEndTime:  end,
		DrawerID:      room.CurrentDrawer,
	}})
	m.emitTo(code, room.CurrentDrawer, domain.Event{
		Type:    domain.EventDrawerWord,
		Content: domain.DrawerWordPayload{Word: word},
	})

	m.armTimer(code, room.CurrentRound, time.Duration(room.RoundDuration)*time.Second)
	return nil
}

// HandleGuess checks a chat line against the current word. The drawer's own
// messages during drawing are dropped so the word cannot leak; outside the
// drawing phase, and for wrong guesses, the text is relayed as ordinary
// chat. Only the first correct guess scores: it resolves the round, and
// repeats of the revealed word are ordinary chat.
func (m *Machine) HandleGuess(ctx context.Context, code string, guesser uuid.UUID, text string) error {
	unlock := m.Lock(code)
	defer unlock()

	room, err := m.store.Get(ctx, code)
	if err != nil {
		return err
	}

	player := room.FindUser(guesser)
	if player == nil {
		return domain.NewActionError(domain.ErrPlayerNotFound, "You are not in this room")
	}

	if room.GamePhase != domain.PhaseDrawing {
		m.Emit(ctx, code, chatEvent(player, text))
		return nil
	}
	if guesser == room.CurrentDrawer {
		return nil
	}

	// An empty word means the round is already resolved and waiting out
	// the celebration delay; the reveal made the word public, so echoes
	// of it are plain chat and must not push the round end back.
	word := room.CurrentWord
	if word == "" || !strings.EqualFold(strings.TrimSpace(text), word) {
		m.Emit(ctx, code, chatEvent(player, text))
		return nil
	}

	points := m.words.Points(word)
	drawerGain := points / 2
	player.Score += points

	drawerScore := 0
	if drawer := room.FindUser(room.CurrentDrawer); drawer != nil {
		drawer.Score += drawerGain
		drawerScore = drawer.Score
	}
	room.CurrentWord = ""

	if err := m.store.Set(ctx, room); err != nil {
		return err
	}

	m.Emit(ctx, code, domain.Event{Type: domain.EventCorrectGuess, Content: domain.CorrectGuessPayload{
		GuesserID:    player.ID,
		Guesser:      player.Nickname,
		Word:         word,
		GuesserGain:  points,
		DrawerGain:   drawerGain,
		GuesserScore: player.Score,
		DrawerScore:  drawerScore,
	}})

	// Let the reveal sit for a moment before ending the round. Re-arming
	// replaces the time-up timer, keeping at most one pending per room.
	m.armTimer(code, room.CurrentRound, m.cfg.GuessEndDelay)
	return nil
}

// RestartGame resets a finished (or any) game back to the lobby. Host-only;
// deliberately not phase-gated so a replayed restart is a no-op rather than
// an error.
func (m *Machine) RestartGame(ctx context.Context, code string, actor uuid.UUID) error {
	unlock := m.Lock(code)
	defer unlock()

	room, err := m.store.Get(ctx, code)
	if err != nil {
		return err
	}

	host := room.Host()
	if host == nil || host.ID != actor {
		return domain.NewActionError(domain.ErrNotAuthorized, "Only the host can restart the game")
	}

	m.cancelTimer(code)

	room.GameStarted = false
	room.GamePhase = domain.PhaseWaiting
	room.CurrentRound = 0
	room.Rounds = domain.DefaultRounds
	room.MaxPlayers = domain.DefaultMaxPlayers
	room.RoundDuration = domain.DefaultRoundDuration
	room.CurrentDrawer = uuid.Nil
	room.ClearRoundState()
	room.ResetScores()

	if err := m.store.Set(ctx, room); err != nil {
		return err
	}

	m.Emit(ctx, code, domain.Event{Type: domain.EventGameRestarted, Content: domain.GameRestartedPayload{
		Users: room.Users,
	}})
	m.Emit(ctx, code, domain.Event{Type: domain.EventClearCanvasGameEnd, Content: struct{}{}})
	return nil
}

// RemovePlayer handles explicit leaves and transport disconnects. The last
// player leaving deletes the room outright. An active game drops to
// game-end when fewer than two players remain; rankings are computed over
// the players left after removal.
func (m *Machine) RemovePlayer(ctx context.Context, code string, userID uuid.UUID, reason string) error {
	unlock := m.Lock(code)
	defer unlock()

	room, err := m.store.Get(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			return nil
		}
		return err
	}

	drawerIdx := -1
	for i, u := range room.Users {
		if u.ID == room.CurrentDrawer {
			drawerIdx = i
		}
	}

	removed := room.RemoveUser(userID)
	if removed == nil {
		return nil
	}

	if len(room.Users) == 0 {
		if err := m.store.Delete(ctx, code); err != nil {
			return err
		}
		m.forget(code)
		m.logger.Info("Room deleted, last player left", zap.String("room", code))
		return nil
	}

	forcedEnd := room.GameStarted && len(room.Users) < 2
	drawerLeft := room.GameStarted && !forcedEnd &&
		removed.ID == room.CurrentDrawer && room.GamePhase != domain.PhaseGameEnd

	if forcedEnd {
		m.cancelTimer(code)
		room.GameStarted = false
		room.GamePhase = domain.PhaseGameEnd
		room.CurrentDrawer = uuid.Nil
		room.ClearRoundState()
	}
	if drawerLeft {
		// Hand the same round to the player now occupying the drawer's
		// former slot rather than burning a round. A tail slot wraps to
		// the head.
		m.cancelTimer(code)
		room.CurrentDrawer = room.Users[drawerIdx%len(room.Users)].ID
		room.ClearRoundState()
		room.GamePhase = domain.PhaseWordSelection
		m.prepareWordOptions(room)
	}

	if err := m.store.Set(ctx, room); err != nil {
		return err
	}

	m.Emit(ctx, code, domain.Event{Type: domain.EventUserLeft, Content: domain.UserLeftPayload{
		UserID:   removed.ID,
		Nickname: removed.Nickname,
		Reason:   reason,
		Users:    room.Users,
	}})

	if forcedEnd {
		result := RankAbandoned(room.Users)
		m.Emit(ctx, code, domain.Event{Type: domain.EventGameEnded, Content: domain.GameEndedPayload{
			Winners:     result.Winners,
			FinalScores: result.FinalScores,
			Summary:     result.Summary,
		}})
		m.Emit(ctx, code, domain.Event{Type: domain.EventClearCanvasGameEnd, Content: struct{}{}})
	}
	if drawerLeft {
		m.Emit(ctx, code, domain.Event{Type: domain.EventNewRound, Content: domain.NewRoundPayload{
			Round:    room.CurrentRound,
			Rounds:   room.Rounds,
			DrawerID: room.CurrentDrawer,
			Users:    room.Users,
		}})
		m.Emit(ctx, code, domain.Event{Type: domain.EventClearCanvasRound, Content: struct{}{}})
		m.deliverWordOptions(room)
	}
	return nil
}

func chatEvent(from *domain.Player, text string) domain.Event {
	return domain.Event{Type: domain.EventChatMessage, Content: domain.ChatMessagePayload{
		UserID:   from.ID,
		Nickname: from.Nickname,
		Text:     text,
	}}
}

func contains(words []string, w string) bool {
	for _, o := range words {
		if o == w {
			return true
		}
	}
	return false
}
