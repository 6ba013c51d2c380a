package httpUsecase

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SkribbLoL/game-service/domain"
)

type fakeStore struct {
	mu    sync.Mutex
	rooms map[string]*domain.Room
}

func newFakeStore() *fakeStore {
	return &fakeStore{rooms: make(map[string]*domain.Room)}
}

func (s *fakeStore) Get(_ context.Context, code string) (*domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[code]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	return room, nil
}

func (s *fakeStore) Set(_ context.Context, room *domain.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[room.Code] = room
	return nil
}

func (s *fakeStore) Delete(_ context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, code)
	return nil
}

type fakeLocker struct{ mu sync.Mutex }

func (l *fakeLocker) Lock(string) func() {
	l.mu.Lock()
	return l.mu.Unlock
}

type fakeNotifier struct {
	mu     sync.Mutex
	events []domain.Event
}

func (n *fakeNotifier) Emit(_ context.Context, _ string, event domain.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func seed(t *testing.T, store *fakeStore, code string, names ...string) *domain.Room {
	t.Helper()
	require.NotEmpty(t, names)
	room := domain.NewRoom(code, &domain.Player{ID: uuid.New(), Nickname: names[0], JoinedAt: time.Now()})
	for _, n := range names[1:] {
		room.Users = append(room.Users, &domain.Player{ID: uuid.New(), Nickname: n, JoinedAt: time.Now()})
	}
	require.NoError(t, store.Set(context.Background(), room))
	return room
}

func TestCreateRoom(t *testing.T) {
	store := newFakeStore()
	uc := NewCreateRoomUseCase(store, &fakeLocker{})
	hostID := uuid.New()

	room, status, err := uc.Execute(context.Background(), hostID, "alice")
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, status)
	assert.Len(t, room.Code, roomCodeLength)
	for _, r := range room.Code {
		assert.Contains(t, roomCodeAlphabet, string(r))
	}
	require.Len(t, room.Users, 1)
	assert.Equal(t, hostID, room.Users[0].ID)
	assert.True(t, room.Users[0].IsHost)
	assert.Equal(t, domain.PhaseWaiting, room.GamePhase)

	stored, err := store.Get(context.Background(), room.Code)
	require.NoError(t, err)
	assert.Equal(t, room.Code, stored.Code)
}

func TestCreateRoom_UniqueCodes(t *testing.T) {
	store := newFakeStore()
	uc := NewCreateRoomUseCase(store, &fakeLocker{})

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		room, _, err := uc.Execute(context.Background(), uuid.New(), "alice")
		require.NoError(t, err)
		assert.False(t, seen[room.Code], "duplicate room code %s", room.Code)
		seen[room.Code] = true
	}
}

func TestJoinRoom(t *testing.T) {
	store := newFakeStore()
	notifier := &fakeNotifier{}
	uc := NewJoinRoomUseCase(store, &fakeLocker{}, notifier)
	room := seed(t, store, "ROOM01", "alice")

	joined, status, err := uc.Execute(context.Background(), room.Code, uuid.New(), "bob")
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, status)
	require.Len(t, joined.Users, 2)
	assert.False(t, joined.Users[1].IsHost)

	require.Len(t, notifier.events, 1)
	assert.Equal(t, domain.EventUserJoined, notifier.events[0].Type)
	payload := notifier.events[0].Content.(domain.UserJoinedPayload)
	assert.Equal(t, "bob", payload.User.Nickname)
}

func TestJoinRoom_RejoinIsNoOp(t *testing.T) {
	store := newFakeStore()
	notifier := &fakeNotifier{}
	uc := NewJoinRoomUseCase(store, &fakeLocker{}, notifier)
	room := seed(t, store, "ROOM01", "alice")

	joined, status, err := uc.Execute(context.Background(), room.Code, room.Users[0].ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, joined.Users, 1)
	assert.Empty(t, notifier.events, "no join event for a rejoin")
}

func TestJoinRoom_Conflicts(t *testing.T) {
	store := newFakeStore()
	uc := NewJoinRoomUseCase(store, &fakeLocker{}, &fakeNotifier{})
	room := seed(t, store, "ROOM01", "alice", "bob")

	_, status, err := uc.Execute(context.Background(), room.Code, uuid.New(), "alice")
	assert.Equal(t, http.StatusConflict, status)
	assert.ErrorIs(t, err, domain.ErrNicknameTaken)

	room.MaxPlayers = 2
	require.NoError(t, store.Set(context.Background(), room))
	_, status, err = uc.Execute(context.Background(), room.Code, uuid.New(), "carol")
	assert.Equal(t, http.StatusConflict, status)
	assert.ErrorIs(t, err, domain.ErrRoomFull)
}

func TestJoinRoom_NotFound(t *testing.T) {
	uc := NewJoinRoomUseCase(newFakeStore(), &fakeLocker{}, &fakeNotifier{})

	_, status, err := uc.Execute(context.Background(), "NOSUCH", uuid.New(), "bob")
	assert.Equal(t, http.StatusNotFound, status)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestJoinRoom_SnapshotRedactsSecrets(t *testing.T) {
	store := newFakeStore()
	uc := NewJoinRoomUseCase(store, &fakeLocker{}, &fakeNotifier{})
	room := seed(t, store, "ROOM01", "alice")
	room.CurrentWord = "cat"
	room.WordOptions = []string{"cat", "dog"}
	require.NoError(t, store.Set(context.Background(), room))

	joined, _, err := uc.Execute(context.Background(), room.Code, uuid.New(), "bob")
	require.NoError(t, err)
	assert.Empty(t, joined.CurrentWord)
	assert.Empty(t, joined.WordOptions)
}

func TestGetRoom(t *testing.T) {
	store := newFakeStore()
	uc := NewGetRoomUseCase(store)
	room := seed(t, store, "ROOM01", "alice")
	room.CurrentWord = "cat"
	require.NoError(t, store.Set(context.Background(), room))

	got, status, err := uc.Execute(context.Background(), room.Code)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, got.CurrentWord, "the room view never exposes the word")

	_, status, err = uc.Execute(context.Background(), "NOSUCH")
	assert.Equal(t, http.StatusNotFound, status)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

type fakeGameActions struct{ err error }

func (g *fakeGameActions) RemovePlayer(context.Context, string, uuid.UUID, string) error {
	return g.err
}

func TestLeaveRoom(t *testing.T) {
	uc := NewLeaveRoomUseCase(&fakeGameActions{})
	status, err := uc.Execute(context.Background(), "ROOM01", uuid.New())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)

	uc = NewLeaveRoomUseCase(&fakeGameActions{err: domain.ErrRoomNotFound})
	status, err = uc.Execute(context.Background(), "ROOM01", uuid.New())
	assert.Equal(t, http.StatusNotFound, status)
	assert.Error(t, err)
}
