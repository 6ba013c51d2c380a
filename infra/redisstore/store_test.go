package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SkribbLoL/game-service/domain"
)

// newTestStore connects to a local redis and skips when none is running.
func newTestStore(t *testing.T, ttl time.Duration) (*Store, *redis.Client) {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379", DB: 15})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("redis not available: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return New(client, ttl), client
}

func testRoom(code string) *domain.Room {
	room := domain.NewRoom(code, &domain.Player{ID: uuid.New(), Nickname: "alice", JoinedAt: time.Now()})
	room.Users = append(room.Users, &domain.Player{ID: uuid.New(), Nickname: "bob", Score: 25, JoinedAt: time.Now()})
	return room
}

func TestStore_Roundtrip(t *testing.T) {
	store, client := newTestStore(t, time.Hour)
	ctx := context.Background()
	room := testRoom("TTRIP1")
	t.Cleanup(func() { client.Del(ctx, keyPrefix+room.Code) })

	require.NoError(t, store.Set(ctx, room))

	got, err := store.Get(ctx, room.Code)
	require.NoError(t, err)
	assert.Equal(t, room.Code, got.Code)
	require.Len(t, got.Users, 2)
	assert.Equal(t, room.Users[0].ID, got.Users[0].ID)
	assert.True(t, got.Users[0].IsHost)
	assert.Equal(t, 25, got.Users[1].Score)
	assert.Equal(t, domain.PhaseWaiting, got.GamePhase)
}

func TestStore_GetMissing(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	_, err := store.Get(context.Background(), "NOSUCH")
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestStore_SetRefreshesTTL(t *testing.T) {
	store, client := newTestStore(t, time.Hour)
	ctx := context.Background()
	room := testRoom("TTTL01")
	t.Cleanup(func() { client.Del(ctx, keyPrefix+room.Code) })

	require.NoError(t, store.Set(ctx, room))

	ttl, err := client.TTL(ctx, keyPrefix+room.Code).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 59*time.Minute)

	// Burn some of the TTL down, then confirm a write restores it.
	require.NoError(t, client.Expire(ctx, keyPrefix+room.Code, time.Minute).Err())
	require.NoError(t, store.Set(ctx, room))

	ttl, err = client.TTL(ctx, keyPrefix+room.Code).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 59*time.Minute)
}

func TestStore_Delete(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()
	room := testRoom("TDEL01")

	require.NoError(t, store.Set(ctx, room))
	require.NoError(t, store.Delete(ctx, room.Code))

	_, err := store.Get(ctx, room.Code)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)

	// Deleting a missing room is not an error.
	require.NoError(t, store.Delete(ctx, room.Code))
}
