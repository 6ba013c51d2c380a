package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlayer(nickname string) *Player {
	return &Player{ID: uuid.New(), Nickname: nickname, JoinedAt: time.Now()}
}

func threePlayerRoom(t *testing.T) (*Room, *Player, *Player, *Player) {
	t.Helper()
	a := newPlayer("alice")
	room := NewRoom("ABC123", a)
	b := newPlayer("bob")
	c := newPlayer("carol")
	room.Users = append(room.Users, b, c)
	return room, a, b, c
}

func TestNewRoom_CreatorIsHost(t *testing.T) {
	creator := newPlayer("alice")
	room := NewRoom("ABC123", creator)

	assert.True(t, creator.IsHost)
	assert.Equal(t, PhaseWaiting, room.GamePhase)
	assert.Equal(t, DefaultRounds, room.Rounds)
	assert.Equal(t, DefaultMaxPlayers, room.MaxPlayers)
	assert.Equal(t, DefaultRoundDuration, room.RoundDuration)
}

func TestRemoveUser_PromotesNextHost(t *testing.T) {
	room, a, b, _ := threePlayerRoom(t)

	removed := room.RemoveUser(a.ID)
	require.NotNil(t, removed)
	assert.Equal(t, a.ID, removed.ID)

	// Exactly one host remains, and it is the next player by join order.
	hosts := 0
	for _, u := range room.Users {
		if u.IsHost {
			hosts++
		}
	}
	assert.Equal(t, 1, hosts)
	assert.True(t, b.IsHost)
}

func TestRemoveUser_NonHostKeepsHost(t *testing.T) {
	room, a, b, _ := threePlayerRoom(t)

	require.NotNil(t, room.RemoveUser(b.ID))
	assert.True(t, a.IsHost)
	assert.Equal(t, a.ID, room.Host().ID)
}

func TestRemoveUser_UnknownID(t *testing.T) {
	room, _, _, _ := threePlayerRoom(t)
	assert.Nil(t, room.RemoveUser(uuid.New()))
	assert.Len(t, room.Users, 3)
}

func TestNextDrawer_Rotation(t *testing.T) {
	room, a, b, c := threePlayerRoom(t)

	room.CurrentDrawer = b.ID
	assert.Equal(t, c.ID, room.NextDrawer())

	room.CurrentDrawer = c.ID
	assert.Equal(t, a.ID, room.NextDrawer(), "rotation wraps to the first player")
}

func TestNextDrawer_DrawerGone(t *testing.T) {
	room, a, b, _ := threePlayerRoom(t)

	room.CurrentDrawer = a.ID
	room.RemoveUser(a.ID)
	assert.Equal(t, b.ID, room.NextDrawer())
}

func TestNicknameTaken(t *testing.T) {
	room, _, _, _ := threePlayerRoom(t)
	assert.True(t, room.NicknameTaken("bob"))
	assert.False(t, room.NicknameTaken("dave"))
}

func TestSnapshot_NeverLeaksWord(t *testing.T) {
	room, a, _, _ := threePlayerRoom(t)
	room.CurrentWord = "secret"
	room.WordOptions = []string{"one", "two", "three"}

	snap := room.Snapshot()
	assert.Empty(t, snap.CurrentWord)
	assert.Nil(t, snap.WordOptions)
	assert.Len(t, snap.Users, 3)

	// Mutating the snapshot must not touch the original.
	snap.Users[0].Score = 99
	assert.Zero(t, a.Score)
}
