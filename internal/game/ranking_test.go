package game

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SkribbLoL/game-service/domain"
)

func players(scores map[string]int, order ...string) []*domain.Player {
	out := make([]*domain.Player, 0, len(order))
	for _, name := range order {
		out = append(out, &domain.Player{ID: uuid.New(), Nickname: name, Score: scores[name]})
	}
	return out
}

func TestRank_SingleWinner(t *testing.T) {
	result := Rank(players(map[string]int{"alice": 40, "bob": 25}, "alice", "bob"))

	require.Len(t, result.Winners, 1)
	assert.Equal(t, "alice", result.Winners[0].Nickname)
	assert.Equal(t, "alice wins with 40 points!", result.Summary)
}

func TestRank_TiedWinners(t *testing.T) {
	result := Rank(players(map[string]int{"alice": 100, "bob": 100, "carol": 50}, "alice", "bob", "carol"))

	require.Len(t, result.Winners, 2)
	assert.Equal(t, "alice", result.Winners[0].Nickname)
	assert.Equal(t, "bob", result.Winners[1].Nickname)

	scores := []int{result.FinalScores[0].Score, result.FinalScores[1].Score, result.FinalScores[2].Score}
	assert.Equal(t, []int{100, 100, 50}, scores)
	assert.Equal(t, "alice and bob tie for the win with 100 points!", result.Summary)
}

func TestRank_AllTied(t *testing.T) {
	result := Rank(players(map[string]int{"alice": 30, "bob": 30, "carol": 30}, "alice", "bob", "carol"))

	require.Len(t, result.Winners, 3)
	assert.Equal(t, "It's an all-way tie between alice, bob and carol!", result.Summary)
}

func TestRank_Empty(t *testing.T) {
	result := Rank(nil)

	require.Len(t, result.Winners, 1)
	assert.Equal(t, "No one", result.Winners[0].Nickname)
	assert.Zero(t, result.Winners[0].Score)
	assert.Equal(t, "No one wins!", result.Summary)
}

func TestRankAbandoned(t *testing.T) {
	result := RankAbandoned(players(map[string]int{"alice": 25}, "alice"))

	require.Len(t, result.Winners, 1)
	assert.Equal(t, "No one", result.Winners[0].Nickname)
	require.Len(t, result.FinalScores, 1)
	assert.Equal(t, "alice", result.FinalScores[0].Nickname)
	assert.Equal(t, 25, result.FinalScores[0].Score)
}

func TestMaskWord(t *testing.T) {
	assert.Equal(t, "___ ___", MaskWord("hot dog"))
	assert.Equal(t, "___", MaskWord("cat"))
	assert.Equal(t, "_____-_____", MaskWord("merry-round"))
	assert.Equal(t, "", MaskWord(""))
}
