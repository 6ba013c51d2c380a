package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SkribbLoL/game-service/domain"
)

// Result holds the final standings of a finished game.
type Result struct {
	Winners     []domain.RankedPlayer
	FinalScores []domain.RankedPlayer
	Summary     string
}

// Rank sorts players by score descending (stable, so ties keep join order)
// and takes every player sharing the top score as a co-winner. An empty
// player list yields the sentinel "No one" result.
func Rank(users []*domain.Player) Result {
	if len(users) == 0 {
		noOne := domain.RankedPlayer{Nickname: "No one", Score: 0}
		return Result{
			Winners:     []domain.RankedPlayer{noOne},
			FinalScores: []domain.RankedPlayer{},
			Summary:     "No one wins!",
		}
	}

	scores := make([]domain.RankedPlayer, len(users))
	for i, u := range users {
		scores[i] = domain.RankedPlayer{ID: u.ID, Nickname: u.Nickname, Score: u.Score}
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	top := scores[0].Score
	var winners []domain.RankedPlayer
	for _, s := range scores {
		if s.Score == top {
			winners = append(winners, s)
		}
	}

	return Result{
		Winners:     winners,
		FinalScores: scores,
		Summary:     summarize(winners, len(scores), top),
	}
}

// RankAbandoned is the standing for a game cut short by players leaving:
// with fewer than two players left there was no contest, so the winner is
// the "No one" sentinel while the score table still reflects whoever
// remains.
func RankAbandoned(users []*domain.Player) Result {
	scores := make([]domain.RankedPlayer, len(users))
	for i, u := range users {
		scores[i] = domain.RankedPlayer{ID: u.ID, Nickname: u.Nickname, Score: u.Score}
	}
	return Result{
		Winners:     []domain.RankedPlayer{{Nickname: "No one", Score: 0}},
		FinalScores: scores,
		Summary:     "No one wins!",
	}
}

func summarize(winners []domain.RankedPlayer, total, top int) string {
	names := make([]string, len(winners))
	for i, w := range winners {
		names[i] = w.Nickname
	}

	switch {
	case len(winners) == 1:
		return fmt.Sprintf("%s wins with %d points!", names[0], top)
	case len(winners) == total:
		return fmt.Sprintf("It's an all-way tie between %s!", joinNames(names))
	default:
		return fmt.Sprintf("%s tie for the win with %d points!", joinNames(names), top)
	}
}

func joinNames(names []string) string {
	if len(names) < 2 {
		return strings.Join(names, "")
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}
