// Package glicko projects a supplementary Glicko-2 singles rating from
// the same replayed match stream. It is a beta companion to the Elo
// leaderboard, surfaced by the bot only; Elo stays canonical.
package glicko

import (
	"sort"

	glicko2 "github.com/zelenin/go-glicko2"

	"github.com/stonehenge-collective/ladderserver/internal/domain"
)

type Interval struct {
	Min float64
	Max float64
}

type PlayerRating struct {
	Player   string
	Rating   float64
	Interval Interval
}

// Ratings folds every decided singles set into a single rating period
// and returns the projected list sorted by rating descending. The 95%
// interval is rating ± two deviations.
func Ratings(matches []domain.Match) []PlayerRating {
	players := make(map[string]*glicko2.Player)
	period := glicko2.NewRatingPeriod()
	player := func(name string) *glicko2.Player {
		p, ok := players[name]
		if !ok {
			p = glicko2.NewPlayer(glicko2.NewRating(1500, 350, 0.06))
			players[name] = p
			period.AddPlayer(p)
		}
		return p
	}

	for _, m := range matches {
		if m.Kind != domain.KindSingles || m.Validate() != nil {
			continue
		}
		for _, s := range m.Sets {
			if s.Tied() || s.GamesA < 0 || s.GamesB < 0 {
				continue
			}
			winner, loser := m.PlayerA, m.PlayerB
			if !s.AWins() {
				winner, loser = loser, winner
			}
			period.AddMatch(player(winner), player(loser), glicko2.MATCH_RESULT_WIN)
		}
	}
	period.Calculate()

	ratings := make([]PlayerRating, 0, len(players))
	for name, p := range players {
		r := p.Rating()
		ratings = append(ratings, PlayerRating{
			Player: name,
			Rating: r.R(),
			Interval: Interval{
				Min: r.R() - 2*r.Rd(),
				Max: r.R() + 2*r.Rd(),
			},
		})
	}
	sort.Slice(ratings, func(i, j int) bool {
		return ratings[i].Player < ratings[j].Player
	})
	sort.SliceStable(ratings, func(i, j int) bool {
		return ratings[i].Rating > ratings[j].Rating
	})
	return ratings
}
