package rating

import (
	"github.com/sirupsen/logrus"

	"github.com/stonehenge-collective/ladderserver/internal/domain"
	"github.com/stonehenge-collective/ladderserver/internal/elo"
)

type DoublesEngine struct {
	log *logrus.Entry
}

func NewDoubles(log *logrus.Logger) *DoublesEngine {
	return &DoublesEngine{
		log: log.WithField("engine", "doubles"),
	}
}

// Replay folds every doubles match into two parallel snapshots: one
// keyed by normalized team, one by individual player. A record that
// fails team validation is skipped whole; neither space sees it.
func (e *DoublesEngine) Replay(matches []domain.Match) (teams, individuals domain.Snapshot) {
	teams = domain.NewSnapshot()
	individuals = domain.NewSnapshot()
	for _, m := range matches {
		if m.Kind != domain.KindDoubles {
			continue
		}
		if err := m.Validate(); err != nil {
			e.log.WithError(err).
				WithField("source", m.SourceRef).
				Warn("skipping doubles record")
			continue
		}
		applyDoubles(&teams, &individuals, m)
	}
	return teams, individuals
}

func applyDoubles(teams, individuals *domain.Snapshot, m domain.Match) {
	key1 := domain.TeamKey(m.Team1)
	key2 := domain.TeamKey(m.Team2)

	for _, s := range m.Sets {
		if s.GamesA < 0 || s.GamesB < 0 {
			continue
		}

		addGames(teams, key1, s.GamesA, s.GamesB)
		addGames(teams, key2, s.GamesB, s.GamesA)
		for _, p := range m.Team1 {
			addGames(individuals, p, s.GamesA, s.GamesB)
		}
		for _, p := range m.Team2 {
			addGames(individuals, p, s.GamesB, s.GamesA)
		}

		if s.Tied() {
			continue
		}

		winKey, loseKey := key1, key2
		winTeam, loseTeam := m.Team1, m.Team2
		if !s.AWins() {
			winKey, loseKey = key2, key1
			winTeam, loseTeam = m.Team2, m.Team1
		}

		// Team space: the pair is a single opaque entity.
		rw := teams.Rating(winKey, elo.InitialRating)
		rl := teams.Rating(loseKey, elo.InitialRating)
		teams.Ratings[winKey], teams.Ratings[loseKey] = elo.Update(rw, rl)
		addSetOutcome(teams, winKey, loseKey)

		// Individual space: expectation runs between the two effective
		// (mean) ratings, the full delta lands on all four players.
		delta := elo.K * (1 - elo.Expected(effective(individuals, winTeam), effective(individuals, loseTeam)))
		for _, p := range winTeam {
			individuals.Ratings[p] = individuals.Rating(p, elo.InitialRating) + delta
			st := individuals.Stats[p]
			st.SetWins++
			individuals.Stats[p] = st
		}
		for _, p := range loseTeam {
			individuals.Ratings[p] = individuals.Rating(p, elo.InitialRating) - delta
			st := individuals.Stats[p]
			st.SetLosses++
			individuals.Stats[p] = st
		}
	}
}

func effective(snap *domain.Snapshot, team []string) float64 {
	return (snap.Rating(team[0], elo.InitialRating) + snap.Rating(team[1], elo.InitialRating)) / 2
}
