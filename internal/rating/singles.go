// Package rating holds the replay engines. Every projection in the
// server is a pure fold over the chronologically ordered match stream;
// nothing here persists state between runs.
package rating

import (
	"github.com/sirupsen/logrus"

	"github.com/stonehenge-collective/ladderserver/internal/domain"
	"github.com/stonehenge-collective/ladderserver/internal/elo"
)

type SinglesEngine struct {
	log *logrus.Entry
}

func NewSingles(log *logrus.Logger) *SinglesEngine {
	return &SinglesEngine{
		log: log.WithField("engine", "singles"),
	}
}

// Replay folds every singles match into a fresh snapshot. Matches must
// already be sorted by (date, source order); ratings are path dependent
// and a different order is a caller bug, not an alternative result.
func (e *SinglesEngine) Replay(matches []domain.Match) domain.Snapshot {
	snap := domain.NewSnapshot()
	for _, m := range matches {
		if m.Kind != domain.KindSingles {
			continue
		}
		if err := m.Validate(); err != nil {
			e.log.WithError(err).
				WithField("source", m.SourceRef).
				Warn("skipping singles record")
			continue
		}
		applySingles(&snap, m)
	}
	return snap
}

func applySingles(snap *domain.Snapshot, m domain.Match) {
	for _, s := range m.Sets {
		if s.GamesA < 0 || s.GamesB < 0 {
			continue
		}

		// Game totals fold reciprocally even when the set is tied.
		addGames(snap, m.PlayerA, s.GamesA, s.GamesB)
		addGames(snap, m.PlayerB, s.GamesB, s.GamesA)

		if s.Tied() {
			continue
		}

		winner, loser := m.PlayerA, m.PlayerB
		if !s.AWins() {
			winner, loser = loser, winner
		}
		rw := snap.Rating(winner, elo.InitialRating)
		rl := snap.Rating(loser, elo.InitialRating)
		snap.Ratings[winner], snap.Ratings[loser] = elo.Update(rw, rl)
		addSetOutcome(snap, winner, loser)
	}
}

func addGames(snap *domain.Snapshot, entity string, won, lost int) {
	st := snap.Stats[entity]
	st.GameWins += won
	st.GameLosses += lost
	snap.Stats[entity] = st
}

func addSetOutcome(snap *domain.Snapshot, winner, loser string) {
	w := snap.Stats[winner]
	w.SetWins++
	snap.Stats[winner] = w

	l := snap.Stats[loser]
	l.SetLosses++
	snap.Stats[loser] = l
}
