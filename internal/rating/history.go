package rating

import (
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/stonehenge-collective/ladderserver/internal/domain"
	"github.com/stonehenge-collective/ladderserver/internal/elo"
)

type HistoryBuilder struct {
	log *logrus.Entry
}

func NewHistory(log *logrus.Logger) *HistoryBuilder {
	return &HistoryBuilder{
		log: log.WithField("engine", "history"),
	}
}

// Replay walks the combined singles+doubles stream and reconstructs,
// per player and match type, the set-level point series and the daily
// open/high/low/close summaries. The per-set update rules are the same
// as the rating engines'; records on the same date keep their source
// order, which fixes daily open/close deterministically.
func (b *HistoryBuilder) Replay(matches []domain.Match) map[string]*domain.PlayerHistory {
	singles := domain.NewSnapshot()
	doubles := domain.NewSnapshot()
	histories := make(map[string]*domain.PlayerHistory)

	for _, m := range matches {
		if err := m.Validate(); err != nil {
			b.log.WithError(err).
				WithField("source", m.SourceRef).
				Warn("skipping record in history replay")
			continue
		}
		switch m.Kind {
		case domain.KindSingles:
			b.applySingles(&singles, histories, m)
		case domain.KindDoubles:
			b.applyDoubles(&doubles, histories, m)
		}
	}

	for _, h := range histories {
		h.Singles.Daily = summarize(h.Singles.Points)
		h.Doubles.Daily = summarize(h.Doubles.Points)
	}
	return histories
}

func (b *HistoryBuilder) applySingles(snap *domain.Snapshot, histories map[string]*domain.PlayerHistory, m domain.Match) {
	for _, s := range m.Sets {
		if s.Tied() || s.GamesA < 0 || s.GamesB < 0 {
			continue
		}
		winner, loser := m.PlayerA, m.PlayerB
		if !s.AWins() {
			winner, loser = loser, winner
		}
		rw := snap.Rating(winner, elo.InitialRating)
		rl := snap.Rating(loser, elo.InitialRating)
		newRW, newRL := elo.Update(rw, rl)
		snap.Ratings[winner], snap.Ratings[loser] = newRW, newRL

		playerHistory(histories, winner).Singles.Points = append(
			playerHistory(histories, winner).Singles.Points,
			domain.HistoryPoint{
				Date:      m.Date,
				Opponent:  loser,
				Score:     sideScore(s, winner == m.PlayerA),
				EloBefore: rw,
				EloAfter:  newRW,
				Delta:     newRW - rw,
				Result:    domain.Win,
				SourceRef: m.SourceRef,
			})
		playerHistory(histories, loser).Singles.Points = append(
			playerHistory(histories, loser).Singles.Points,
			domain.HistoryPoint{
				Date:      m.Date,
				Opponent:  winner,
				Score:     sideScore(s, loser == m.PlayerA),
				EloBefore: rl,
				EloAfter:  newRL,
				Delta:     newRL - rl,
				Result:    domain.Loss,
				SourceRef: m.SourceRef,
			})
	}
}

func (b *HistoryBuilder) applyDoubles(snap *domain.Snapshot, histories map[string]*domain.PlayerHistory, m domain.Match) {
	for _, s := range m.Sets {
		if s.Tied() || s.GamesA < 0 || s.GamesB < 0 {
			continue
		}
		winTeam, loseTeam := m.Team1, m.Team2
		if !s.AWins() {
			winTeam, loseTeam = m.Team2, m.Team1
		}
		delta := elo.K * (1 - elo.Expected(effective(snap, winTeam), effective(snap, loseTeam)))

		for _, p := range winTeam {
			before := snap.Rating(p, elo.InitialRating)
			after := before + delta
			snap.Ratings[p] = after
			playerHistory(histories, p).Doubles.Points = append(
				playerHistory(histories, p).Doubles.Points,
				domain.HistoryPoint{
					Date:      m.Date,
					Opponent:  strings.Join(loseTeam, ", "),
					Partner:   teammate(winTeam, p),
					Score:     sideScore(s, sameTeam(winTeam, m.Team1)),
					EloBefore: before,
					EloAfter:  after,
					Delta:     delta,
					Result:    domain.Win,
					SourceRef: m.SourceRef,
				})
		}
		for _, p := range loseTeam {
			before := snap.Rating(p, elo.InitialRating)
			after := before - delta
			snap.Ratings[p] = after
			playerHistory(histories, p).Doubles.Points = append(
				playerHistory(histories, p).Doubles.Points,
				domain.HistoryPoint{
					Date:      m.Date,
					Opponent:  strings.Join(winTeam, ", "),
					Partner:   teammate(loseTeam, p),
					Score:     sideScore(s, sameTeam(loseTeam, m.Team1)),
					EloBefore: before,
					EloAfter:  after,
					Delta:     -delta,
					Result:    domain.Loss,
					SourceRef: m.SourceRef,
				})
		}
	}
}

func playerHistory(histories map[string]*domain.PlayerHistory, player string) *domain.PlayerHistory {
	h, ok := histories[player]
	if !ok {
		h = &domain.PlayerHistory{Player: player}
		histories[player] = h
	}
	return h
}

func sideScore(s domain.Set, onSideA bool) string {
	if onSideA {
		return s.Score()
	}
	return s.Reversed()
}

func teammate(team []string, player string) string {
	if team[0] == player {
		return team[1]
	}
	return team[0]
}

func sameTeam(a, b []string) bool {
	return domain.TeamKey(a) == domain.TeamKey(b)
}

// summarize collapses a chronological point series into one range per
// active day. Points arrive date-ordered, so each day's open is its
// first post-set rating and close its last.
func summarize(points []domain.HistoryPoint) []domain.DailyRange {
	byDay := make(map[string]*domain.DailyRange)
	var order []string
	for _, p := range points {
		day := p.Date.Format("2006-01-02")
		r, ok := byDay[day]
		if !ok {
			byDay[day] = &domain.DailyRange{
				Date:  p.Date,
				Open:  p.EloAfter,
				High:  p.EloAfter,
				Low:   p.EloAfter,
				Close: p.EloAfter,
			}
			order = append(order, day)
			continue
		}
		if p.EloAfter > r.High {
			r.High = p.EloAfter
		}
		if p.EloAfter < r.Low {
			r.Low = p.EloAfter
		}
		r.Close = p.EloAfter
	}
	sort.Strings(order)
	daily := make([]domain.DailyRange, 0, len(order))
	for _, day := range order {
		daily = append(daily, *byDay[day])
	}
	return daily
}
