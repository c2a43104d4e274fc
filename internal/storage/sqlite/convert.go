package sqlite

import (
	"fmt"
	"time"

	"github.com/stonehenge-collective/ladderserver/gen/model"
	"github.com/stonehenge-collective/ladderserver/internal/domain"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

func convertMatchToDomain(row matchRow) (domain.Match, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return domain.Match{}, fmt.Errorf("parsing match id: %w", err)
	}
	date, err := time.Parse(dateLayout, row.Date)
	if err != nil {
		return domain.Match{}, fmt.Errorf("parsing match date %q: %w", row.Date, err)
	}

	m := domain.Match{
		ID:        id,
		Kind:      domain.MatchKind(row.Kind),
		Date:      date,
		SourceRef: deref(row.SourceRef),
		CreatedAt: row.CreatedAt,
	}
	switch m.Kind {
	case domain.KindSingles:
		m.PlayerA = deref(row.PlayerA)
		m.PlayerB = deref(row.PlayerB)
	case domain.KindDoubles:
		m.Team1 = []string{deref(row.Team1a), deref(row.Team1b)}
		m.Team2 = []string{deref(row.Team2a), deref(row.Team2b)}
	default:
		return domain.Match{}, fmt.Errorf("unknown match kind %q", row.Kind)
	}

	for _, set := range row.Sets {
		m.Sets = append(m.Sets, domain.Set{
			GamesA: int(set.GamesA),
			GamesB: int(set.GamesB),
		})
	}
	return m, nil
}

func convertMatchFromDomain(m domain.Match) model.Matches {
	row := model.Matches{
		ID:        m.ID.String(),
		Kind:      string(m.Kind),
		Date:      m.Date.Format(dateLayout),
		SourceRef: refOrNil(m.SourceRef),
		CreatedAt: m.CreatedAt,
	}
	switch m.Kind {
	case domain.KindSingles:
		row.PlayerA = &m.PlayerA
		row.PlayerB = &m.PlayerB
	case domain.KindDoubles:
		row.Team1a = &m.Team1[0]
		row.Team1b = &m.Team1[1]
		row.Team2a = &m.Team2[0]
		row.Team2b = &m.Team2[1]
	}
	return row
}

func convertSetsFromDomain(m domain.Match) []model.Sets {
	sets := make([]model.Sets, 0, len(m.Sets))
	for i, s := range m.Sets {
		sets = append(sets, model.Sets{
			MatchID: m.ID.String(),
			Seq:     int32(i),
			GamesA:  int32(s.GamesA),
			GamesB:  int32(s.GamesB),
		})
	}
	return sets
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func refOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
