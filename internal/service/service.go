package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/stonehenge-collective/ladderserver/internal/cache/mem"
	"github.com/stonehenge-collective/ladderserver/internal/domain"
	"github.com/stonehenge-collective/ladderserver/internal/glicko"
	"github.com/stonehenge-collective/ladderserver/internal/normalize"
	"github.com/stonehenge-collective/ladderserver/internal/rating"
	"github.com/stonehenge-collective/ladderserver/internal/storage"
)

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrReadOnlySource = errors.New("match source is read only")
	ErrUnknownBoard   = errors.New("unknown leaderboard")
)

// RatingService derives every projection by replaying the full match
// stream supplied by its source. Nothing is persisted between calls;
// the only state is a leaderboard memo invalidated on writes.
type RatingService struct {
	source  storage.MatchSource
	singles *rating.SinglesEngine
	doubles *rating.DoublesEngine
	history *rating.HistoryBuilder
	cache   *mem.Cache
	log     *logrus.Entry
}

func New(l *logrus.Logger, source storage.MatchSource) *RatingService {
	return &RatingService{
		source:  source,
		singles: rating.NewSingles(l),
		doubles: rating.NewDoubles(l),
		history: rating.NewHistory(l),
		cache:   mem.New(),
		log:     l.WithField("from", "rating-service"),
	}
}

func (s *RatingService) SinglesLeaderboard(ctx context.Context) ([]domain.Standing, error) {
	if standings, ok := s.cache.Standings(); ok {
		return standings, nil
	}
	matches, err := s.source.ListMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing matches: %w", err)
	}
	standings := rating.Project(s.singles.Replay(matches))
	s.cache.Update(standings)
	return standings, nil
}

// DoublesLeaderboards projects both doubles spaces: pair entities and
// individual players.
func (s *RatingService) DoublesLeaderboards(ctx context.Context) (teams, players []domain.Standing, err error) {
	matches, err := s.source.ListMatches(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("listing matches: %w", err)
	}
	teamSnap, playerSnap := s.doubles.Replay(matches)
	return rating.Project(teamSnap), rating.Project(playerSnap), nil
}

// Histories rebuilds the chart series for every player.
func (s *RatingService) Histories(ctx context.Context) (map[string]*domain.PlayerHistory, error) {
	matches, err := s.source.ListMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing matches: %w", err)
	}
	return s.history.Replay(matches), nil
}

func (s *RatingService) PlayerHistory(ctx context.Context, player string) (domain.PlayerHistory, error) {
	histories, err := s.Histories(ctx)
	if err != nil {
		return domain.PlayerHistory{}, err
	}
	want := normalize.Name(player)
	for name, h := range histories {
		if normalize.Name(name) == want {
			return *h, nil
		}
	}
	return domain.PlayerHistory{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, player)
}

// GetByName resolves a player's current singles standing, for the
// bot's lookups. Unrated players (only tied sets so far) miss.
func (s *RatingService) GetByName(ctx context.Context, name string) (domain.Standing, error) {
	if standing, ok := s.cache.GetByName(name); ok {
		return standing, nil
	}
	if _, err := s.SinglesLeaderboard(ctx); err != nil {
		return domain.Standing{}, err
	}
	if standing, ok := s.cache.GetByName(name); ok {
		return standing, nil
	}
	return domain.Standing{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, name)
}

// Matches returns the stream newest first for the history page.
func (s *RatingService) Matches(ctx context.Context) ([]domain.Match, error) {
	matches, err := s.source.ListMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing matches: %w", err)
	}
	reverse(matches)
	return matches, nil
}

// Glicko2Top is the beta companion rating; Elo stays canonical.
func (s *RatingService) Glicko2Top(ctx context.Context) ([]glicko.PlayerRating, error) {
	matches, err := s.source.ListMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing matches: %w", err)
	}
	return glicko.Ratings(matches), nil
}

// CreateMatch records a new match when the source supports writes and
// drops the leaderboard memo so the next query replays.
func (s *RatingService) CreateMatch(ctx context.Context, m domain.Match) (domain.Match, error) {
	store, ok := s.source.(storage.MatchStore)
	if !ok {
		return domain.Match{}, ErrReadOnlySource
	}
	created, err := store.Create(ctx, m)
	if err != nil {
		return domain.Match{}, err
	}
	s.cache.Invalidate()
	s.log.WithFields(logrus.Fields{
		"id":   created.ID,
		"kind": created.Kind,
		"date": created.Date.Format("2006-01-02"),
	}).Info("match recorded")
	return created, nil
}

func reverse(m []domain.Match) {
	for i, j := 0, len(m)-1; i < j; i, j = i+1, j-1 {
		m[i], m[j] = m[j], m[i]
	}
}
