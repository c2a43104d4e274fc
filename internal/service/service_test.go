package service

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stonehenge-collective/ladderserver/internal/domain"
)

type fakeSource struct {
	matches []domain.Match
}

func (f *fakeSource) ListMatches(_ context.Context) ([]domain.Match, error) {
	out := make([]domain.Match, len(f.matches))
	copy(out, f.matches)
	return out, nil
}

type fakeStore struct {
	fakeSource
}

func (f *fakeStore) Create(_ context.Context, m domain.Match) (domain.Match, error) {
	f.matches = append(f.matches, m)
	return m, nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func fixtureMatches() []domain.Match {
	return []domain.Match{
		{
			Kind:    domain.KindSingles,
			Date:    day("2025-01-10"),
			PlayerA: "alice",
			PlayerB: "bob",
			Sets:    []domain.Set{{GamesA: 6, GamesB: 4}},
		},
		{
			Kind:  domain.KindDoubles,
			Date:  day("2025-01-11"),
			Team1: []string{"alice", "bob"},
			Team2: []string{"carol", "dave"},
			Sets:  []domain.Set{{GamesA: 6, GamesB: 3}},
		},
	}
}

func TestSinglesLeaderboard(t *testing.T) {
	svc := New(testLogger(), &fakeSource{matches: fixtureMatches()})

	standings, err := svc.SinglesLeaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, standings, 2)

	assert.Equal(t, "alice", standings[0].Entity)
	assert.Equal(t, 1216.0, standings[0].Rating)
	assert.Equal(t, 1, standings[0].Rank)
	assert.Equal(t, "bob", standings[1].Entity)
	assert.Equal(t, 1184.0, standings[1].Rating)
}

func TestDoublesLeaderboards(t *testing.T) {
	svc := New(testLogger(), &fakeSource{matches: fixtureMatches()})

	teams, players, err := svc.DoublesLeaderboards(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 2)
	require.Len(t, players, 4)

	assert.Equal(t, "alice, bob", teams[0].Entity)
	assert.Equal(t, 1216.0, teams[0].Rating)
	assert.Equal(t, 1216.0, players[0].Rating)
	// alice sorts before bob on the tied winning rating.
	assert.Equal(t, "alice", players[0].Entity)
}

func TestPlayerHistoryLookupIsCaseInsensitive(t *testing.T) {
	svc := New(testLogger(), &fakeSource{matches: fixtureMatches()})

	h, err := svc.PlayerHistory(context.Background(), "@Alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", h.Player)
	assert.Len(t, h.Singles.Points, 1)
	assert.Len(t, h.Doubles.Points, 1)

	_, err = svc.PlayerHistory(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestGetByName(t *testing.T) {
	svc := New(testLogger(), &fakeSource{matches: fixtureMatches()})

	standing, err := svc.GetByName(context.Background(), "ALICE")
	require.NoError(t, err)
	assert.Equal(t, "alice", standing.Entity)

	_, err = svc.GetByName(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestCreateMatchInvalidatesLeaderboard(t *testing.T) {
	store := &fakeStore{}
	svc := New(testLogger(), store)

	standings, err := svc.SinglesLeaderboard(context.Background())
	require.NoError(t, err)
	assert.Empty(t, standings)

	_, err = svc.CreateMatch(context.Background(), fixtureMatches()[0])
	require.NoError(t, err)

	standings, err = svc.SinglesLeaderboard(context.Background())
	require.NoError(t, err)
	assert.Len(t, standings, 2)
}

func TestCreateMatchReadOnlySource(t *testing.T) {
	svc := New(testLogger(), &fakeSource{})
	_, err := svc.CreateMatch(context.Background(), fixtureMatches()[0])
	assert.ErrorIs(t, err, ErrReadOnlySource)
}

func TestMatchesNewestFirst(t *testing.T) {
	svc := New(testLogger(), &fakeSource{matches: fixtureMatches()})
	matches, err := svc.Matches(context.Background())
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, domain.KindDoubles, matches[0].Kind)
}

func TestExportCSV(t *testing.T) {
	svc := New(testLogger(), &fakeSource{matches: fixtureMatches()})

	out, err := svc.ExportCSV(context.Background(), BoardSingles)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "player,rating,set_wins,set_losses,game_wins,game_losses", lines[0])
	assert.Equal(t, "alice,1216.0,1,0,6,4", lines[1])
	assert.Equal(t, "bob,1184.0,0,1,4,6", lines[2])

	out, err = svc.ExportCSV(context.Background(), BoardDoublesTeams)
	require.NoError(t, err)
	assert.Contains(t, string(out), "team,rating,")
	assert.Contains(t, string(out), `"alice, bob",1216.0,1,0,6,3`)

	_, err = svc.ExportCSV(context.Background(), Board("nope"))
	assert.ErrorIs(t, err, ErrUnknownBoard)
}
