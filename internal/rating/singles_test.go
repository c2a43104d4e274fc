package rating

import (
	"io"
	"math"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/stonehenge-collective/ladderserver/internal/domain"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func singlesMatch(day, a, b string, sets ...domain.Set) domain.Match {
	return domain.Match{
		Kind:    domain.KindSingles,
		Date:    date(day),
		PlayerA: a,
		PlayerB: b,
		Sets:    sets,
	}
}

func TestSinglesReplaySingleSet(t *testing.T) {
	engine := NewSingles(testLogger())
	snap := engine.Replay([]domain.Match{
		singlesMatch("2025-01-10", "alice", "bob", domain.Set{GamesA: 6, GamesB: 4}),
	})

	if got := snap.Ratings["alice"]; got != 1216 {
		t.Errorf("alice rating = %v, want 1216", got)
	}
	if got := snap.Ratings["bob"]; got != 1184 {
		t.Errorf("bob rating = %v, want 1184", got)
	}
	wantAlice := domain.Stats{SetWins: 1, GameWins: 6, GameLosses: 4}
	if snap.Stats["alice"] != wantAlice {
		t.Errorf("alice stats = %+v, want %+v", snap.Stats["alice"], wantAlice)
	}
	wantBob := domain.Stats{SetLosses: 1, GameWins: 4, GameLosses: 6}
	if snap.Stats["bob"] != wantBob {
		t.Errorf("bob stats = %+v, want %+v", snap.Stats["bob"], wantBob)
	}
}

func TestSinglesReplayZeroSum(t *testing.T) {
	engine := NewSingles(testLogger())
	snap := engine.Replay([]domain.Match{
		singlesMatch("2025-01-10", "alice", "bob",
			domain.Set{GamesA: 6, GamesB: 4},
			domain.Set{GamesA: 3, GamesB: 6},
			domain.Set{GamesA: 7, GamesB: 5},
		),
	})
	total := snap.Ratings["alice"] + snap.Ratings["bob"]
	if math.Abs(total-2400) > 1e-9 {
		t.Errorf("rating sum = %v, want 2400 (zero-sum exchanges)", total)
	}
}

func TestSinglesTiedSet(t *testing.T) {
	engine := NewSingles(testLogger())
	snap := engine.Replay([]domain.Match{
		singlesMatch("2025-01-10", "alice", "bob", domain.Set{GamesA: 5, GamesB: 5}),
	})

	if _, ok := snap.Ratings["alice"]; ok {
		t.Error("tied set must not create a rating entry")
	}
	wantAlice := domain.Stats{GameWins: 5, GameLosses: 5}
	if snap.Stats["alice"] != wantAlice {
		t.Errorf("alice stats = %+v, want %+v", snap.Stats["alice"], wantAlice)
	}
	if snap.Stats["bob"] != wantAlice {
		t.Errorf("bob stats = %+v, want %+v", snap.Stats["bob"], wantAlice)
	}
	if snap.Stats["alice"].SetWins != 0 || snap.Stats["bob"].SetLosses != 0 {
		t.Error("tied set must not count a set outcome")
	}
}

func TestSinglesPathDependence(t *testing.T) {
	m1 := singlesMatch("2025-01-10", "alice", "bob", domain.Set{GamesA: 6, GamesB: 4})
	m2 := singlesMatch("2025-01-11", "carol", "alice", domain.Set{GamesA: 6, GamesB: 2})

	engine := NewSingles(testLogger())
	forward := engine.Replay([]domain.Match{m1, m2})
	backward := engine.Replay([]domain.Match{m2, m1})

	if forward.Ratings["alice"] == backward.Ratings["alice"] {
		t.Errorf("replay order must matter: both orders gave alice %v", forward.Ratings["alice"])
	}
	// carol beats a 1216 alice in forward order, a 1200 alice in
	// backward order, so her reward differs too.
	if forward.Ratings["carol"] <= backward.Ratings["carol"] {
		t.Errorf("carol forward %v should exceed backward %v",
			forward.Ratings["carol"], backward.Ratings["carol"])
	}
}

func TestSinglesReplayDeterministic(t *testing.T) {
	matches := []domain.Match{
		singlesMatch("2025-01-10", "alice", "bob", domain.Set{GamesA: 6, GamesB: 4}, domain.Set{GamesA: 4, GamesB: 6}),
		singlesMatch("2025-01-11", "bob", "carol", domain.Set{GamesA: 6, GamesB: 0}),
		singlesMatch("2025-01-12", "carol", "alice", domain.Set{GamesA: 7, GamesB: 6}),
	}
	engine := NewSingles(testLogger())
	first := engine.Replay(matches)
	second := engine.Replay(matches)
	for player, r := range first.Ratings {
		if second.Ratings[player] != r {
			t.Errorf("replay not deterministic for %s: %v vs %v", player, r, second.Ratings[player])
		}
	}
}

func TestSinglesSkipsInvalidRecords(t *testing.T) {
	engine := NewSingles(testLogger())
	snap := engine.Replay([]domain.Match{
		{Kind: domain.KindSingles, Date: date("2025-01-09"), PlayerA: "alice", Sets: []domain.Set{{GamesA: 6, GamesB: 1}}},
		singlesMatch("2025-01-10", "alice", "bob", domain.Set{GamesA: 6, GamesB: 4}),
	})
	if got := snap.Ratings["alice"]; got != 1216 {
		t.Errorf("alice rating = %v, want 1216 (invalid record skipped, valid one applied)", got)
	}
}

func TestSinglesSkipsMalformedSets(t *testing.T) {
	engine := NewSingles(testLogger())
	snap := engine.Replay([]domain.Match{
		singlesMatch("2025-01-10", "alice", "bob",
			domain.Set{GamesA: -1, GamesB: 4},
			domain.Set{GamesA: 6, GamesB: 4},
		),
	})
	if got := snap.Ratings["alice"]; got != 1216 {
		t.Errorf("alice rating = %v, want 1216 (malformed set skipped, rest applied)", got)
	}
	if got := snap.Stats["alice"].GameWins; got != 6 {
		t.Errorf("alice game wins = %v, want 6", got)
	}
}
