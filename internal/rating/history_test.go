package rating

import (
	"testing"

	"github.com/stonehenge-collective/ladderserver/internal/domain"
)

func TestHistorySinglesPoints(t *testing.T) {
	builder := NewHistory(testLogger())
	histories := builder.Replay([]domain.Match{
		singlesMatch("2025-01-10", "alice", "bob", domain.Set{GamesA: 6, GamesB: 4}),
	})

	alice := histories["alice"]
	if alice == nil {
		t.Fatal("no history for alice")
	}
	if len(alice.Singles.Points) != 1 {
		t.Fatalf("alice singles points = %d, want 1", len(alice.Singles.Points))
	}
	p := alice.Singles.Points[0]
	if p.EloBefore != 1200 || p.EloAfter != 1216 || p.Delta != 16 {
		t.Errorf("alice point = %+v, want 1200 -> 1216 (+16)", p)
	}
	if p.Opponent != "bob" || p.Result != domain.Win || p.Score != "6-4" {
		t.Errorf("alice point metadata = %+v", p)
	}

	bob := histories["bob"].Singles.Points[0]
	if bob.EloAfter != 1184 || bob.Result != domain.Loss || bob.Score != "4-6" {
		t.Errorf("bob point = %+v, want 1184, loss, 4-6", bob)
	}
}

func TestHistoryDailyRange(t *testing.T) {
	builder := NewHistory(testLogger())
	histories := builder.Replay([]domain.Match{
		// Three decided sets on one day: alice wins, loses, wins.
		singlesMatch("2025-01-10", "alice", "bob",
			domain.Set{GamesA: 6, GamesB: 4},
			domain.Set{GamesA: 3, GamesB: 6},
			domain.Set{GamesA: 7, GamesB: 5}),
		singlesMatch("2025-01-11", "alice", "bob", domain.Set{GamesA: 6, GamesB: 2}),
	})

	alice := histories["alice"]
	if got := len(alice.Singles.Daily); got != 2 {
		t.Fatalf("daily ranges = %d, want 2", got)
	}

	day1 := alice.Singles.Daily[0]
	points := alice.Singles.Points
	if day1.Open != points[0].EloAfter {
		t.Errorf("day1 open = %v, want first post-set rating %v", day1.Open, points[0].EloAfter)
	}
	if day1.Close != points[2].EloAfter {
		t.Errorf("day1 close = %v, want last post-set rating %v", day1.Close, points[2].EloAfter)
	}
	if day1.High != points[0].EloAfter {
		// 1216 after the first set is the day's peak: the loss drops
		// below it and the final win does not fully recover.
		t.Errorf("day1 high = %v, want %v", day1.High, points[0].EloAfter)
	}
	if day1.Low != points[1].EloAfter {
		t.Errorf("day1 low = %v, want %v", day1.Low, points[1].EloAfter)
	}
	if !(day1.Low <= day1.Open && day1.Open <= day1.High) || !(day1.Low <= day1.Close && day1.Close <= day1.High) {
		t.Errorf("day1 range invariant violated: %+v", day1)
	}

	day2 := alice.Singles.Daily[1]
	if day2.Open != day2.Close || day2.Open != day2.High || day2.High != day2.Low {
		t.Errorf("single-set day should collapse to one value: %+v", day2)
	}
}

func TestHistoryDoublesPoints(t *testing.T) {
	builder := NewHistory(testLogger())
	histories := builder.Replay([]domain.Match{
		doublesMatch("2025-01-10",
			[]string{"alice", "bob"},
			[]string{"carol", "dave"},
			domain.Set{GamesA: 6, GamesB: 3}),
	})

	alice := histories["alice"]
	if len(alice.Doubles.Points) != 1 || len(alice.Singles.Points) != 0 {
		t.Fatalf("alice series split wrong: %d doubles, %d singles",
			len(alice.Doubles.Points), len(alice.Singles.Points))
	}
	p := alice.Doubles.Points[0]
	if p.Partner != "bob" {
		t.Errorf("partner = %q, want bob", p.Partner)
	}
	if p.Opponent != "carol, dave" {
		t.Errorf("opponent = %q, want \"carol, dave\"", p.Opponent)
	}
	if p.Delta != 16 || p.EloAfter != 1216 {
		t.Errorf("point = %+v, want full +16 to 1216", p)
	}

	dave := histories["dave"].Doubles.Points[0]
	if dave.Delta != -16 || dave.Result != domain.Loss || dave.Score != "3-6" {
		t.Errorf("dave point = %+v, want -16, loss, 3-6", dave)
	}
}

func TestHistorySkipsTiedSetsAndInvalidRecords(t *testing.T) {
	builder := NewHistory(testLogger())
	histories := builder.Replay([]domain.Match{
		singlesMatch("2025-01-10", "alice", "bob", domain.Set{GamesA: 4, GamesB: 4}),
		doublesMatch("2025-01-10", []string{"alice"}, []string{"carol", "dave"}, domain.Set{GamesA: 6, GamesB: 3}),
	})
	if len(histories) != 0 {
		t.Errorf("expected no history entries, got %v", histories)
	}
}

func TestHistoryMixedStreamKeepsRunningState(t *testing.T) {
	builder := NewHistory(testLogger())
	histories := builder.Replay([]domain.Match{
		singlesMatch("2025-01-10", "alice", "bob", domain.Set{GamesA: 6, GamesB: 4}),
		singlesMatch("2025-01-11", "alice", "bob", domain.Set{GamesA: 6, GamesB: 4}),
	})
	points := histories["alice"].Singles.Points
	if len(points) != 2 {
		t.Fatalf("points = %d, want 2", len(points))
	}
	if points[1].EloBefore != points[0].EloAfter {
		t.Errorf("second point must start at %v, got %v", points[0].EloAfter, points[1].EloBefore)
	}
	if points[1].Delta >= points[0].Delta {
		t.Errorf("beating the same weaker opponent again must pay less: %v then %v",
			points[0].Delta, points[1].Delta)
	}
}
