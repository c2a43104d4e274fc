package rating

import (
	"math"
	"testing"

	"github.com/stonehenge-collective/ladderserver/internal/domain"
)

func doublesMatch(day string, team1, team2 []string, sets ...domain.Set) domain.Match {
	return domain.Match{
		Kind:  domain.KindDoubles,
		Date:  date(day),
		Team1: team1,
		Team2: team2,
		Sets:  sets,
	}
}

func TestDoublesReplaySingleSet(t *testing.T) {
	engine := NewDoubles(testLogger())
	teams, individuals := engine.Replay([]domain.Match{
		doublesMatch("2025-01-10",
			[]string{"alice", "bob"},
			[]string{"carol", "dave"},
			domain.Set{GamesA: 6, GamesB: 3}),
	})

	// Full (non-halved) delta lands on all four players.
	for player, want := range map[string]float64{
		"alice": 1216, "bob": 1216, "carol": 1184, "dave": 1184,
	} {
		if got := individuals.Ratings[player]; got != want {
			t.Errorf("%s individual rating = %v, want %v", player, got, want)
		}
	}

	winKey := domain.TeamKey([]string{"bob", "alice"})
	loseKey := domain.TeamKey([]string{"dave", "carol"})
	if got := teams.Ratings[winKey]; got != 1216 {
		t.Errorf("team %q rating = %v, want 1216", winKey, got)
	}
	if got := teams.Ratings[loseKey]; got != 1184 {
		t.Errorf("team %q rating = %v, want 1184", loseKey, got)
	}

	wantWin := domain.Stats{SetWins: 1, GameWins: 6, GameLosses: 3}
	if teams.Stats[winKey] != wantWin {
		t.Errorf("team stats = %+v, want %+v", teams.Stats[winKey], wantWin)
	}
	if individuals.Stats["alice"] != wantWin {
		t.Errorf("alice stats = %+v, want %+v", individuals.Stats["alice"], wantWin)
	}
	wantLose := domain.Stats{SetLosses: 1, GameWins: 3, GameLosses: 6}
	if individuals.Stats["dave"] != wantLose {
		t.Errorf("dave stats = %+v, want %+v", individuals.Stats["dave"], wantLose)
	}
}

func TestDoublesDeltaNotHalved(t *testing.T) {
	engine := NewDoubles(testLogger())
	_, individuals := engine.Replay([]domain.Match{
		doublesMatch("2025-01-10",
			[]string{"alice", "bob"},
			[]string{"carol", "dave"},
			domain.Set{GamesA: 6, GamesB: 3}),
	})
	gain := individuals.Ratings["alice"] - 1200
	if math.Abs(gain-16) > 1e-9 {
		t.Fatalf("per-player gain = %v, want the full 16", gain)
	}
	if math.Abs(gain-8) < 1e-9 {
		t.Fatal("per-player gain must not be the halved 8")
	}
}

func TestDoublesTeamZeroSum(t *testing.T) {
	engine := NewDoubles(testLogger())
	teams, _ := engine.Replay([]domain.Match{
		doublesMatch("2025-01-10",
			[]string{"alice", "bob"},
			[]string{"carol", "dave"},
			domain.Set{GamesA: 6, GamesB: 3},
			domain.Set{GamesA: 2, GamesB: 6},
			domain.Set{GamesA: 7, GamesB: 5}),
	})
	var total float64
	for _, r := range teams.Ratings {
		total += r
	}
	if math.Abs(total-2400) > 1e-9 {
		t.Errorf("team rating sum = %v, want 2400", total)
	}
}

func TestDoublesTeamKeyOrderIndependent(t *testing.T) {
	engine := NewDoubles(testLogger())
	teams, _ := engine.Replay([]domain.Match{
		doublesMatch("2025-01-10",
			[]string{"bob", "alice"},
			[]string{"carol", "dave"},
			domain.Set{GamesA: 6, GamesB: 3}),
		doublesMatch("2025-01-11",
			[]string{"alice", "bob"},
			[]string{"dave", "carol"},
			domain.Set{GamesA: 6, GamesB: 3}),
	})
	if len(teams.Ratings) != 2 {
		t.Fatalf("expected 2 team entities, got %d: %v", len(teams.Ratings), teams.Ratings)
	}
	key := domain.TeamKey([]string{"alice", "bob"})
	if teams.Stats[key].SetWins != 2 {
		t.Errorf("team %q set wins = %d, want 2", key, teams.Stats[key].SetWins)
	}
}

func TestDoublesTiedSetAggregatesOnly(t *testing.T) {
	engine := NewDoubles(testLogger())
	teams, individuals := engine.Replay([]domain.Match{
		doublesMatch("2025-01-10",
			[]string{"alice", "bob"},
			[]string{"carol", "dave"},
			domain.Set{GamesA: 4, GamesB: 4}),
	})
	if len(teams.Ratings) != 0 || len(individuals.Ratings) != 0 {
		t.Error("tied set must not move either rating space")
	}
	want := domain.Stats{GameWins: 4, GameLosses: 4}
	if individuals.Stats["carol"] != want {
		t.Errorf("carol stats = %+v, want %+v", individuals.Stats["carol"], want)
	}
}

func TestDoublesInvalidTeamSkipsWholeRecord(t *testing.T) {
	engine := NewDoubles(testLogger())
	tests := []struct {
		name  string
		team1 []string
		team2 []string
	}{
		{name: "one player", team1: []string{"alice"}, team2: []string{"carol", "dave"}},
		{name: "three players", team1: []string{"alice", "bob", "eve"}, team2: []string{"carol", "dave"}},
		{name: "duplicate member", team1: []string{"alice", "alice"}, team2: []string{"carol", "dave"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			teams, individuals := engine.Replay([]domain.Match{
				doublesMatch("2025-01-10", tt.team1, tt.team2, domain.Set{GamesA: 6, GamesB: 3}),
			})
			if len(teams.Ratings) != 0 || len(teams.Stats) != 0 {
				t.Error("invalid record must leave the team space untouched")
			}
			if len(individuals.Ratings) != 0 || len(individuals.Stats) != 0 {
				t.Error("invalid record must leave the individual space untouched")
			}
		})
	}
}

func TestDoublesEffectiveRatingDrivesExpectation(t *testing.T) {
	engine := NewDoubles(testLogger())
	// Lift alice and bob first so the second match is uneven.
	_, individuals := engine.Replay([]domain.Match{
		doublesMatch("2025-01-10",
			[]string{"alice", "bob"},
			[]string{"carol", "dave"},
			domain.Set{GamesA: 6, GamesB: 0}),
		doublesMatch("2025-01-11",
			[]string{"alice", "bob"},
			[]string{"carol", "dave"},
			domain.Set{GamesA: 6, GamesB: 0}),
	})
	firstGain := 16.0
	secondGain := individuals.Ratings["alice"] - 1200 - firstGain
	if secondGain >= firstGain {
		t.Errorf("favored team's second gain %v should shrink below %v", secondGain, firstGain)
	}
}
