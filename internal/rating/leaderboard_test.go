package rating

import (
	"reflect"
	"testing"

	"github.com/stonehenge-collective/ladderserver/internal/domain"
)

func TestProject(t *testing.T) {
	snap := domain.NewSnapshot()
	snap.Ratings["alice"] = 1216.04
	snap.Ratings["bob"] = 1183.96
	snap.Ratings["carol"] = 1250.55
	snap.Stats["alice"] = domain.Stats{SetWins: 1, GameWins: 6, GameLosses: 4}
	snap.Stats["bob"] = domain.Stats{SetLosses: 2, GameWins: 7, GameLosses: 12}
	snap.Stats["carol"] = domain.Stats{SetWins: 1, GameWins: 6, GameLosses: 2}

	got := Project(snap)
	want := []domain.Standing{
		{Rank: 1, Entity: "carol", Rating: 1250.6, Stats: domain.Stats{SetWins: 1, GameWins: 6, GameLosses: 2}},
		{Rank: 2, Entity: "alice", Rating: 1216.0, Stats: domain.Stats{SetWins: 1, GameWins: 6, GameLosses: 4}},
		{Rank: 3, Entity: "bob", Rating: 1184.0, Stats: domain.Stats{SetLosses: 2, GameWins: 7, GameLosses: 12}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Project() = %+v, want %+v", got, want)
	}
}

func TestProjectTiesKeepAlphabeticalOrder(t *testing.T) {
	snap := domain.NewSnapshot()
	snap.Ratings["zoe"] = 1200
	snap.Ratings["amy"] = 1200
	snap.Ratings["mia"] = 1200

	got := Project(snap)
	order := []string{got[0].Entity, got[1].Entity, got[2].Entity}
	want := []string{"amy", "mia", "zoe"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("tie order = %v, want %v", order, want)
	}
	for i, s := range got {
		if s.Rank != i+1 {
			t.Errorf("rank[%d] = %d, want %d", i, s.Rank, i+1)
		}
	}
}

func TestProjectEmpty(t *testing.T) {
	if got := Project(domain.NewSnapshot()); len(got) != 0 {
		t.Errorf("Project(empty) = %v, want empty", got)
	}
}
