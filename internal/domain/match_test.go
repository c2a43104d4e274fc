package domain

import (
	"errors"
	"testing"
)

func TestTeamKey(t *testing.T) {
	tests := []struct {
		name    string
		players []string
		want    string
	}{
		{name: "already sorted", players: []string{"alice", "bob"}, want: "alice, bob"},
		{name: "reversed", players: []string{"bob", "alice"}, want: "alice, bob"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TeamKey(tt.players); got != tt.want {
				t.Errorf("TeamKey(%v) = %q, want %q", tt.players, got, tt.want)
			}
		})
	}
	if TeamKey([]string{"a", "b"}) != TeamKey([]string{"b", "a"}) {
		t.Error("TeamKey must be order independent")
	}
}

func TestMatchValidate(t *testing.T) {
	tests := []struct {
		name    string
		match   Match
		wantErr error
	}{
		{
			name:  "valid singles",
			match: Match{Kind: KindSingles, PlayerA: "alice", PlayerB: "bob"},
		},
		{
			name:    "singles missing player",
			match:   Match{Kind: KindSingles, PlayerA: "alice"},
			wantErr: ErrMissingPlayers,
		},
		{
			name: "valid doubles",
			match: Match{
				Kind:  KindDoubles,
				Team1: []string{"alice", "bob"},
				Team2: []string{"carol", "dave"},
			},
		},
		{
			name: "team too small",
			match: Match{
				Kind:  KindDoubles,
				Team1: []string{"alice"},
				Team2: []string{"carol", "dave"},
			},
			wantErr: ErrInvalidTeam,
		},
		{
			name: "team too big",
			match: Match{
				Kind:  KindDoubles,
				Team1: []string{"alice", "bob"},
				Team2: []string{"carol", "dave", "eve"},
			},
			wantErr: ErrInvalidTeam,
		},
		{
			name: "duplicate member",
			match: Match{
				Kind:  KindDoubles,
				Team1: []string{"alice", "alice"},
				Team2: []string{"carol", "dave"},
			},
			wantErr: ErrInvalidTeam,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.match.Validate()
			if tt.wantErr == nil && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSetScore(t *testing.T) {
	s := Set{GamesA: 6, GamesB: 4}
	if s.Score() != "6-4" || s.Reversed() != "4-6" {
		t.Errorf("Score/Reversed = %q/%q", s.Score(), s.Reversed())
	}
	if s.Tied() || !s.AWins() {
		t.Error("6-4 is a decided set for side A")
	}
	if !(Set{GamesA: 3, GamesB: 3}).Tied() {
		t.Error("3-3 is tied")
	}
}
