package domain

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type MatchKind string

const (
	KindSingles MatchKind = "singles"
	KindDoubles MatchKind = "doubles"
)

// Set holds the games won by each side, positionally aligned to the
// match's participant ordering (side A first), never to the winner.
type Set struct {
	GamesA int
	GamesB int
}

func (s Set) Tied() bool {
	return s.GamesA == s.GamesB
}

// AWins reports whether side A took the set. Undefined for tied sets.
func (s Set) AWins() bool {
	return s.GamesA > s.GamesB
}

// Score renders the set from side A's point of view, e.g. "6-4".
func (s Set) Score() string {
	return strconv.Itoa(s.GamesA) + "-" + strconv.Itoa(s.GamesB)
}

// Reversed renders the set from side B's point of view.
func (s Set) Reversed() string {
	return strconv.Itoa(s.GamesB) + "-" + strconv.Itoa(s.GamesA)
}

// Match is a single recorded ladder match. Singles matches fill PlayerA
// and PlayerB, doubles matches fill Team1 and Team2. SourceRef carries
// the opaque reference of the record's origin (issue number, file name).
type Match struct {
	ID        uuid.UUID
	Kind      MatchKind
	Date      time.Time
	PlayerA   string
	PlayerB   string
	Team1     []string
	Team2     []string
	Sets      []Set
	SourceRef string
	CreatedAt time.Time
}

var (
	ErrMissingPlayers = errors.New("singles match must name exactly two players")
	ErrInvalidTeam    = errors.New("team must have exactly two distinct players")
)

// Validate checks the participant lists. Failures are record-level: the
// caller skips the whole match and reports the diagnostic, it never
// aborts a replay.
func (m Match) Validate() error {
	switch m.Kind {
	case KindSingles:
		if m.PlayerA == "" || m.PlayerB == "" {
			return fmt.Errorf("%w: %q vs %q", ErrMissingPlayers, m.PlayerA, m.PlayerB)
		}
	case KindDoubles:
		for _, team := range [][]string{m.Team1, m.Team2} {
			if len(team) != 2 || team[0] == team[1] || team[0] == "" || team[1] == "" {
				return fmt.Errorf("%w: %v", ErrInvalidTeam, team)
			}
		}
	default:
		return fmt.Errorf("unknown match kind %q", m.Kind)
	}
	return nil
}

// TeamKey builds the canonical order-independent key for a two-player
// team: members sorted lexicographically, joined with ", ".
func TeamKey(players []string) string {
	sorted := make([]string, len(players))
	copy(sorted, players)
	sort.Strings(sorted)
	return strings.Join(sorted, ", ")
}
