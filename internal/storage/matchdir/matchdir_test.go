package matchdir

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/stonehenge-collective/ladderserver/internal/domain"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestListMatchesOrdering(t *testing.T) {
	singles := t.TempDir()
	doubles := t.TempDir()

	writeFile(t, singles, "2025-01-11-7.yml", `date: "2025-01-11"
players: ["@alice", "@bob"]
sets:
  - [6, 4]
`)
	writeFile(t, singles, "2025-01-10-3.yml", `date: "2025-01-10"
players: ["@carol", "@alice"]
sets:
  - [2, 6]
  - [6, 3]
`)
	writeFile(t, doubles, "2025-01-10-5.yml", `date: "2025-01-10"
team1: ["@alice", "@bob"]
team2: ["@carol", "@dave"]
sets:
  - [6, 3]
`)

	source := New(testLogger(), singles, doubles)
	matches, err := source.ListMatches(context.Background())
	require.NoError(t, err)
	require.Len(t, matches, 3)

	refs := []string{matches[0].SourceRef, matches[1].SourceRef, matches[2].SourceRef}
	require.Equal(t, []string{"2025-01-10-3", "2025-01-10-5", "2025-01-11-7"}, refs)

	require.Equal(t, domain.KindSingles, matches[0].Kind)
	require.Equal(t, "carol", matches[0].PlayerA)
	require.Equal(t, []domain.Set{{GamesA: 2, GamesB: 6}, {GamesA: 6, GamesB: 3}}, matches[0].Sets)

	require.Equal(t, domain.KindDoubles, matches[1].Kind)
	require.Equal(t, []string{"alice", "bob"}, matches[1].Team1)
	require.Equal(t, []string{"carol", "dave"}, matches[1].Team2)
}

func TestListMatchesSkipsMalformedFiles(t *testing.T) {
	singles := t.TempDir()
	writeFile(t, singles, "2025-01-09-1.yml", "date: [not a date\n")
	writeFile(t, singles, "2025-01-09-2.yml", `date: "not-a-date"
players: ["a", "b"]
sets: [[6, 4]]
`)
	writeFile(t, singles, "2025-01-10-3.yml", `date: "2025-01-10"
players: ["@alice", "@bob"]
sets: [[6, 4]]
`)

	source := New(testLogger(), singles, "")
	matches, err := source.ListMatches(context.Background())
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, "2025-01-10-3", matches[0].SourceRef)
}

func TestListMatchesSkipsMalformedSetEntries(t *testing.T) {
	singles := t.TempDir()
	writeFile(t, singles, "2025-01-10-1.yml", `date: "2025-01-10"
players: ["@alice", "@bob"]
sets:
  - [6, 4]
  - [6]
  - ["six", 2]
  - ["7", "5"]
`)

	source := New(testLogger(), singles, "")
	matches, err := source.ListMatches(context.Background())
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, []domain.Set{{GamesA: 6, GamesB: 4}, {GamesA: 7, GamesB: 5}}, matches[0].Sets)
}

func TestListMatchesMissingDir(t *testing.T) {
	source := New(testLogger(), filepath.Join(t.TempDir(), "nope"), "")
	matches, err := source.ListMatches(context.Background())
	require.NoError(t, err)
	require.Empty(t, matches)
}
