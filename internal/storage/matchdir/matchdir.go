// Package matchdir reads match records from directories of yaml files,
// one match per file, named <date>-<reference>.yml.
package matchdir

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/stonehenge-collective/ladderserver/internal/domain"
	"github.com/stonehenge-collective/ladderserver/internal/normalize"
	"github.com/stonehenge-collective/ladderserver/internal/storage"
)

type Source struct {
	singlesDir string
	doublesDir string
	log        *logrus.Entry
}

var _ storage.MatchSource = (*Source)(nil)

func New(l *logrus.Logger, singlesDir, doublesDir string) *Source {
	return &Source{
		singlesDir: singlesDir,
		doublesDir: doublesDir,
		log:        l.WithField("from", "matchdir"),
	}
}

// ListMatches reads every yaml record from both directories and returns
// them sorted by date, then by file name. Unreadable or unparseable
// files are logged and skipped; a missing directory yields no records
// rather than an error, so a singles-only ladder still replays.
func (s *Source) ListMatches(ctx context.Context) ([]domain.Match, error) {
	var matches []domain.Match
	for _, dir := range []struct {
		path string
		kind domain.MatchKind
	}{
		{path: s.singlesDir, kind: domain.KindSingles},
		{path: s.doublesDir, kind: domain.KindDoubles},
	} {
		if dir.path == "" {
			continue
		}
		loaded, err := s.readDir(ctx, dir.path, dir.kind)
		if err != nil {
			return nil, err
		}
		matches = append(matches, loaded...)
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if !matches[i].Date.Equal(matches[j].Date) {
			return matches[i].Date.Before(matches[j].Date)
		}
		return matches[i].SourceRef < matches[j].SourceRef
	})
	return matches, nil
}

func (s *Source) readDir(ctx context.Context, dir string, kind domain.MatchKind) ([]domain.Match, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.WithField("dir", dir).Debug("match directory missing, nothing to replay")
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yml") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	matches := make([]domain.Match, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m, err := s.readFile(filepath.Join(dir, name), kind)
		if err != nil {
			s.log.WithError(err).WithField("file", name).Warn("skipping match file")
			continue
		}
		matches = append(matches, m)
	}
	return matches, nil
}

type fileRecord struct {
	Date        string  `yaml:"date"`
	Players     []string `yaml:"players"`
	Team1       []string `yaml:"team1"`
	Team2       []string `yaml:"team2"`
	Sets        [][]any  `yaml:"sets"`
	SourceIssue *int     `yaml:"source_issue"`
}

func (s *Source) readFile(path string, kind domain.MatchKind) (domain.Match, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Match{}, err
	}
	var rec fileRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return domain.Match{}, fmt.Errorf("parsing yaml: %w", err)
	}
	date, err := time.Parse("2006-01-02", rec.Date)
	if err != nil {
		return domain.Match{}, fmt.Errorf("parsing date %q: %w", rec.Date, err)
	}

	m := domain.Match{
		Kind:      kind,
		Date:      date,
		SourceRef: strings.TrimSuffix(filepath.Base(path), ".yml"),
	}
	switch kind {
	case domain.KindSingles:
		if len(rec.Players) != 2 {
			return domain.Match{}, fmt.Errorf("expected two players, got %d", len(rec.Players))
		}
		m.PlayerA = normalize.Handle(rec.Players[0])
		m.PlayerB = normalize.Handle(rec.Players[1])
	case domain.KindDoubles:
		m.Team1 = handles(rec.Team1)
		m.Team2 = handles(rec.Team2)
	}

	// Malformed set entries (wrong arity, non-numeric games) are
	// dropped one by one; the rest of the match still applies.
	for _, raw := range rec.Sets {
		set, ok := parseSet(raw)
		if !ok {
			s.log.WithFields(logrus.Fields{
				"file": filepath.Base(path),
				"set":  fmt.Sprint(raw),
			}).Warn("skipping malformed set entry")
			continue
		}
		m.Sets = append(m.Sets, set)
	}
	return m, nil
}

func handles(players []string) []string {
	out := make([]string, 0, len(players))
	for _, p := range players {
		out = append(out, normalize.Handle(p))
	}
	return out
}

func parseSet(raw []any) (domain.Set, bool) {
	if len(raw) != 2 {
		return domain.Set{}, false
	}
	a, ok := games(raw[0])
	if !ok {
		return domain.Set{}, false
	}
	b, ok := games(raw[1])
	if !ok {
		return domain.Set{}, false
	}
	if a < 0 || b < 0 {
		return domain.Set{}, false
	}
	return domain.Set{GamesA: a, GamesB: b}, true
}

func games(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
