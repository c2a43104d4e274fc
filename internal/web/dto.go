package web

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/stonehenge-collective/ladderserver/internal/domain"
	"github.com/stonehenge-collective/ladderserver/internal/normalize"
)

type createMatch struct {
	Kind    string
	PlayerA string
	PlayerB string
	Team1   [2]string
	Team2   [2]string
	Date    string
	Sets    string
}

var (
	ErrMissingPlayer = errors.New("both players are required")
	ErrMissingTeam   = errors.New("both teams need two players each")
	ErrUnknownKind   = errors.New("match type must be singles or doubles")
	ErrNoSets        = errors.New("at least one set is required")
	ErrBadSet        = errors.New("sets must look like 6-4")
	ErrBadDate       = errors.New("date must look like 2006-01-02")
)

func (c createMatch) Validate() error {
	var err error
	switch c.Kind {
	case "singles":
		if c.PlayerA == "" || c.PlayerB == "" {
			err = errors.Join(err, ErrMissingPlayer)
		}
	case "doubles":
		for _, name := range append(c.Team1[:], c.Team2[:]...) {
			if name == "" {
				err = errors.Join(err, ErrMissingTeam)
				break
			}
		}
	default:
		err = errors.Join(err, ErrUnknownKind)
	}
	if _, setErr := parseSetList(c.Sets); setErr != nil {
		err = errors.Join(err, setErr)
	}
	if c.Date != "" {
		if _, dateErr := time.Parse("2006-01-02", c.Date); dateErr != nil {
			err = errors.Join(err, ErrBadDate)
		}
	}
	return err
}

func (c createMatch) convertToDomainMatch() (domain.Match, error) {
	sets, err := parseSetList(c.Sets)
	if err != nil {
		return domain.Match{}, err
	}
	date := time.Now()
	if c.Date != "" {
		date, err = time.Parse("2006-01-02", c.Date)
		if err != nil {
			return domain.Match{}, err
		}
	}
	m := domain.Match{
		Date: date,
		Sets: sets,
	}
	switch c.Kind {
	case "singles":
		m.Kind = domain.KindSingles
		m.PlayerA = normalize.Name(c.PlayerA)
		m.PlayerB = normalize.Name(c.PlayerB)
	case "doubles":
		m.Kind = domain.KindDoubles
		m.Team1 = []string{normalize.Name(c.Team1[0]), normalize.Name(c.Team1[1])}
		m.Team2 = []string{normalize.Name(c.Team2[0]), normalize.Name(c.Team2[1])}
	default:
		return domain.Match{}, ErrUnknownKind
	}
	return m, nil
}

// parseSetList reads a whitespace separated list of scores, "6-4 7-5".
func parseSetList(raw string) ([]domain.Set, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil, ErrNoSets
	}
	sets := make([]domain.Set, 0, len(fields))
	for _, field := range fields {
		a, b, ok := strings.Cut(field, "-")
		if !ok {
			return nil, ErrBadSet
		}
		gamesA, err := strconv.Atoi(a)
		if err != nil || gamesA < 0 {
			return nil, ErrBadSet
		}
		gamesB, err := strconv.Atoi(b)
		if err != nil || gamesB < 0 {
			return nil, ErrBadSet
		}
		sets = append(sets, domain.Set{GamesA: gamesA, GamesB: gamesB})
	}
	return sets, nil
}
