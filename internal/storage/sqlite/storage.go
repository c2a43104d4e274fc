package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/stonehenge-collective/ladderserver/gen/model"
	"github.com/stonehenge-collective/ladderserver/gen/table"
	"github.com/stonehenge-collective/ladderserver/internal/domain"
	sqlite3 "github.com/stonehenge-collective/ladderserver/internal/migrate"
	"github.com/stonehenge-collective/ladderserver/internal/storage"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.MatchStore = (*Storage)(nil)

func New(l *logrus.Logger, fileName string) (*Storage, error) {
	db, err := sql.Open("sqlite3", buildSource(fileName))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = sqlite3.UpServerDB(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log := l.WithField("from", "match-storage")
	log.Info("match storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared&_foreign_keys=on"
}

type matchRow struct {
	model.Matches
	Sets []model.Sets
}

// ListMatches returns every stored match with its sets, sorted by date
// then insertion order. Rows that fail conversion (bad date, unknown
// kind) are logged and dropped so one corrupt record cannot starve the
// replay.
func (s *Storage) ListMatches(ctx context.Context) ([]domain.Match, error) {
	var rows []matchRow
	err := table.Matches.
		SELECT(table.Matches.AllColumns, table.Sets.AllColumns).
		FROM(table.Matches.
			LEFT_JOIN(table.Sets, table.Sets.MatchID.EQ(table.Matches.ID))).
		ORDER_BY(
			table.Matches.Date.ASC(),
			table.Matches.CreatedAt.ASC(),
			table.Matches.ID.ASC(),
			table.Sets.Seq.ASC(),
		).
		QueryContext(ctx, s.db, &rows)
	if err != nil {
		return nil, err
	}

	matches := make([]domain.Match, 0, len(rows))
	for _, row := range rows {
		m, err := convertMatchToDomain(row)
		if err != nil {
			s.log.WithError(err).WithField("id", row.ID).Warn("skipping stored match")
			continue
		}
		matches = append(matches, m)
	}
	return matches, nil
}

func (s *Storage) Create(ctx context.Context, m domain.Match) (domain.Match, error) {
	if err := m.Validate(); err != nil {
		return domain.Match{}, err
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Match{}, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = table.Matches.
		INSERT(table.Matches.AllColumns).
		MODEL(convertMatchFromDomain(m)).
		ExecContext(ctx, tx)
	if err != nil {
		return domain.Match{}, err
	}
	if len(m.Sets) > 0 {
		_, err = table.Sets.
			INSERT(table.Sets.AllColumns).
			MODELS(convertSetsFromDomain(m)).
			ExecContext(ctx, tx)
		if err != nil {
			return domain.Match{}, err
		}
	}
	if err := tx.Commit(); err != nil {
		return domain.Match{}, err
	}
	return m, nil
}
