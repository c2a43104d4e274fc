package storage

import (
	"context"

	"github.com/stonehenge-collective/ladderserver/internal/domain"
)

// MatchSource supplies the ordered match stream every replay folds
// over. Implementations return records sorted by date ascending;
// records sharing a date keep their source order (file-name order for
// the dir source, insertion order for sqlite). Replays are strictly
// path dependent, so the ordering contract is part of correctness.
type MatchSource interface {
	ListMatches(ctx context.Context) ([]domain.Match, error)
}

// MatchStore is a MatchSource that also accepts new records.
type MatchStore interface {
	MatchSource
	Create(ctx context.Context, match domain.Match) (domain.Match, error)
}
