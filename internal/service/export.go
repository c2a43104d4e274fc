package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"

	"github.com/stonehenge-collective/ladderserver/internal/domain"
)

type Board string

const (
	BoardSingles        Board = "singles"
	BoardDoublesTeams   Board = "doubles-teams"
	BoardDoublesPlayers Board = "doubles-players"
)

// ExportCSV renders a leaderboard as the tabular hand-off consumed by
// presentation collaborators: entity, rating (one decimal), then the
// four aggregate counters, sorted by rating descending.
func (s *RatingService) ExportCSV(ctx context.Context, board Board) ([]byte, error) {
	var (
		standings []domain.Standing
		entity    string
		err       error
	)
	switch board {
	case BoardSingles:
		entity = "player"
		standings, err = s.SinglesLeaderboard(ctx)
	case BoardDoublesTeams:
		entity = "team"
		standings, _, err = s.DoublesLeaderboards(ctx)
	case BoardDoublesPlayers:
		entity = "player"
		_, standings, err = s.DoublesLeaderboards(ctx)
	default:
		return nil, ErrUnknownBoard
	}
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{entity, "rating", "set_wins", "set_losses", "game_wins", "game_losses"}); err != nil {
		return nil, err
	}
	for _, st := range standings {
		record := []string{
			st.Entity,
			strconv.FormatFloat(st.Rating, 'f', 1, 64),
			strconv.Itoa(st.SetWins),
			strconv.Itoa(st.SetLosses),
			strconv.Itoa(st.GameWins),
			strconv.Itoa(st.GameLosses),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
