package rating

import (
	"math"
	"sort"

	"github.com/stonehenge-collective/ladderserver/internal/domain"
)

// Project turns a final snapshot into a ranked leaderboard: entities
// sorted by rating descending, rank 1..N, rating rounded to one decimal
// for display. Entities tied on rating keep alphabetical order, which
// makes the projection deterministic across runs.
func Project(snap domain.Snapshot) []domain.Standing {
	standings := make([]domain.Standing, 0, len(snap.Ratings))
	for entity, r := range snap.Ratings {
		standings = append(standings, domain.Standing{
			Entity: entity,
			Rating: math.Round(r*10) / 10,
			Stats:  snap.Stats[entity],
		})
	}
	sort.Slice(standings, func(i, j int) bool {
		return standings[i].Entity < standings[j].Entity
	})
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Rating > standings[j].Rating
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}
	return standings
}
