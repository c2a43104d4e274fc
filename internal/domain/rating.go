package domain

// Stats accumulates set and game outcomes for one entity. All counters
// are monotonically non-decreasing during a replay.
type Stats struct {
	SetWins    int
	SetLosses  int
	GameWins   int
	GameLosses int
}

// Standing is one projected leaderboard row. Rating is already rounded
// to one decimal for display.
type Standing struct {
	Rank   int
	Entity string
	Rating float64
	Stats
}

// Snapshot is the final state of one rating space after a full replay.
type Snapshot struct {
	Ratings map[string]float64
	Stats   map[string]Stats
}

func NewSnapshot() Snapshot {
	return Snapshot{
		Ratings: make(map[string]float64),
		Stats:   make(map[string]Stats),
	}
}

// Rating returns the entity's current rating, falling back to the
// given default when the entity has never been observed.
func (s Snapshot) Rating(entity string, initial float64) float64 {
	if r, ok := s.Ratings[entity]; ok {
		return r
	}
	return initial
}
