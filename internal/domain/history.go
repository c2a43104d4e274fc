package domain

import "time"

type Result string

const (
	Win  Result = "W"
	Loss Result = "L"
)

// HistoryPoint is one per-set rating observation for one player,
// recorded while replaying the combined match stream.
type HistoryPoint struct {
	Date      time.Time `json:"date"`
	Opponent  string    `json:"opponent"`
	Partner   string    `json:"partner,omitempty"`
	Score     string    `json:"sets"`
	EloBefore float64   `json:"elo_before"`
	EloAfter  float64   `json:"elo"`
	Delta     float64   `json:"elo_change"`
	Result    Result    `json:"result"`
	SourceRef string    `json:"source_ref,omitempty"`
}

// DailyRange summarizes one player's post-set ratings for one active
// day: first, last, highest and lowest, in chronological order.
type DailyRange struct {
	Date  time.Time `json:"date"`
	Open  float64   `json:"open"`
	High  float64   `json:"high"`
	Low   float64   `json:"low"`
	Close float64   `json:"close"`
}

// Series carries the two chart resolutions for one match type.
type Series struct {
	Points []HistoryPoint `json:"points"`
	Daily  []DailyRange   `json:"daily"`
}

// PlayerHistory is everything needed to chart one player's trajectory.
type PlayerHistory struct {
	Player  string `json:"player"`
	Singles Series `json:"singles"`
	Doubles Series `json:"doubles"`
}
