package elo

import "math"

// K is the fixed sensitivity of every rating update.
const K = 32

// InitialRating is assigned to any entity that has never played a set.
const InitialRating = 1200

// Expected returns the probability that a player rated ra wins an
// exchange against a player rated rb.
func Expected(ra, rb float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (rb-ra)/400.0))
}

// Update returns the new ratings for the winner and loser of a single
// exchange. The winner's gain equals the loser's loss exactly. No
// rounding is applied here; display rounding happens at projection time.
func Update(winner, loser float64) (newWinner, newLoser float64) {
	delta := Delta(winner, loser)
	return winner + delta, loser - delta
}

// Delta returns the rating amount the winner gains (and the loser
// loses) for an exchange between the two ratings.
func Delta(winner, loser float64) float64 {
	return K * (1 - Expected(winner, loser))
}
