package rating

import (
	"fmt"
	"math"

	"github.com/osse101/ScoreBot_Go/internal/domain"
)

// KFactor returns the update sensitivity for a player at the given rating
func KFactor(rating float64) int {
	switch {
	case rating > HighRatingThreshold:
		return KFactorHigh
	case rating < LowRatingThreshold:
		return KFactorLow
	default:
		return KFactorMid
	}
}

// ExpectedScore returns the probability that a player rated `rating` beats one rated `opponent`
func ExpectedScore(rating, opponent float64) float64 {
	return 1 / (1 + math.Pow(10, (opponent-rating)/RatingSpread))
}

// RateIndividual computes the rating change for one game between two players.
// Deltas are truncated toward zero, never rounded.
func RateIndividual(winnerRating, loserRating float64) (winnerDelta, loserDelta int) {
	expectedWinner := ExpectedScore(winnerRating, loserRating)
	expectedLoser := 1 - expectedWinner

	winnerDelta = int(float64(KFactor(winnerRating)) * (1 - expectedWinner))
	loserDelta = int(float64(KFactor(loserRating)) * (0 - expectedLoser))
	return winnerDelta, loserDelta
}

// RateTeam rates every winner against the mean of the losing team and every
// loser against the mean of the winning team. Deltas keep input order.
func RateTeam(winning, losing []float64) (winningDeltas, losingDeltas []int, err error) {
	if len(winning) == 0 || len(losing) == 0 {
		return nil, nil, fmt.Errorf("%w: %d winners, %d losers", domain.ErrInvalidTeam, len(winning), len(losing))
	}

	winningMean := mean(winning)
	losingMean := mean(losing)

	winningDeltas = make([]int, len(winning))
	for i, r := range winning {
		winningDeltas[i], _ = RateIndividual(r, losingMean)
	}

	losingDeltas = make([]int, len(losing))
	for i, r := range losing {
		_, losingDeltas[i] = RateIndividual(winningMean, r)
	}

	return winningDeltas, losingDeltas, nil
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
