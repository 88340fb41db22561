package rating

// ============================================================================
// ELO Parameters
// ============================================================================

// DefaultRating is the rating of a player with no applied matches
const DefaultRating = 1500.0

// RatingSpread is the rating difference at which the stronger side is
// expected to win ten times as often
const RatingSpread = 400.0

// K-factor thresholds. Ratings above HighRatingThreshold use KFactorHigh,
// ratings below LowRatingThreshold use KFactorLow, everything else KFactorMid.
const (
	HighRatingThreshold = 2400.0
	LowRatingThreshold  = 2100.0

	KFactorHigh = 16
	KFactorMid  = 24
	KFactorLow  = 32
)
