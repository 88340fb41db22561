package handler

import (
	"net/http"
	"runtime"
	"runtime/debug"

	"github.com/osse101/ScoreBot_Go/internal/rating"
)

// VersionInfo describes the running build and the rating rules it applies
type VersionInfo struct {
	Version   string     `json:"version"`
	GoVersion string     `json:"go_version"`
	Commit    string     `json:"commit,omitempty"`
	Rating    RatingInfo `json:"rating"`
}

// RatingInfo lets clients check which ELO parameters produced the ledger
type RatingInfo struct {
	Default       float64 `json:"default"`
	Spread        float64 `json:"spread"`
	KFactorLow    int     `json:"k_factor_low"`
	KFactorMid    int     `json:"k_factor_mid"`
	KFactorHigh   int     `json:"k_factor_high"`
	MidThreshold  float64 `json:"mid_threshold"`
	HighThreshold float64 `json:"high_threshold"`
}

// HandleVersion reports the configured version and the rating parameters
func HandleVersion(version string) http.HandlerFunc {
	info := VersionInfo{
		Version:   version,
		GoVersion: runtime.Version(),
		Commit:    vcsRevision(),
		Rating: RatingInfo{
			Default:       rating.DefaultRating,
			Spread:        rating.RatingSpread,
			KFactorLow:    rating.KFactorLow,
			KFactorMid:    rating.KFactorMid,
			KFactorHigh:   rating.KFactorHigh,
			MidThreshold:  rating.LowRatingThreshold,
			HighThreshold: rating.HighRatingThreshold,
		},
	}
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, info)
	}
}

// vcsRevision reads the commit stamped by the go toolchain, if any
func vcsRevision() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}
