// Package shooting builds the league-wide three-point percentage histogram.
package shooting

import (
	"fmt"
	"math"

	"github.com/DhavalSuthar-24/wolvesboard/internal/player"
)

const (
	// BucketWidth is the width of one bucket as a fraction (5 points).
	BucketWidth = 0.05
	// MaxPct is the exclusive upper bound of the histogram range.
	MaxPct = 0.55
	// BucketCount is the number of buckets covering [0, MaxPct).
	BucketCount = 11

	// MinAttempts is the per-game attempt floor for a player to be counted.
	MinAttempts = 1.0

	bucketPoints = 5.0
)

// Bucket is one histogram bar.
type Bucket struct {
	Range   string                     `json:"range"`
	Lower   float64                    `json:"lower"`
	Upper   float64                    `json:"upper"`
	Count   int                        `json:"count"`
	Players []player.ThreePointAttempt `json:"players"`
}

// Qualifies reports whether a row is counted in the distribution: it needs a
// percentage and at least MinAttempts attempts per game.
func Qualifies(row player.ThreePointAttempt) bool {
	if row.FG3Pct == nil || math.IsNaN(*row.FG3Pct) {
		return false
	}
	return row.FG3A >= MinAttempts
}

// BucketIndex maps a percentage (0.37 for 37%) to floor(pct/BucketWidth),
// clamped to [0, BucketCount-1]. Percentages at or above MaxPct land in the
// last bucket.
func BucketIndex(pct float64) int {
	idx := int(math.Floor(pct / BucketWidth))
	if idx < 0 {
		return 0
	}
	if idx > BucketCount-1 {
		return BucketCount - 1
	}
	return idx
}

// BucketThreePoint groups qualifying rows into BucketCount fixed-width
// buckets, in ascending order. Input order is kept within a bucket.
func BucketThreePoint(rows []player.ThreePointAttempt) []Bucket {
	buckets := make([]Bucket, BucketCount)
	for i := range buckets {
		lower := float64(i) * bucketPoints
		upper := lower + bucketPoints
		buckets[i] = Bucket{
			Range:   fmt.Sprintf("%.1f%% - %.1f%%", lower, upper),
			Lower:   lower / 100,
			Upper:   upper / 100,
			Players: []player.ThreePointAttempt{},
		}
	}

	for _, row := range rows {
		if !Qualifies(row) {
			continue
		}
		idx := BucketIndex(*row.FG3Pct)
		buckets[idx].Count++
		buckets[idx].Players = append(buckets[idx].Players, row)
	}

	return buckets
}
