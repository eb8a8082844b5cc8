package shooting

import (
	"math"

	"github.com/DhavalSuthar-24/wolvesboard/internal/player"
)

// AxisTicks is the number of labels on the histogram's count axis.
const AxisTicks = 6

// MaxCount returns the tallest bucket's count.
func MaxCount(buckets []Bucket) int {
	max := 0
	for _, b := range buckets {
		if b.Count > max {
			max = b.Count
		}
	}
	return max
}

// TeamMembers returns the bucket's players on the given team.
func (b Bucket) TeamMembers(abbreviation string) []player.ThreePointAttempt {
	var members []player.ThreePointAttempt
	for _, p := range b.Players {
		if p.TeamAbbreviation == abbreviation {
			members = append(members, p)
		}
	}
	return members
}

// HeightPct is the bar height relative to the tallest bucket, in percent.
func (b Bucket) HeightPct(maxCount int) float64 {
	if maxCount <= 0 {
		return 0
	}
	return float64(b.Count) / float64(maxCount) * 100
}

// CountTicks returns the count-axis labels from maxCount down to 0.
func CountTicks(maxCount int) []int {
	ticks := make([]int, AxisTicks)
	steps := AxisTicks - 1
	for i := range ticks {
		ticks[i] = int(math.Round(float64((steps-i)*maxCount) / float64(steps)))
	}
	return ticks
}
