package shooting

import (
	"math"
	"testing"

	"github.com/DhavalSuthar-24/wolvesboard/internal/models"
	"github.com/DhavalSuthar-24/wolvesboard/internal/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attempt(name string, pct *float64, fg3a float64, team string) player.ThreePointAttempt {
	return player.ThreePointAttempt{PlayerName: name, FG3Pct: pct, FG3A: fg3a, TeamAbbreviation: team}
}

func TestBucketThreePointLabels(t *testing.T) {
	buckets := BucketThreePoint(nil)

	require.Len(t, buckets, BucketCount)
	assert.Equal(t, "0.0% - 5.0%", buckets[0].Range)
	assert.Equal(t, "35.0% - 40.0%", buckets[7].Range)
	assert.Equal(t, "50.0% - 55.0%", buckets[BucketCount-1].Range)
	assert.InDelta(t, 0.35, buckets[7].Lower, 1e-9)
	assert.InDelta(t, 0.40, buckets[7].Upper, 1e-9)
	for _, b := range buckets {
		assert.Zero(t, b.Count)
		assert.NotNil(t, b.Players)
	}
}

func TestBucketThreePointAssignsSingleBucket(t *testing.T) {
	buckets := BucketThreePoint([]player.ThreePointAttempt{
		attempt("Mike Conley", models.Ptr(0.37), 2, "MIN"),
	})

	assert.Equal(t, 1, buckets[7].Count)
	assert.Equal(t, "35.0% - 40.0%", buckets[7].Range)
	assert.Equal(t, "Mike Conley", buckets[7].Players[0].PlayerName)
	for i, b := range buckets {
		if i != 7 {
			assert.Zero(t, b.Count, "bucket %d", i)
		}
	}
}

func TestBucketThreePointClampsHighPercentages(t *testing.T) {
	buckets := BucketThreePoint([]player.ThreePointAttempt{
		attempt("Hot Hand", models.Ptr(0.57), 5, "BOS"),
		attempt("Perfect", models.Ptr(1.0), 1, "LAL"),
	})

	last := buckets[BucketCount-1]
	assert.Equal(t, "50.0% - 55.0%", last.Range)
	assert.Equal(t, 2, last.Count)
}

func TestBucketThreePointExcludesInvalidRows(t *testing.T) {
	buckets := BucketThreePoint([]player.ThreePointAttempt{
		attempt("No Pct", nil, 4, "MIN"),
		attempt("Too Few", models.Ptr(0.42), 0.9, "MIN"),
		attempt("Zero", models.Ptr(0.0), 0, "MIN"),
		attempt("Counted", models.Ptr(0.42), 1, "MIN"),
	})

	total := 0
	for _, b := range buckets {
		total += b.Count
		assert.Len(t, b.Players, b.Count)
	}
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, buckets[8].Count)
}

func TestBucketThreePointCountsSumToValidEntries(t *testing.T) {
	var rows []player.ThreePointAttempt
	valid := 0
	for i := 0; i <= 70; i++ {
		pct := float64(i) / 100
		fg3a := float64(i%3) + 0.5 // 0.5, 1.5, 2.5
		rows = append(rows, attempt("p", models.Ptr(pct), fg3a, "LEAGUE"))
		if fg3a >= MinAttempts {
			valid++
		}
	}

	total := 0
	for _, b := range BucketThreePoint(rows) {
		total += b.Count
	}
	assert.Equal(t, valid, total)
}

func TestBucketThreePointKeepsInputOrderWithinBucket(t *testing.T) {
	buckets := BucketThreePoint([]player.ThreePointAttempt{
		attempt("First", models.Ptr(0.36), 3, "MIN"),
		attempt("Second", models.Ptr(0.38), 3, "DEN"),
		attempt("Third", models.Ptr(0.351), 3, "MIN"),
	})

	require.Equal(t, 3, buckets[7].Count)
	assert.Equal(t, "First", buckets[7].Players[0].PlayerName)
	assert.Equal(t, "Second", buckets[7].Players[1].PlayerName)
	assert.Equal(t, "Third", buckets[7].Players[2].PlayerName)
}

func TestBucketIndex(t *testing.T) {
	tests := []struct {
		pct  float64
		want int
	}{
		{0, 0},
		{0.049, 0},
		{0.05, 1},
		{0.10, 2},
		{0.15, 2},
		{0.1499999996, 2},
		{0.30, 5},
		{0.35, 6},
		{0.37, 7},
		{0.4499999999, 8},
		{0.45, 9},
		{0.4999, 9},
		{0.50, 10},
		{0.55, 10},
		{0.57, 10},
		{-0.02, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BucketIndex(tt.pct), "pct %v", tt.pct)
	}
}

func TestBucketIndexMatchesFloorFormula(t *testing.T) {
	for i := 0; i <= 600; i++ {
		pct := float64(i) / 1000
		want := int(math.Floor(pct / 0.05))
		if want > BucketCount-1 {
			want = BucketCount - 1
		}
		assert.Equal(t, want, BucketIndex(pct), "pct %v", pct)
	}
}

func TestQualifies(t *testing.T) {
	assert.True(t, Qualifies(attempt("a", models.Ptr(0.3), 1, "MIN")))
	assert.False(t, Qualifies(attempt("b", nil, 5, "MIN")))
	assert.False(t, Qualifies(attempt("c", models.Ptr(0.3), 0.99, "MIN")))
}
