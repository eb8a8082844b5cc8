package dashboard

import (
	"fmt"

	"github.com/DhavalSuthar-24/wolvesboard/internal/lineup"
	"github.com/DhavalSuthar-24/wolvesboard/internal/player"
	"github.com/DhavalSuthar-24/wolvesboard/internal/recent"
	"github.com/DhavalSuthar-24/wolvesboard/internal/record"
	"github.com/DhavalSuthar-24/wolvesboard/internal/shooting"
)

// LoadOptions tunes one fetch sequence.
type LoadOptions struct {
	LineupOrder lineup.Order
}

// Snapshot is everything one page load fetched. After a failed query it holds
// whatever was set before the failure, and Complete is false.
type Snapshot struct {
	Players           []player.PlayerStat `json:"players"`
	ThreePointBuckets []shooting.Bucket   `json:"three_point_buckets"`
	Lineups           lineup.Set          `json:"lineups"`
	Last5             recent.ByPlayer     `json:"last_5"`
	Last10            recent.ByPlayer     `json:"last_10"`
	Records           []record.Record     `json:"records"`
	Loaded            bool                `json:"loaded"`
	Complete          bool                `json:"complete"`
}

func newSnapshot() *Snapshot {
	return &Snapshot{
		Players:           []player.PlayerStat{},
		ThreePointBuckets: []shooting.Bucket{},
		Lineups: lineup.Set{
			TwoMan:   []lineup.Lineup{},
			ThreeMan: []lineup.Lineup{},
			FiveMan:  []lineup.Lineup{},
		},
		Last5:   recent.ByPlayer{},
		Last10:  recent.ByPlayer{},
		Records: []record.Record{},
	}
}

// Recent returns the rolling-window stats for w.
func (s *Snapshot) Recent(w recent.Window) recent.ByPlayer {
	if w == recent.WindowTen {
		return s.Last10
	}
	return s.Last5
}

// QueryError reports a failed backend query.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("backend query failed: %s: %v", e.Query, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// DashboardError is a custom error type for dashboard wiring errors
type DashboardError string

// Error implements the error interface
func (e DashboardError) Error() string {
	return string(e)
}

const (
	ErrNilConfig        DashboardError = "config cannot be nil"
	ErrNilPlayerRepo    DashboardError = "player repository cannot be nil"
	ErrNilLineupFetcher DashboardError = "lineup fetcher cannot be nil"
	ErrNilRecentRepo    DashboardError = "recent stats repository cannot be nil"
	ErrNilRecordRepo    DashboardError = "record repository cannot be nil"
)
