package dashboard

import (
	"context"

	"github.com/DhavalSuthar-24/wolvesboard/internal/lineup"
	"github.com/DhavalSuthar-24/wolvesboard/internal/player"
	"github.com/DhavalSuthar-24/wolvesboard/internal/recent"
	"github.com/DhavalSuthar-24/wolvesboard/internal/record"
	"github.com/DhavalSuthar-24/wolvesboard/internal/shooting"
	"github.com/DhavalSuthar-24/wolvesboard/pkg/logger"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/DhavalSuthar-24/wolvesboard/internal/dashboard Service
type Service interface {
	// Load runs one fetch sequence and returns what it gathered. The
	// snapshot is never nil; on error it is partial.
	Load(ctx context.Context, opts LoadOptions) (*Snapshot, error)
}

// Config holds the service's dependencies.
type Config struct {
	PlayerRepo    player.PlayerRepository
	LineupFetcher *lineup.Fetcher
	RecentRepo    recent.RecentRepository
	RecordRepo    record.RecordRepository
}

type service struct {
	players player.PlayerRepository
	lineups *lineup.Fetcher
	recent  recent.RecentRepository
	records record.RecordRepository
}

// NewService creates a new dashboard Service.
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}
	if cfg.LineupFetcher == nil {
		return nil, ErrNilLineupFetcher
	}
	if cfg.RecentRepo == nil {
		return nil, ErrNilRecentRepo
	}
	if cfg.RecordRepo == nil {
		return nil, ErrNilRecordRepo
	}
	return &service{
		players: cfg.PlayerRepo,
		lineups: cfg.LineupFetcher,
		recent:  cfg.RecentRepo,
		records: cfg.RecordRepo,
	}, nil
}

func (s *service) Load(ctx context.Context, opts LoadOptions) (*Snapshot, error) {
	snap := newSnapshot()

	err := s.fetch(ctx, opts, snap)
	if err != nil {
		logger.Errorf("Error in dashboard fetch: %v", err)
	} else {
		snap.Complete = true
	}
	snap.Loaded = true

	return snap, err
}

// fetch fills snap step by step and stops at the first failed query. Lineup
// failures are handled by the fetcher and never stop the sequence.
func (s *service) fetch(ctx context.Context, opts LoadOptions, snap *Snapshot) error {
	players, err := s.players.ListPlayerStats(ctx)
	if err != nil {
		return &QueryError{Query: "player stats", Err: err}
	}
	snap.Players = players

	attempts, err := s.players.ListThreePointAttempts(ctx)
	if err != nil {
		return &QueryError{Query: "three-point attempts", Err: err}
	}
	snap.ThreePointBuckets = shooting.BucketThreePoint(attempts)

	lineups := s.lineups.FetchAll(ctx, opts.LineupOrder)
	lineups.AttachImages(player.ImagesByName(players))
	snap.Lineups = lineups

	last5, last5Err := s.recent.ListRecentStats(ctx, recent.WindowFive)
	last10, last10Err := s.recent.ListRecentStats(ctx, recent.WindowTen)
	if last5Err != nil {
		return &QueryError{Query: "last 5 games stats", Err: last5Err}
	}
	if last10Err != nil {
		return &QueryError{Query: "last 10 games stats", Err: last10Err}
	}
	snap.Last5 = recent.KeyByPlayer(last5)
	snap.Last10 = recent.KeyByPlayer(last10)

	records, err := s.records.ListRecords(ctx)
	if err != nil {
		return &QueryError{Query: "season records", Err: err}
	}
	snap.Records = records

	return nil
}
