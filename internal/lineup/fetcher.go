package lineup

import (
	"context"
	"fmt"

	"github.com/DhavalSuthar-24/wolvesboard/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// Config holds the fetcher's dependencies and query settings.
type Config struct {
	Repo             LineupRepository
	TeamAbbreviation string
	MinMinutes       int
	Limit            int
}

// Fetcher retrieves and normalizes lineups for one team.
type Fetcher struct {
	repo             LineupRepository
	teamAbbreviation string
	minMinutes       int
	limit            int
}

// NewFetcher creates a new Fetcher.
func NewFetcher(cfg *Config) (*Fetcher, error) {
	if cfg == nil || cfg.Repo == nil {
		return nil, ErrNilRepo
	}
	return &Fetcher{
		repo:             cfg.Repo,
		teamAbbreviation: cfg.TeamAbbreviation,
		minMinutes:       cfg.MinMinutes,
		limit:            cfg.Limit,
	}, nil
}

// FetchSize returns normalized lineups of one size, in query order.
func (f *Fetcher) FetchSize(ctx context.Context, size Size, order Order) ([]Lineup, error) {
	if !size.Valid() {
		return nil, ErrInvalidSize
	}
	rows, err := f.repo.ListLineups(ctx, Query{
		TeamAbbreviation: f.teamAbbreviation,
		Size:             size,
		MinMinutes:       f.minMinutes,
		Limit:            f.limit,
		Order:            order,
	})
	if err != nil {
		return nil, fmt.Errorf("fetching %d-man lineups: %w", size, err)
	}
	return NormalizeAll(rows), nil
}

// Fetch is FetchSize with failures logged and reported as no lineups.
func (f *Fetcher) Fetch(ctx context.Context, size Size, order Order) []Lineup {
	lineups, err := f.FetchSize(ctx, size, order)
	if err != nil {
		logger.Errorf("Error fetching %d-man lineups: %v", size, err)
		return []Lineup{}
	}
	return lineups
}

// FetchAll fetches every tracked size concurrently. A failing size comes back
// empty and does not affect the others.
func (f *Fetcher) FetchAll(ctx context.Context, order Order) Set {
	results := make([][]Lineup, len(Sizes))

	g, gctx := errgroup.WithContext(ctx)
	for i, size := range Sizes {
		i, size := i, size
		g.Go(func() error {
			results[i] = f.Fetch(gctx, size, order)
			return nil
		})
	}
	_ = g.Wait() // Fetch never returns an error

	return Set{
		TwoMan:   results[0],
		ThreeMan: results[1],
		FiveMan:  results[2],
	}
}
