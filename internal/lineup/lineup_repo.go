package lineup

import (
	"context"

	"gorm.io/gorm"
)

// Query selects lineups for one team and size.
type Query struct {
	TeamAbbreviation string
	Size             Size
	MinMinutes       int
	Limit            int
	Order            Order
}

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/DhavalSuthar-24/wolvesboard/internal/lineup LineupRepository
type LineupRepository interface {
	ListLineups(ctx context.Context, q Query) ([]LineupRow, error)
}

type lineupRepository struct {
	db *gorm.DB
}

// NewLineupRepository creates a new instance of LineupRepository.
func NewLineupRepository(db *gorm.DB) LineupRepository {
	return &lineupRepository{db: db}
}

// ListLineups returns the team's lineups of exactly q.Size players with at
// least q.MinMinutes minutes, ranked by net rating (descending for top,
// ascending for bottom) and capped at q.Limit rows. Unrated lineups sort last.
func (r *lineupRepository) ListLineups(ctx context.Context, q Query) ([]LineupRow, error) {
	var rows []LineupRow

	order := "net_rating DESC NULLS LAST"
	if q.Order == OrderBottom {
		order = "net_rating ASC NULLS LAST"
	}

	err := r.db.WithContext(ctx).
		Where("team_abbreviation = ?", q.TeamAbbreviation).
		Where("lineup_size = ?", int(q.Size)).
		Where("min >= ?", q.MinMinutes).
		Order(order).
		Limit(q.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
