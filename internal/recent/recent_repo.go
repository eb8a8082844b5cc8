package recent

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/DhavalSuthar-24/wolvesboard/internal/recent RecentRepository
type RecentRepository interface {
	ListRecentStats(ctx context.Context, window Window) ([]RecentStats, error)
}

type recentRepository struct {
	db          *gorm.DB
	tablePrefix string
}

// NewRecentRepository creates a new instance of RecentRepository reading the
// tables named <tablePrefix>_player_stats_last_<window>.
func NewRecentRepository(db *gorm.DB, tablePrefix string) RecentRepository {
	return &recentRepository{db: db, tablePrefix: tablePrefix}
}

// ListRecentStats reads the whole table for the window, unfiltered.
func (r *recentRepository) ListRecentStats(ctx context.Context, window Window) ([]RecentStats, error) {
	if !window.Valid() {
		return nil, ErrInvalidWindow
	}

	var rows []RecentStats
	if err := r.db.WithContext(ctx).Table(window.TableName(r.tablePrefix)).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
