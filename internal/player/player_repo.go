package player

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/DhavalSuthar-24/wolvesboard/internal/player PlayerRepository
type PlayerRepository interface {
	ListPlayerStats(ctx context.Context) ([]PlayerStat, error)
	ListThreePointAttempts(ctx context.Context) ([]ThreePointAttempt, error)
}

type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new instance of PlayerRepository.
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

// ListPlayerStats returns the full player stats table ordered by name.
func (r *playerRepository) ListPlayerStats(ctx context.Context) ([]PlayerStat, error) {
	var players []PlayerStat
	if err := r.db.WithContext(ctx).Order("player_name ASC").Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

// ListThreePointAttempts returns the league-wide three-point table restricted
// to the columns the distribution needs.
func (r *playerRepository) ListThreePointAttempts(ctx context.Context) ([]ThreePointAttempt, error) {
	var rows []ThreePointAttempt
	err := r.db.WithContext(ctx).
		Select("player_name", "fg3_pct", "fg3a", "team_abbreviation").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
