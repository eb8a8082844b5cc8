package record

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/DhavalSuthar-24/wolvesboard/internal/record RecordRepository
type RecordRepository interface {
	ListRecords(ctx context.Context) ([]Record, error)
}

type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository creates a new instance of RecordRepository.
func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &recordRepository{db: db}
}

// ListRecords reads the whole record tracker table, unfiltered.
func (r *recordRepository) ListRecords(ctx context.Context) ([]Record, error) {
	var rows []map[string]interface{}
	if err := r.db.WithContext(ctx).Table(TableName).Find(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]Record, len(rows))
	for i, row := range rows {
		records[i] = Record(row)
	}
	return records, nil
}
