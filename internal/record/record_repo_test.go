package record

import (
	"context"
	"testing"

	"github.com/DhavalSuthar-24/wolvesboard/internal/testdb"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type RecordRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo RecordRepository
	ctx  context.Context
}

func (s *RecordRepositoryTestSuite) SetupTest() {
	s.db = testdb.Open(s.T())
	s.Require().NoError(s.db.Exec(`CREATE TABLE record_tracker_season (
		id INTEGER PRIMARY KEY,
		record TEXT,
		holder TEXT,
		target REAL,
		current REAL
	)`).Error)
	s.repo = NewRecordRepository(s.db)
	s.ctx = context.Background()
}

func TestRecordRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RecordRepositoryTestSuite))
}

func (s *RecordRepositoryTestSuite) TestListRecords() {
	s.Require().NoError(s.db.Exec(
		`INSERT INTO record_tracker_season (id, record, holder, target, current) VALUES (1, 'Most 3PM', 'Anthony Edwards', 217, 180.5), (2, 'Most blocks', NULL, 190, 92)`,
	).Error)

	records, err := s.repo.ListRecords(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(records, 2)

	byRecord := map[string]Record{}
	for _, r := range records {
		byRecord[r.Format("record")] = r
	}
	s.Equal("Anthony Edwards", byRecord["Most 3PM"].Format("holder"))
	s.Equal("180.5", byRecord["Most 3PM"].Format("current"))
	s.Equal("", byRecord["Most blocks"].Format("holder"))
	s.Equal([]string{"current", "holder", "record", "target"}, Columns(records))
}

func (s *RecordRepositoryTestSuite) TestEmptyTable() {
	records, err := s.repo.ListRecords(s.ctx)
	s.Require().NoError(err)
	s.Empty(records)
}

func (s *RecordRepositoryTestSuite) TestMissingTable() {
	s.Require().NoError(s.db.Exec(`DROP TABLE record_tracker_season`).Error)

	_, err := s.repo.ListRecords(s.ctx)
	s.Error(err)
}
