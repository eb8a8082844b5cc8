package lineup_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DhavalSuthar-24/wolvesboard/internal/lineup"
	"github.com/DhavalSuthar-24/wolvesboard/internal/lineup/mocks"
	"github.com/DhavalSuthar-24/wolvesboard/internal/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FetcherTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockRepo *mocks.MockLineupRepository
	fetcher  *lineup.Fetcher
	ctx      context.Context
}

func (s *FetcherTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = mocks.NewMockLineupRepository(s.mockCtrl)
	s.ctx = context.Background()

	fetcher, err := lineup.NewFetcher(&lineup.Config{
		Repo:             s.mockRepo,
		TeamAbbreviation: "MIN",
		MinMinutes:       50,
		Limit:            3,
	})
	s.Require().NoError(err)
	s.fetcher = fetcher
}

func TestFetcherTestSuite(t *testing.T) {
	suite.Run(t, new(FetcherTestSuite))
}

func (s *FetcherTestSuite) query(size lineup.Size, order lineup.Order) lineup.Query {
	return lineup.Query{TeamAbbreviation: "MIN", Size: size, MinMinutes: 50, Limit: 3, Order: order}
}

func (s *FetcherTestSuite) TestNewFetcherRequiresRepo() {
	_, err := lineup.NewFetcher(nil)
	s.ErrorIs(err, lineup.ErrNilRepo)

	_, err = lineup.NewFetcher(&lineup.Config{})
	s.ErrorIs(err, lineup.ErrNilRepo)
}

func (s *FetcherTestSuite) TestFetchSizePreservesQueryOrder() {
	rows := []lineup.LineupRow{
		{GroupName: "first", LineupSize: 5, NetRating: models.Ptr(18.0), Player1: models.Ptr("Mike Conley")},
		{GroupName: "second", LineupSize: 5, NetRating: models.Ptr(11.0), Player2: models.Ptr("Naz Reid")},
		{GroupName: "third", LineupSize: 5, NetRating: models.Ptr(3.5)},
	}
	s.mockRepo.EXPECT().ListLineups(s.ctx, s.query(lineup.SizeFive, lineup.OrderTop)).Return(rows, nil)

	lineups, err := s.fetcher.FetchSize(s.ctx, lineup.SizeFive, lineup.OrderTop)
	s.Require().NoError(err)
	s.Require().Len(lineups, 3)
	s.Equal("first", lineups[0].GroupName)
	s.Equal("second", lineups[1].GroupName)
	s.Equal("third", lineups[2].GroupName)
	s.Equal([]string{"Naz Reid"}, lineups[1].Names())
}

func (s *FetcherTestSuite) TestFetchSizeRejectsInvalidSize() {
	_, err := s.fetcher.FetchSize(s.ctx, lineup.Size(4), lineup.OrderTop)
	s.ErrorIs(err, lineup.ErrInvalidSize)
}

func (s *FetcherTestSuite) TestFetchSizePropagatesError() {
	dbErr := errors.New("connection reset")
	s.mockRepo.EXPECT().ListLineups(s.ctx, gomock.Any()).Return(nil, dbErr)

	_, err := s.fetcher.FetchSize(s.ctx, lineup.SizeTwo, lineup.OrderTop)
	s.ErrorIs(err, dbErr)
}

func (s *FetcherTestSuite) TestFetchSwallowsError() {
	s.mockRepo.EXPECT().ListLineups(s.ctx, gomock.Any()).Return(nil, errors.New("timeout"))

	lineups := s.fetcher.Fetch(s.ctx, lineup.SizeThree, lineup.OrderBottom)
	s.NotNil(lineups)
	s.Empty(lineups)
}

func (s *FetcherTestSuite) TestFetchAllIsolatesFailures() {
	s.mockRepo.EXPECT().ListLineups(gomock.Any(), s.query(lineup.SizeTwo, lineup.OrderTop)).
		Return([]lineup.LineupRow{{GroupName: "duo", LineupSize: 2}}, nil)
	s.mockRepo.EXPECT().ListLineups(gomock.Any(), s.query(lineup.SizeThree, lineup.OrderTop)).
		Return(nil, errors.New("boom"))
	s.mockRepo.EXPECT().ListLineups(gomock.Any(), s.query(lineup.SizeFive, lineup.OrderTop)).
		Return([]lineup.LineupRow{{GroupName: "starters", LineupSize: 5}}, nil)

	set := s.fetcher.FetchAll(s.ctx, lineup.OrderTop)

	s.Require().Len(set.TwoMan, 1)
	s.Equal("duo", set.TwoMan[0].GroupName)
	s.Empty(set.ThreeMan)
	s.Require().Len(set.FiveMan, 1)
	s.Equal("starters", set.FiveMan[0].GroupName)
}
