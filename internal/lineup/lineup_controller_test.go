package lineup_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DhavalSuthar-24/wolvesboard/internal/lineup"
	"github.com/DhavalSuthar-24/wolvesboard/internal/lineup/mocks"
	"github.com/DhavalSuthar-24/wolvesboard/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LineupControllerTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockRepo *mocks.MockLineupRepository
	router   *gin.Engine
}

func (s *LineupControllerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = mocks.NewMockLineupRepository(s.mockCtrl)

	fetcher, err := lineup.NewFetcher(&lineup.Config{
		Repo:             s.mockRepo,
		TeamAbbreviation: "MIN",
		MinMinutes:       50,
		Limit:            3,
	})
	s.Require().NoError(err)

	s.router = gin.New()
	s.router.GET("/api/lineups", lineup.NewLineupController(fetcher).GetLineups)
}

func TestLineupControllerTestSuite(t *testing.T) {
	suite.Run(t, new(LineupControllerTestSuite))
}

func (s *LineupControllerTestSuite) get(url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	return w
}

func (s *LineupControllerTestSuite) TestSingleSize() {
	s.mockRepo.EXPECT().ListLineups(gomock.Any(), lineup.Query{
		TeamAbbreviation: "MIN", Size: lineup.SizeTwo, MinMinutes: 50, Limit: 3, Order: lineup.OrderBottom,
	}).Return([]lineup.LineupRow{
		{GroupName: "worst", LineupSize: 2, NetRating: models.Ptr(-12.0), Player1: models.Ptr("A"), Player2: models.Ptr("B")},
	}, nil)

	w := s.get("/api/lineups?size=2&order=bottom")
	s.Require().Equal(http.StatusOK, w.Code)

	var body struct {
		Data  []lineup.Lineup `json:"data"`
		Count int             `json:"count"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal(1, body.Count)
	s.Equal(-12.0, body.Data[0].NetRating)
	s.Equal([]string{"A", "B"}, body.Data[0].Names())
}

func (s *LineupControllerTestSuite) TestAllSizes() {
	s.mockRepo.EXPECT().ListLineups(gomock.Any(), gomock.Any()).Return([]lineup.LineupRow{}, nil).Times(3)

	w := s.get("/api/lineups")
	s.Require().Equal(http.StatusOK, w.Code)

	var body struct {
		Data lineup.Set `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Empty(body.Data.TwoMan)
	s.Empty(body.Data.ThreeMan)
	s.Empty(body.Data.FiveMan)
}

func (s *LineupControllerTestSuite) TestInvalidSize() {
	w := s.get("/api/lineups?size=4")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "Size")
}

func (s *LineupControllerTestSuite) TestInvalidOrder() {
	w := s.get("/api/lineups?order=middle")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *LineupControllerTestSuite) TestSingleSizeBackendFailure() {
	s.mockRepo.EXPECT().ListLineups(gomock.Any(), gomock.Any()).Return(nil, errors.New("down"))

	w := s.get("/api/lineups?size=5")
	s.Equal(http.StatusInternalServerError, w.Code)
}
