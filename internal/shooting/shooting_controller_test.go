package shooting

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DhavalSuthar-24/wolvesboard/internal/models"
	"github.com/DhavalSuthar-24/wolvesboard/internal/player"
	"github.com/DhavalSuthar-24/wolvesboard/internal/player/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ShootingControllerTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockRepo *mocks.MockPlayerRepository
	router   *gin.Engine
}

func (s *ShootingControllerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = mocks.NewMockPlayerRepository(s.mockCtrl)

	controller := NewShootingController(s.mockRepo, "MIN")
	s.router = gin.New()
	s.router.GET("/api/three-point/distribution", controller.GetThreePointDistribution)
}

func TestShootingControllerTestSuite(t *testing.T) {
	suite.Run(t, new(ShootingControllerTestSuite))
}

func (s *ShootingControllerTestSuite) TestGetThreePointDistribution() {
	s.mockRepo.EXPECT().ListThreePointAttempts(gomock.Any()).Return([]player.ThreePointAttempt{
		{PlayerName: "Anthony Edwards", FG3Pct: models.Ptr(0.395), FG3A: 9.5, TeamAbbreviation: "MIN"},
		{PlayerName: "Stephen Curry", FG3Pct: models.Ptr(0.408), FG3A: 11.8, TeamAbbreviation: "GSW"},
		{PlayerName: "Rudy Gobert", FG3Pct: nil, FG3A: 0, TeamAbbreviation: "MIN"},
	}, nil)

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/three-point/distribution", nil))

	s.Require().Equal(http.StatusOK, w.Code)

	var body struct {
		Status string       `json:"status"`
		Data   Distribution `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("success", body.Status)
	s.Len(body.Data.Buckets, BucketCount)
	s.Equal(2, body.Data.QualifiedPlayers)
	s.Equal(1, body.Data.Buckets[7].Count)
	s.Equal(1, body.Data.Buckets[8].Count)
	s.Equal("MIN", body.Data.TeamAbbreviation)
}

func (s *ShootingControllerTestSuite) TestGetThreePointDistributionBackendFailure() {
	s.mockRepo.EXPECT().ListThreePointAttempts(gomock.Any()).Return(nil, errors.New("relation does not exist"))

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/three-point/distribution", nil))

	s.Equal(http.StatusInternalServerError, w.Code)
	s.Contains(w.Body.String(), "Failed to retrieve three-point attempts")
}
