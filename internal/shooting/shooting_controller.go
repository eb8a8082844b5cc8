package shooting

import (
	"net/http"

	"github.com/DhavalSuthar-24/wolvesboard/internal/player"
	"github.com/DhavalSuthar-24/wolvesboard/pkg/logger"
	"github.com/DhavalSuthar-24/wolvesboard/pkg/responses"
	"github.com/gin-gonic/gin"
)

// Distribution is the API shape of the three-point histogram.
type Distribution struct {
	Buckets          []Bucket `json:"buckets"`
	MaxCount         int      `json:"max_count"`
	QualifiedPlayers int      `json:"qualified_players"`
	TeamAbbreviation string   `json:"team_abbreviation"`
}

// NewDistribution wraps buckets with the totals the histogram needs.
func NewDistribution(buckets []Bucket, teamAbbreviation string) Distribution {
	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	return Distribution{
		Buckets:          buckets,
		MaxCount:         MaxCount(buckets),
		QualifiedPlayers: total,
		TeamAbbreviation: teamAbbreviation,
	}
}

// ShootingController serves the three-point distribution.
type ShootingController struct {
	repo             player.PlayerRepository
	teamAbbreviation string
}

// NewShootingController creates a new ShootingController.
func NewShootingController(repo player.PlayerRepository, teamAbbreviation string) *ShootingController {
	return &ShootingController{repo: repo, teamAbbreviation: teamAbbreviation}
}

// GetThreePointDistribution godoc
// @Summary League-wide 3PT percentage distribution
// @Description Players with at least one three-point attempt per game, bucketed by 3PT% in 5-point buckets from 0% to 55%
// @Tags Shooting
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=Distribution}
// @Failure 500 {object} responses.ErrorResponse "Backend query failed"
// @Router /three-point/distribution [get]
func (sc *ShootingController) GetThreePointDistribution(c *gin.Context) {
	rows, err := sc.repo.ListThreePointAttempts(c.Request.Context())
	if err != nil {
		logger.Errorf("Error fetching three-point attempts: %v", err)
		responses.InternalServerError(c, "Failed to retrieve three-point attempts")
		return
	}

	dist := NewDistribution(BucketThreePoint(rows), sc.teamAbbreviation)
	responses.SendSuccess(c, http.StatusOK, "Distribution built successfully", dist)
}
