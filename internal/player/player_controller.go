package player

import (
	"github.com/DhavalSuthar-24/wolvesboard/pkg/logger"
	"github.com/DhavalSuthar-24/wolvesboard/pkg/responses"
	"github.com/gin-gonic/gin"
)

// PlayerController handles API requests for player stats.
type PlayerController struct {
	repo PlayerRepository
}

// NewPlayerController creates a new PlayerController.
func NewPlayerController(repo PlayerRepository) *PlayerController {
	return &PlayerController{repo: repo}
}

// GetPlayers godoc
// @Summary List player stats
// @Description Season per-game stats for every player on the team, ordered by name
// @Tags Players
// @Produce json
// @Success 200 {object} responses.ListResponse{data=[]PlayerStat}
// @Failure 500 {object} responses.ErrorResponse "Backend query failed"
// @Router /players [get]
func (pc *PlayerController) GetPlayers(c *gin.Context) {
	players, err := pc.repo.ListPlayerStats(c.Request.Context())
	if err != nil {
		logger.Errorf("Error fetching player stats: %v", err)
		responses.InternalServerError(c, "Failed to retrieve player stats")
		return
	}

	responses.SendList(c, "Players retrieved successfully", players, len(players))
}
