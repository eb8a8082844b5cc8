package recent

import (
	"net/http"

	"github.com/DhavalSuthar-24/wolvesboard/pkg/logger"
	"github.com/DhavalSuthar-24/wolvesboard/pkg/responses"
	"github.com/DhavalSuthar-24/wolvesboard/pkg/validator"
	"github.com/gin-gonic/gin"
)

// RecentController handles API requests for rolling-window stats.
type RecentController struct {
	repo RecentRepository
}

// NewRecentController creates a new RecentController.
func NewRecentController(repo RecentRepository) *RecentController {
	return &RecentController{repo: repo}
}

// RecentQuery is the query string accepted by GetRecentStats.
type RecentQuery struct {
	Window int `form:"window" binding:"required,oneof=5 10"`
}

// GetRecentStats godoc
// @Summary Rolling-window player stats
// @Description Per-player averages over the last 5 or 10 games, keyed by player name
// @Tags Recent
// @Produce json
// @Param window query int true "Trailing games (5 or 10)"
// @Success 200 {object} responses.SuccessResponse{data=map[string]RecentStats}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 500 {object} responses.ErrorResponse "Backend query failed"
// @Router /recent [get]
func (rc *RecentController) GetRecentStats(c *gin.Context) {
	var q RecentQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		responses.SendValidationError(c, "Validation failed", validator.ParseError(err))
		return
	}

	rows, err := rc.repo.ListRecentStats(c.Request.Context(), Window(q.Window))
	if err != nil {
		logger.Errorf("Error fetching last %d games stats: %v", q.Window, err)
		responses.InternalServerError(c, "Failed to retrieve recent stats")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Recent stats retrieved successfully", KeyByPlayer(rows))
}
