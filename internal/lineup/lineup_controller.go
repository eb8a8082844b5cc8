package lineup

import (
	"net/http"

	"github.com/DhavalSuthar-24/wolvesboard/pkg/logger"
	"github.com/DhavalSuthar-24/wolvesboard/pkg/responses"
	"github.com/DhavalSuthar-24/wolvesboard/pkg/validator"
	"github.com/gin-gonic/gin"
)

// LineupController handles API requests for lineups.
type LineupController struct {
	fetcher *Fetcher
}

// NewLineupController creates a new LineupController.
func NewLineupController(fetcher *Fetcher) *LineupController {
	return &LineupController{fetcher: fetcher}
}

// LineupQuery is the query string accepted by GetLineups.
type LineupQuery struct {
	Size  int    `form:"size" binding:"omitempty,oneof=2 3 5"`
	Order string `form:"order" binding:"omitempty,oneof=top bottom"`
}

// GetLineups godoc
// @Summary List top or bottom lineups
// @Description Lineups with at least the configured minutes, ranked by net rating. Without size, all of 2, 3 and 5-man lineups are returned and a failing size comes back empty.
// @Tags Lineups
// @Produce json
// @Param size query int false "Lineup size (2, 3 or 5)"
// @Param order query string false "top or bottom" default(top)
// @Success 200 {object} responses.SuccessResponse{data=Set}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 500 {object} responses.ErrorResponse "Backend query failed"
// @Router /lineups [get]
func (lc *LineupController) GetLineups(c *gin.Context) {
	var q LineupQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		responses.SendValidationError(c, "Validation failed", validator.ParseError(err))
		return
	}

	order, err := ParseOrder(q.Order)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	if q.Size == 0 {
		responses.SendSuccess(c, http.StatusOK, "Lineups retrieved successfully", lc.fetcher.FetchAll(c.Request.Context(), order))
		return
	}

	lineups, err := lc.fetcher.FetchSize(c.Request.Context(), Size(q.Size), order)
	if err != nil {
		logger.Errorf("Error fetching lineups: %v", err)
		responses.InternalServerError(c, "Failed to retrieve lineups")
		return
	}

	responses.SendList(c, "Lineups retrieved successfully", lineups, len(lineups))
}
