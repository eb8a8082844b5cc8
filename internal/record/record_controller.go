package record

import (
	"github.com/DhavalSuthar-24/wolvesboard/pkg/logger"
	"github.com/DhavalSuthar-24/wolvesboard/pkg/responses"
	"github.com/gin-gonic/gin"
)

// RecordController handles API requests for the season record tracker.
type RecordController struct {
	repo RecordRepository
}

// NewRecordController creates a new RecordController.
func NewRecordController(repo RecordRepository) *RecordController {
	return &RecordController{repo: repo}
}

// GetRecords godoc
// @Summary Season record tracker
// @Description Every tracked season milestone row as column/value pairs
// @Tags Records
// @Produce json
// @Success 200 {object} responses.ListResponse{data=[]map[string]interface{}}
// @Failure 500 {object} responses.ErrorResponse "Backend query failed"
// @Router /records [get]
func (rc *RecordController) GetRecords(c *gin.Context) {
	records, err := rc.repo.ListRecords(c.Request.Context())
	if err != nil {
		logger.Errorf("Error fetching season records: %v", err)
		responses.InternalServerError(c, "Failed to retrieve season records")
		return
	}

	responses.SendList(c, "Records retrieved successfully", records, len(records))
}
