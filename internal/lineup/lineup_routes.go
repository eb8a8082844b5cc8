package lineup

import (
	"github.com/DhavalSuthar-24/wolvesboard/config"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterLineupRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) error {
	fetcher, err := NewFetcher(&Config{
		Repo:             NewLineupRepository(db),
		TeamAbbreviation: appConfig.Team.Abbreviation,
		MinMinutes:       appConfig.Lineups.MinMinutes,
		Limit:            appConfig.Lineups.Limit,
	})
	if err != nil {
		return err
	}
	lineupController := NewLineupController(fetcher)

	router.GET("/lineups", lineupController.GetLineups)
	return nil
}
