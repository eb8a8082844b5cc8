package shooting

import (
	"github.com/DhavalSuthar-24/wolvesboard/config"
	"github.com/DhavalSuthar-24/wolvesboard/internal/player"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterShootingRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	playerRepo := player.NewPlayerRepository(db)
	shootingController := NewShootingController(playerRepo, appConfig.Team.Abbreviation)

	router.GET("/three-point/distribution", shootingController.GetThreePointDistribution)
}
