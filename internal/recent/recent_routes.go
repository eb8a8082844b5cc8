package recent

import (
	"github.com/DhavalSuthar-24/wolvesboard/config"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRecentRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	recentRepo := NewRecentRepository(db, appConfig.Team.TablePrefix)
	recentController := NewRecentController(recentRepo)

	router.GET("/recent", recentController.GetRecentStats)
}
