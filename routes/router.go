package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/wolvesboard/config"
	"github.com/DhavalSuthar-24/wolvesboard/internal/common"
	"github.com/DhavalSuthar-24/wolvesboard/internal/dashboard"
	"github.com/DhavalSuthar-24/wolvesboard/internal/lineup"
	"github.com/DhavalSuthar-24/wolvesboard/internal/middleware"
	"github.com/DhavalSuthar-24/wolvesboard/internal/player"
	"github.com/DhavalSuthar-24/wolvesboard/internal/recent"
	"github.com/DhavalSuthar-24/wolvesboard/internal/record"
	"github.com/DhavalSuthar-24/wolvesboard/internal/shooting"
)

func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.App.FrontendURL}
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.ExposeHeaders = []string{common.HeaderRequestID}
	r.Use(cors.New(corsConfig))
	r.Use(middleware.RequestIDMiddleware())

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	player.RegisterPlayerRoutes(api, db)
	shooting.RegisterShootingRoutes(api, db, cfg)
	if err := lineup.RegisterLineupRoutes(api, db, cfg); err != nil {
		return nil, err
	}
	recent.RegisterRecentRoutes(api, db, cfg)
	record.RegisterRecordRoutes(api, db)

	// Dashboard page plus its JSON snapshot
	if err := dashboard.RegisterDashboardRoutes(r, api, db, cfg); err != nil {
		return nil, err
	}

	return r, nil
}
