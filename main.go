package main

import (
	"github.com/DhavalSuthar-24/wolvesboard/config"
	_ "github.com/DhavalSuthar-24/wolvesboard/docs"
	"github.com/DhavalSuthar-24/wolvesboard/internal/schema"
	"github.com/DhavalSuthar-24/wolvesboard/pkg/logger"
	"github.com/DhavalSuthar-24/wolvesboard/routes"
)

// @title Wolvesboard API
// @version 1.0
// @description Read-only team statistics for the dashboard.
// @host localhost:8088
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		logger.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	// The hosted database owns its schema; only a local sqlite file is migrated.
	if cfg.DB.Driver == config.DriverSQLite {
		if err := schema.Migrate(config.DB, cfg.Team.TablePrefix); err != nil {
			logger.Fatalf("AutoMigrate failed: %v", err)
		}
		logger.Println("AutoMigrate successful")
	}

	r, err := routes.SetupRoutes(config.DB, cfg)
	if err != nil {
		logger.Fatalf("Failed to set up routes: %v", err)
	}

	// Use port from loaded configuration
	logger.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		logger.Fatalf("Failed to run server: %v", err)
	}
}
