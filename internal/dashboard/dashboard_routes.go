package dashboard

import (
	"github.com/DhavalSuthar-24/wolvesboard/config"
	"github.com/DhavalSuthar-24/wolvesboard/internal/lineup"
	"github.com/DhavalSuthar-24/wolvesboard/internal/player"
	"github.com/DhavalSuthar-24/wolvesboard/internal/recent"
	"github.com/DhavalSuthar-24/wolvesboard/internal/record"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterDashboardRoutes(router *gin.Engine, api *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) error {
	fetcher, err := lineup.NewFetcher(&lineup.Config{
		Repo:             lineup.NewLineupRepository(db),
		TeamAbbreviation: appConfig.Team.Abbreviation,
		MinMinutes:       appConfig.Lineups.MinMinutes,
		Limit:            appConfig.Lineups.Limit,
	})
	if err != nil {
		return err
	}

	service, err := NewService(&Config{
		PlayerRepo:    player.NewPlayerRepository(db),
		LineupFetcher: fetcher,
		RecentRepo:    recent.NewRecentRepository(db, appConfig.Team.TablePrefix),
		RecordRepo:    record.NewRecordRepository(db),
	})
	if err != nil {
		return err
	}

	templates, err := LoadTemplates()
	if err != nil {
		return err
	}

	dashboardController := NewDashboardController(service, templates, appConfig.Team.Name, appConfig.Team.Abbreviation)

	router.GET("/", dashboardController.RedirectToDashboard)
	router.GET("/dashboard", dashboardController.ShowDashboard)
	api.GET("/dashboard", dashboardController.GetDashboard)
	return nil
}
