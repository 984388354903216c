package player

import (
	"github.com/ashfc/clubhouse/config"
	mw "github.com/ashfc/clubhouse/internal/middleware"
	"github.com/ashfc/clubhouse/internal/settings"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PlayerRoutes sets up roster, leaderboard, points-admin, and player-area
// routes. The streak source comes from the training package; it's injected
// here to keep the dependency one-way.
func PlayerRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, streaks StreakSource) {
	repo := NewPlayerRepository(db)
	ledger := NewLedger(db)
	settingsRepo := settings.NewSettingsRepository(db)

	playerController := NewPlayerController(repo, ledger)
	accountController := NewAccountController(repo, ledger, settingsRepo, streaks)

	// Public reads
	router.GET("/players", playerController.GetAllPlayers)
	router.GET("/leaderboard", playerController.GetLeaderboard)
	router.GET("/stats/players", playerController.GetPlayerStats)

	// Admin roster and points management
	adminRoutes := router.Group("/")
	adminRoutes.Use(mw.AdminRequired(appConfig.Session.Secret))
	{
		adminRoutes.POST("/players", playerController.CreatePlayer)
		adminRoutes.PATCH("/players", playerController.UpdatePlayer)
		adminRoutes.DELETE("/players", playerController.DeletePlayer)

		adminRoutes.GET("/admin/points", playerController.GetPointsOverview)
		adminRoutes.POST("/admin/points", playerController.AwardPoints)
		adminRoutes.PATCH("/admin/pins", playerController.SetPIN)
	}

	// Logged-in player area
	playerRoutes := router.Group("/player")
	playerRoutes.Use(mw.PlayerRequired(appConfig.Session.Secret, db))
	{
		playerRoutes.GET("/dashboard", accountController.GetDashboard)
		playerRoutes.POST("/upgrade", accountController.UpgradeStat)
		playerRoutes.POST("/unlock-card", accountController.UnlockCard)
		playerRoutes.POST("/switch-card", accountController.SwitchCard)
	}
}
