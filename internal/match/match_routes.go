package match

import (
	"github.com/ashfc/clubhouse/config"
	mw "github.com/ashfc/clubhouse/internal/middleware"
	"github.com/ashfc/clubhouse/internal/settings"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MatchRoutes sets up all match-related routes
func MatchRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	matchRepo := NewMatchRepository(db)
	settingsRepo := settings.NewSettingsRepository(db)
	matchController := NewMatchController(matchRepo, settingsRepo)

	router.GET("/matches", matchController.GetMatches)

	adminRoutes := router.Group("/")
	adminRoutes.Use(mw.AdminRequired(appConfig.Session.Secret))
	{
		adminRoutes.POST("/matches", matchController.CreateMatch)
		adminRoutes.PATCH("/matches", matchController.UpdateMatch)
		adminRoutes.DELETE("/matches", matchController.DeleteMatch)
	}
}
