package settings

import (
	"github.com/ashfc/clubhouse/config"
	mw "github.com/ashfc/clubhouse/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SettingsRoutes sets up site settings routes
func SettingsRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewSettingsRepository(db)
	controller := NewSettingsController(repo)

	router.GET("/settings", controller.GetSettings)

	adminRoutes := router.Group("/")
	adminRoutes.Use(mw.AdminRequired(appConfig.Session.Secret))
	{
		adminRoutes.PATCH("/settings", controller.UpdateSettings)
	}
}
