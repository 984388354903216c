package highlight

import (
	"github.com/ashfc/clubhouse/config"
	mw "github.com/ashfc/clubhouse/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HighlightRoutes sets up highlight reel routes.
func HighlightRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewHighlightRepository(db)
	highlightController := NewHighlightController(repo)

	router.GET("/highlights", highlightController.GetHighlights)

	adminRoutes := router.Group("/")
	adminRoutes.Use(mw.AdminRequired(appConfig.Session.Secret))
	{
		adminRoutes.POST("/highlights", highlightController.CreateHighlight)
		adminRoutes.PATCH("/highlights", highlightController.UpdateHighlight)
		adminRoutes.DELETE("/highlights", highlightController.DeleteHighlight)
	}
}
