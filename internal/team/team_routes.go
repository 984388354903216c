package team

import (
	"github.com/ashfc/clubhouse/config"
	mw "github.com/ashfc/clubhouse/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TeamRoutes sets up all team-related routes
func TeamRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	teamRepo := NewTeamRepository(db)
	teamController := NewTeamController(teamRepo)

	router.GET("/teams", teamController.GetAllTeams)

	adminRoutes := router.Group("/")
	adminRoutes.Use(mw.AdminRequired(appConfig.Session.Secret))
	{
		adminRoutes.POST("/teams", teamController.CreateTeam)
		adminRoutes.PATCH("/teams", teamController.UpdateTeam)
		adminRoutes.DELETE("/teams", teamController.DeleteTeam)
	}
}
