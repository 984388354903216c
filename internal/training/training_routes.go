package training

import (
	"github.com/ashfc/clubhouse/config"
	mw "github.com/ashfc/clubhouse/internal/middleware"
	"github.com/ashfc/clubhouse/internal/settings"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TrainingRoutes sets up training session and RSVP routes. The repository
// is passed in so the router can share it with the player package as a
// streak source.
func TrainingRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, repo TrainingRepository) {
	settingsRepo := settings.NewSettingsRepository(db)
	trainingController := NewTrainingController(repo, settingsRepo, appConfig.Session.Secret)

	// Listing is role-aware: the handler inspects cookies itself.
	router.GET("/training", trainingController.GetTrainings)

	adminRoutes := router.Group("/")
	adminRoutes.Use(mw.AdminRequired(appConfig.Session.Secret))
	{
		adminRoutes.POST("/training", trainingController.CreateTraining)
		adminRoutes.PATCH("/training", trainingController.UpdateTraining)
		adminRoutes.DELETE("/training", trainingController.DeleteTraining)
		adminRoutes.POST("/training/confirm", trainingController.ConfirmTraining)
	}

	playerRoutes := router.Group("/")
	playerRoutes.Use(mw.PlayerRequired(appConfig.Session.Secret, db))
	{
		playerRoutes.POST("/training/rsvp", trainingController.Rsvp)
	}
}
