package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ashfc/clubhouse/config"
	"github.com/ashfc/clubhouse/internal/auth"
	"github.com/ashfc/clubhouse/internal/highlight"
	"github.com/ashfc/clubhouse/internal/match"
	"github.com/ashfc/clubhouse/internal/player"
	"github.com/ashfc/clubhouse/internal/settings"
	"github.com/ashfc/clubhouse/internal/standings"
	"github.com/ashfc/clubhouse/internal/team"
	"github.com/ashfc/clubhouse/internal/training"
	"github.com/ashfc/clubhouse/internal/upload"
)

func SetupRoutes() *gin.Engine {
	appConfig := config.GetConfig()
	db := config.DB

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{appConfig.App.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"name": "clubhouse", "status": "ok"})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")

	// The training repo doubles as the streak source for player dashboards.
	trainingRepo := training.NewTrainingRepository(db)

	auth.AuthRoutes(api, db, appConfig)
	team.TeamRoutes(api, db, appConfig)
	match.MatchRoutes(api, db, appConfig)
	standings.StandingsRoutes(api, db)
	player.PlayerRoutes(api, db, appConfig, trainingRepo)
	training.TrainingRoutes(api, db, appConfig, trainingRepo)
	settings.SettingsRoutes(api, db, appConfig)
	highlight.HighlightRoutes(api, db, appConfig)
	upload.UploadRoutes(api, appConfig)

	return r
}
