package main

import (
	"github.com/charmbracelet/log"

	"github.com/ashfc/clubhouse/config"
	_ "github.com/ashfc/clubhouse/docs"
	"github.com/ashfc/clubhouse/internal/highlight"
	"github.com/ashfc/clubhouse/internal/match"
	"github.com/ashfc/clubhouse/internal/player"
	"github.com/ashfc/clubhouse/internal/settings"
	"github.com/ashfc/clubhouse/internal/team"
	"github.com/ashfc/clubhouse/internal/training"
	"github.com/ashfc/clubhouse/routes"
)

// @title Clubhouse REST API
// @version 1.0
// @description Club management backend: teams, matches, standings, player cards, points, and training attendance.
// @host localhost:8080
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&team.Team{},
		&match.Match{}, &match.MatchEvent{}, &match.MatchAppearance{},
		&player.Player{}, &player.PointTransaction{},
		&training.Training{}, &training.TrainingRsvp{},
		&settings.SiteSettings{},
		&highlight.Highlight{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Info("AutoMigrate successful")

	r := routes.SetupRoutes()

	log.Info("Starting server", "port", cfg.App.Port, "env", cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
