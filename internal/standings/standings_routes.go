package standings

import (
	"github.com/ashfc/clubhouse/internal/match"
	"github.com/ashfc/clubhouse/internal/team"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// StandingsRoutes sets up the league table route
func StandingsRoutes(router *gin.RouterGroup, db *gorm.DB) {
	controller := NewStandingsController(team.NewTeamRepository(db), match.NewMatchRepository(db))
	router.GET("/standings", controller.GetStandings)
}
