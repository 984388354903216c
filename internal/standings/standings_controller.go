package standings

import (
	"net/http"

	"github.com/ashfc/clubhouse/internal/match"
	"github.com/ashfc/clubhouse/internal/team"
	"github.com/ashfc/clubhouse/pkg/responses"
	"github.com/gin-gonic/gin"
)

// StandingsController serves the league table.
type StandingsController struct {
	teamRepo  team.TeamRepository
	matchRepo match.MatchRepository
}

func NewStandingsController(teamRepo team.TeamRepository, matchRepo match.MatchRepository) *StandingsController {
	return &StandingsController{teamRepo: teamRepo, matchRepo: matchRepo}
}

type teamRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type StandingsResponse struct {
	Standings []TeamStanding `json:"standings"`
	Teams     []teamRef      `json:"teams"`
}

// GetStandings godoc
// @Summary League table
// @Description Ranked standings from completed matches plus manual overrides.
// @Tags Standings
// @Produce json
// @Success 200 {object} StandingsResponse
// @Router /standings [get]
func (sc *StandingsController) GetStandings(c *gin.Context) {
	teams, err := sc.teamRepo.GetAllTeams()
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch teams: "+err.Error())
		return
	}
	matches, err := sc.matchRepo.GetCompletedMatches()
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch matches: "+err.Error())
		return
	}

	refs := make([]teamRef, 0, len(teams))
	for _, t := range teams {
		refs = append(refs, teamRef{ID: t.ID, Name: t.Name})
	}

	c.JSON(http.StatusOK, StandingsResponse{
		Standings: Compute(teams, matches),
		Teams:     refs,
	})
}
