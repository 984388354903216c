package team

import (
	"net/http"
	"strings"

	"github.com/ashfc/clubhouse/pkg/responses"
	"github.com/gin-gonic/gin"
)

// TeamController handles team-related HTTP requests
type TeamController struct {
	repo TeamRepository
}

// NewTeamController creates a new team controller
func NewTeamController(repo TeamRepository) *TeamController {
	return &TeamController{repo: repo}
}

// --- DTOs for requests ---

type CreateTeamRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

type UpdateTeamRequest struct {
	ID          uint    `json:"id" binding:"required"`
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	ManualWon   *int    `json:"manual_won" binding:"omitempty,gte=0"`
	ManualDrawn *int    `json:"manual_drawn" binding:"omitempty,gte=0"`
	ManualLost  *int    `json:"manual_lost" binding:"omitempty,gte=0"`
	ManualGF    *int    `json:"manual_gf" binding:"omitempty,gte=0"`
	ManualGA    *int    `json:"manual_ga" binding:"omitempty,gte=0"`
}

type DeleteTeamRequest struct {
	ID uint `json:"id" binding:"required"`
}

// GetAllTeams godoc
// @Summary List teams
// @Tags Teams
// @Produce json
// @Success 200 {array} Team
// @Router /teams [get]
func (tc *TeamController) GetAllTeams(c *gin.Context) {
	teams, err := tc.repo.GetAllTeams()
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch teams: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, teams)
}

// CreateTeam godoc
// @Summary Create a team
// @Description Creates a league team with a unique name.
// @Tags Teams
// @Accept json
// @Produce json
// @Param team body CreateTeamRequest true "Team data"
// @Success 201 {object} Team
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 409 {object} responses.ErrorResponse "Name already taken"
// @Router /teams [post]
func (tc *TeamController) CreateTeam(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Team name is required")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		responses.BadRequest(c, "Team name is required")
		return
	}

	existing, err := tc.repo.GetTeamByName(name)
	if err != nil {
		responses.InternalServerError(c, "Failed to check team name: "+err.Error())
		return
	}
	if existing != nil {
		responses.Conflict(c, "Team already exists")
		return
	}

	team := Team{Name: name}
	if err := tc.repo.CreateTeam(&team); err != nil {
		responses.InternalServerError(c, "Failed to create team: "+err.Error())
		return
	}

	c.JSON(http.StatusCreated, team)
}

// UpdateTeam godoc
// @Summary Update a team
// @Description Renames a team and/or updates its manual override counters.
// @Tags Teams
// @Accept json
// @Produce json
// @Param team body UpdateTeamRequest true "Fields to update"
// @Success 200 {object} Team
// @Failure 404 {object} responses.ErrorResponse
// @Router /teams [patch]
func (tc *TeamController) UpdateTeam(c *gin.Context) {
	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	existing, err := tc.repo.GetTeamByID(req.ID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team: "+err.Error())
		return
	}
	if existing == nil {
		responses.NotFound(c, "Team")
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.ManualWon != nil {
		updates["manual_won"] = *req.ManualWon
	}
	if req.ManualDrawn != nil {
		updates["manual_drawn"] = *req.ManualDrawn
	}
	if req.ManualLost != nil {
		updates["manual_lost"] = *req.ManualLost
	}
	if req.ManualGF != nil {
		updates["manual_gf"] = *req.ManualGF
	}
	if req.ManualGA != nil {
		updates["manual_ga"] = *req.ManualGA
	}

	team, err := tc.repo.UpdateTeam(req.ID, updates)
	if err != nil {
		responses.InternalServerError(c, "Failed to update team: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, team)
}

// DeleteTeam godoc
// @Summary Delete a team
// @Description Deletes a team and all matches it played in.
// @Tags Teams
// @Accept json
// @Produce json
// @Param team body DeleteTeamRequest true "Team id"
// @Success 200 {object} map[string]bool
// @Router /teams [delete]
func (tc *TeamController) DeleteTeam(c *gin.Context) {
	var req DeleteTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Team id is required")
		return
	}

	existing, err := tc.repo.GetTeamByID(req.ID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team: "+err.Error())
		return
	}
	if existing == nil {
		responses.NotFound(c, "Team")
		return
	}

	if err := tc.repo.DeleteTeam(req.ID); err != nil {
		responses.InternalServerError(c, "Failed to delete team: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
