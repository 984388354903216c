package match

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ashfc/clubhouse/internal/player"
	"github.com/ashfc/clubhouse/internal/settings"
	"github.com/ashfc/clubhouse/pkg/responses"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MatchController handles match-related HTTP requests
type MatchController struct {
	repo         MatchRepository
	settingsRepo settings.SettingsRepository
}

func NewMatchController(repo MatchRepository, settingsRepo settings.SettingsRepository) *MatchController {
	return &MatchController{repo: repo, settingsRepo: settingsRepo}
}

// --- DTOs for requests ---

type CreateMatchRequest struct {
	Date       time.Time `json:"date" binding:"required"`
	Venue      string    `json:"venue"`
	HomeTeamID uint      `json:"home_team_id" binding:"required"`
	AwayTeamID uint      `json:"away_team_id" binding:"required"`
	HomeScore  *int      `json:"home_score"`
	AwayScore  *int      `json:"away_score"`
}

type MatchEventInput struct {
	PlayerID *uint  `json:"player_id"`
	Type     string `json:"type" binding:"required"`
	Minute   *int   `json:"minute"`
	Notes    string `json:"notes"`
}

type UpdateMatchRequest struct {
	ID           uint               `json:"id" binding:"required"`
	Date         *time.Time         `json:"date"`
	Venue        *string            `json:"venue"`
	HomeTeamID   *uint              `json:"home_team_id"`
	AwayTeamID   *uint              `json:"away_team_id"`
	HomeScore    *int               `json:"home_score"`
	AwayScore    *int               `json:"away_score"`
	Cancelled    *bool              `json:"cancelled"`
	CancelReason *string            `json:"cancel_reason"`
	Events       *[]MatchEventInput `json:"events"`
	Appearances  *[]uint            `json:"appearances"`
}

type DeleteMatchRequest struct {
	ID uint `json:"id" binding:"required"`
}

// GetMatches godoc
// @Summary List matches
// @Description Filter with ?filter=upcoming|past|all (default upcoming).
// @Tags Matches
// @Produce json
// @Param filter query string false "upcoming, past, or all"
// @Success 200 {array} Match
// @Router /matches [get]
func (mc *MatchController) GetMatches(c *gin.Context) {
	filter := c.DefaultQuery("filter", "upcoming")

	var matches []Match
	var err error
	switch filter {
	case "past":
		matches, err = mc.repo.GetPastMatches()
	case "all":
		matches, err = mc.repo.GetAllMatches()
	default:
		matches, err = mc.repo.GetUpcomingMatches(time.Now())
	}
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch matches: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, matches)
}

// CreateMatch godoc
// @Summary Create a match
// @Tags Matches
// @Accept json
// @Produce json
// @Param match body CreateMatchRequest true "Match data"
// @Success 201 {object} Match
// @Failure 400 {object} responses.ErrorResponse
// @Router /matches [post]
func (mc *MatchController) CreateMatch(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	match := Match{
		Date:       req.Date,
		Venue:      req.Venue,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
	}
	// Scores only land together; a half-recorded result stays "not played".
	if req.HomeScore != nil && req.AwayScore != nil {
		match.HomeScore = req.HomeScore
		match.AwayScore = req.AwayScore
	}

	if err := mc.repo.CreateMatch(&match); err != nil {
		responses.InternalServerError(c, "Failed to create match: "+err.Error())
		return
	}
	c.JSON(http.StatusCreated, match)
}

// UpdateMatch godoc
// @Summary Update a match
// @Description Patches scores, metadata, or cancellation, and optionally replaces the event and appearance lists. A motm event triggers a one-time point award.
// @Tags Matches
// @Accept json
// @Produce json
// @Param match body UpdateMatchRequest true "Fields to update"
// @Success 200 {object} Match
// @Failure 404 {object} responses.ErrorResponse
// @Router /matches [patch]
func (mc *MatchController) UpdateMatch(c *gin.Context) {
	var req UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Match id is required")
		return
	}

	existing, err := mc.repo.GetMatchByID(req.ID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch match: "+err.Error())
		return
	}
	if existing == nil {
		responses.NotFound(c, "Match")
		return
	}

	st, err := mc.settingsRepo.Get()
	if err != nil {
		responses.InternalServerError(c, "Failed to load settings: "+err.Error())
		return
	}

	err = mc.repo.DB().Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{}
		if req.Date != nil {
			updates["date"] = *req.Date
		}
		if req.Venue != nil {
			updates["venue"] = *req.Venue
		}
		if req.HomeTeamID != nil {
			updates["home_team_id"] = *req.HomeTeamID
		}
		if req.AwayTeamID != nil {
			updates["away_team_id"] = *req.AwayTeamID
		}
		if req.HomeScore != nil {
			updates["home_score"] = *req.HomeScore
		}
		if req.AwayScore != nil {
			updates["away_score"] = *req.AwayScore
		}
		if req.Cancelled != nil {
			updates["cancelled"] = *req.Cancelled
		}
		if req.CancelReason != nil {
			updates["cancel_reason"] = *req.CancelReason
		}
		if len(updates) > 0 {
			if err := tx.Model(&Match{}).Where("id = ?", req.ID).Updates(updates).Error; err != nil {
				return err
			}
		}

		if req.Events != nil {
			if err := tx.Where("match_id = ?", req.ID).Delete(&MatchEvent{}).Error; err != nil {
				return err
			}
			for _, e := range *req.Events {
				event := MatchEvent{
					MatchID:  req.ID,
					PlayerID: e.PlayerID,
					Type:     e.Type,
					Minute:   e.Minute,
					Notes:    e.Notes,
				}
				if err := tx.Create(&event).Error; err != nil {
					return err
				}
			}

			for _, e := range *req.Events {
				if e.Type == EventMOTM && e.PlayerID != nil {
					if _, err := AwardMOTM(tx, req.ID, *e.PlayerID, st.MOTMPoints); err != nil {
						return err
					}
					break
				}
			}
		}

		if req.Appearances != nil {
			if err := tx.Where("match_id = ?", req.ID).Delete(&MatchAppearance{}).Error; err != nil {
				return err
			}
			for _, pid := range *req.Appearances {
				if err := tx.Create(&MatchAppearance{MatchID: req.ID, PlayerID: pid}).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		responses.InternalServerError(c, "Failed to update match: "+err.Error())
		return
	}

	updated, err := mc.repo.GetMatchByID(req.ID)
	if err != nil {
		responses.InternalServerError(c, "Failed to reload match: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteMatch godoc
// @Summary Delete a match
// @Tags Matches
// @Accept json
// @Produce json
// @Param match body DeleteMatchRequest true "Match id"
// @Success 200 {object} map[string]bool
// @Router /matches [delete]
func (mc *MatchController) DeleteMatch(c *gin.Context) {
	var req DeleteMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Match id is required")
		return
	}

	existing, err := mc.repo.GetMatchByID(req.ID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch match: "+err.Error())
		return
	}
	if existing == nil {
		responses.NotFound(c, "Match")
		return
	}

	if err := mc.repo.DeleteMatch(req.ID); err != nil {
		responses.InternalServerError(c, "Failed to delete match: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AwardMOTM grants the man-of-the-match bonus exactly once per match. The
// check here gives callers a clean no-op; the unique (type, match_id) index
// on point transactions backstops concurrent submissions. A configured
// amount of zero or less disables the award. Returns whether points were
// granted.
func AwardMOTM(tx *gorm.DB, matchID, playerID uint, points int) (bool, error) {
	if points <= 0 {
		return false, nil
	}

	var existing int64
	err := tx.Model(&player.PointTransaction{}).
		Where("type = ? AND match_id = ?", player.TxMOTM, matchID).
		Count(&existing).Error
	if err != nil {
		return false, err
	}
	if existing > 0 {
		return false, nil
	}

	desc := fmt.Sprintf("Man of the Match award for match #%d", matchID)
	if err := player.AwardTx(tx, playerID, points, player.TxMOTM, desc, &matchID); err != nil {
		return false, err
	}
	return true, nil
}
