package settings

import (
	"net/http"

	"github.com/ashfc/clubhouse/pkg/responses"
	"github.com/gin-gonic/gin"
)

// SettingsController handles site settings HTTP requests
type SettingsController struct {
	repo SettingsRepository
}

func NewSettingsController(repo SettingsRepository) *SettingsController {
	return &SettingsController{repo: repo}
}

type UpdateSettingsRequest struct {
	TeamPhotoURL      *string `json:"team_photo_url"`
	PlayerCardsOn     *bool   `json:"player_cards_on"`
	CardTypes         *string `json:"card_types"`
	PointsPerTraining *int    `json:"points_per_training" binding:"omitempty,gte=0"`
	UpgradeCost       *int    `json:"upgrade_cost" binding:"omitempty,gte=0"`
	MOTMPoints        *int    `json:"motm_points"`
	StreakBonus3      *int    `json:"streak_bonus_3" binding:"omitempty,gte=0"`
	StreakBonus5      *int    `json:"streak_bonus_5" binding:"omitempty,gte=0"`
	StreakBonus10     *int    `json:"streak_bonus_10" binding:"omitempty,gte=0"`
	ShowGoalScorers   *bool   `json:"show_goal_scorers"`
	ShowHighlights    *bool   `json:"show_highlights"`
	ShowPlayerStats   *bool   `json:"show_player_stats"`
	ShowMOTM          *bool   `json:"show_motm"`
	ShowStreaks       *bool   `json:"show_streaks"`
	ShowLevels        *bool   `json:"show_levels"`
}

// GetSettings godoc
// @Summary Get site settings
// @Tags Settings
// @Produce json
// @Success 200 {object} SiteSettings
// @Router /settings [get]
func (sc *SettingsController) GetSettings(c *gin.Context) {
	s, err := sc.repo.Get()
	if err != nil {
		responses.InternalServerError(c, "Failed to load settings: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, s)
}

// UpdateSettings godoc
// @Summary Update site settings
// @Description Partially updates the singleton settings row.
// @Tags Settings
// @Accept json
// @Produce json
// @Param settings body UpdateSettingsRequest true "Fields to update"
// @Success 200 {object} SiteSettings
// @Router /settings [patch]
func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.TeamPhotoURL != nil {
		updates["team_photo_url"] = *req.TeamPhotoURL
	}
	if req.PlayerCardsOn != nil {
		updates["player_cards_on"] = *req.PlayerCardsOn
	}
	if req.CardTypes != nil {
		updates["card_types"] = *req.CardTypes
	}
	if req.PointsPerTraining != nil {
		updates["points_per_training"] = *req.PointsPerTraining
	}
	if req.UpgradeCost != nil {
		updates["upgrade_cost"] = *req.UpgradeCost
	}
	if req.MOTMPoints != nil {
		updates["motm_points"] = *req.MOTMPoints
	}
	if req.StreakBonus3 != nil {
		updates["streak_bonus_3"] = *req.StreakBonus3
	}
	if req.StreakBonus5 != nil {
		updates["streak_bonus_5"] = *req.StreakBonus5
	}
	if req.StreakBonus10 != nil {
		updates["streak_bonus_10"] = *req.StreakBonus10
	}
	if req.ShowGoalScorers != nil {
		updates["show_goal_scorers"] = *req.ShowGoalScorers
	}
	if req.ShowHighlights != nil {
		updates["show_highlights"] = *req.ShowHighlights
	}
	if req.ShowPlayerStats != nil {
		updates["show_player_stats"] = *req.ShowPlayerStats
	}
	if req.ShowMOTM != nil {
		updates["show_motm"] = *req.ShowMOTM
	}
	if req.ShowStreaks != nil {
		updates["show_streaks"] = *req.ShowStreaks
	}
	if req.ShowLevels != nil {
		updates["show_levels"] = *req.ShowLevels
	}

	s, err := sc.repo.Update(updates)
	if err != nil {
		responses.InternalServerError(c, "Failed to update settings: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, s)
}
