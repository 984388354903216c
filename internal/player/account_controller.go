package player

import (
	"errors"
	"net/http"

	mw "github.com/ashfc/clubhouse/internal/middleware"
	"github.com/ashfc/clubhouse/internal/settings"
	"github.com/ashfc/clubhouse/pkg/responses"
	"github.com/gin-gonic/gin"
)

// StreakSource reports a player's current consecutive-attendance streak.
// Implemented by the training repository and wired in at route setup.
type StreakSource interface {
	AttendanceStreak(playerID uint) (int, error)
}

// AccountController serves the logged-in player's area: dashboard and card
// progression actions.
type AccountController struct {
	repo         PlayerRepository
	ledger       *Ledger
	settingsRepo settings.SettingsRepository
	streaks      StreakSource
}

func NewAccountController(repo PlayerRepository, ledger *Ledger, settingsRepo settings.SettingsRepository, streaks StreakSource) *AccountController {
	return &AccountController{
		repo:         repo,
		ledger:       ledger,
		settingsRepo: settingsRepo,
		streaks:      streaks,
	}
}

type UpgradeStatRequest struct {
	Stat string `json:"stat" binding:"required"`
}

type CardTypeRequest struct {
	CardType string `json:"card_type" binding:"required"`
}

// CardOption is a catalog entry annotated with the player's unlock state.
type CardOption struct {
	Value      string `json:"value"`
	Label      string `json:"label"`
	ImageURL   string `json:"image_url,omitempty"`
	UnlockCost int    `json:"unlock_cost"`
	Unlockable bool   `json:"unlockable"`
	Unlocked   bool   `json:"unlocked"`
}

type DashboardSettings struct {
	ShowMOTM          bool `json:"show_motm"`
	ShowStreaks       bool `json:"show_streaks"`
	ShowLevels        bool `json:"show_levels"`
	PointsPerTraining int  `json:"points_per_training"`
}

type DashboardResponse struct {
	Player       *Player            `json:"player"`
	Transactions []PointTransaction `json:"transactions"`
	UpgradeCost  int                `json:"upgrade_cost"`
	CardTypes    []CardOption       `json:"card_types"`
	MOTMCount    int                `json:"motm_count"`
	Streak       int                `json:"streak"`
	Level        string             `json:"level"`
	Settings     DashboardSettings  `json:"settings"`
}

// GetDashboard godoc
// @Summary Player dashboard
// @Description Card, balance, recent transactions, streak and level for the logged-in player.
// @Tags PlayerArea
// @Produce json
// @Success 200 {object} DashboardResponse
// @Failure 401 {object} responses.ErrorResponse
// @Router /player/dashboard [get]
func (ac *AccountController) GetDashboard(c *gin.Context) {
	playerID, err := mw.PlayerIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "Not authenticated")
		return
	}

	player, err := ac.repo.GetPlayerByID(playerID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch player: "+err.Error())
		return
	}
	if player == nil {
		responses.NotFound(c, "Player")
		return
	}

	txs, err := ac.repo.GetTransactions(playerID, 20)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch transactions: "+err.Error())
		return
	}

	st, err := ac.settingsRepo.Get()
	if err != nil {
		responses.InternalServerError(c, "Failed to load settings: "+err.Error())
		return
	}

	motmCount, err := ac.repo.CountMOTMEvents(playerID)
	if err != nil {
		responses.InternalServerError(c, "Failed to count awards: "+err.Error())
		return
	}

	streak, err := ac.streaks.AttendanceStreak(playerID)
	if err != nil {
		responses.InternalServerError(c, "Failed to compute streak: "+err.Error())
		return
	}

	options := []CardOption{{
		Value:      DefaultCardType,
		Label:      "Default",
		UnlockCost: 0,
		Unlockable: true,
		Unlocked:   true,
	}}
	for _, ct := range st.CardTypeCatalog() {
		if !ct.IsUnlockable() {
			continue
		}
		options = append(options, CardOption{
			Value:      ct.Value,
			Label:      ct.Label,
			ImageURL:   ct.ImageURL,
			UnlockCost: ct.UnlockCost,
			Unlockable: true,
			Unlocked:   player.HasUnlocked(ct.Value),
		})
	}

	c.JSON(http.StatusOK, DashboardResponse{
		Player:       player,
		Transactions: txs,
		UpgradeCost:  st.UpgradeCost,
		CardTypes:    options,
		MOTMCount:    int(motmCount),
		Streak:       streak,
		Level:        LevelForXP(player.PointsEarned),
		Settings: DashboardSettings{
			ShowMOTM:          st.ShowMOTM,
			ShowStreaks:       st.ShowStreaks,
			ShowLevels:        st.ShowLevels,
			PointsPerTraining: st.PointsPerTraining,
		},
	})
}

// UpgradeStat godoc
// @Summary Spend points to raise one attribute
// @Tags PlayerArea
// @Accept json
// @Produce json
// @Param upgrade body UpgradeStatRequest true "Stat name"
// @Success 200 {object} Player
// @Failure 400 {object} responses.ErrorResponse "Invalid stat, stat at cap, or insufficient points"
// @Router /player/upgrade [post]
func (ac *AccountController) UpgradeStat(c *gin.Context) {
	playerID, err := mw.PlayerIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "Not authenticated")
		return
	}

	var req UpgradeStatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid stat")
		return
	}

	st, err := ac.settingsRepo.Get()
	if err != nil {
		responses.InternalServerError(c, "Failed to load settings: "+err.Error())
		return
	}

	player, err := ac.ledger.UpgradeStat(playerID, req.Stat, st.UpgradeCost)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownStat):
			responses.BadRequest(c, "Invalid stat")
		case errors.Is(err, ErrStatMaxed):
			responses.BadRequest(c, "Stat already at maximum")
		case errors.Is(err, ErrInsufficientPoints):
			responses.BadRequest(c, "Insufficient points")
		case errors.Is(err, ErrPlayerNotFound):
			responses.NotFound(c, "Player")
		default:
			responses.InternalServerError(c, "Failed to upgrade stat: "+err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, player)
}

// UnlockCard godoc
// @Summary Spend points to unlock a card skin
// @Tags PlayerArea
// @Accept json
// @Produce json
// @Param card body CardTypeRequest true "Card type"
// @Success 200 {object} Player
// @Failure 400 {object} responses.ErrorResponse "Already unlocked or insufficient points"
// @Failure 404 {object} responses.ErrorResponse "Card type not in catalog"
// @Router /player/unlock-card [post]
func (ac *AccountController) UnlockCard(c *gin.Context) {
	playerID, err := mw.PlayerIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "Not authenticated")
		return
	}

	var req CardTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Card type required")
		return
	}

	st, err := ac.settingsRepo.Get()
	if err != nil {
		responses.InternalServerError(c, "Failed to load settings: "+err.Error())
		return
	}

	cardType, ok := st.FindCardType(req.CardType)
	if !ok {
		responses.NotFound(c, "Card type")
		return
	}
	if !cardType.IsUnlockable() {
		responses.BadRequest(c, "Card type is not unlockable")
		return
	}

	player, err := ac.ledger.UnlockCard(playerID, cardType)
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyUnlocked):
			responses.BadRequest(c, "Already unlocked")
		case errors.Is(err, ErrInsufficientPoints):
			responses.BadRequest(c, "Insufficient points")
		case errors.Is(err, ErrPlayerNotFound):
			responses.NotFound(c, "Player")
		default:
			responses.InternalServerError(c, "Failed to unlock card: "+err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, player)
}

// SwitchCard godoc
// @Summary Switch the active card skin
// @Tags PlayerArea
// @Accept json
// @Produce json
// @Param card body CardTypeRequest true "Card type"
// @Success 200 {object} Player
// @Failure 400 {object} responses.ErrorResponse "Card type not unlocked"
// @Router /player/switch-card [post]
func (ac *AccountController) SwitchCard(c *gin.Context) {
	playerID, err := mw.PlayerIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "Not authenticated")
		return
	}

	var req CardTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Card type required")
		return
	}

	player, err := ac.ledger.SwitchCard(playerID, req.CardType)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotUnlocked):
			responses.BadRequest(c, "Card type not unlocked")
		case errors.Is(err, ErrPlayerNotFound):
			responses.NotFound(c, "Player")
		default:
			responses.InternalServerError(c, "Failed to switch card: "+err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, player)
}
