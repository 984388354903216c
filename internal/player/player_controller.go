package player

import (
	"net/http"
	"regexp"
	"sort"

	"github.com/ashfc/clubhouse/pkg/responses"
	"github.com/ashfc/clubhouse/utils"
	"github.com/gin-gonic/gin"
)

// PlayerController handles roster CRUD and the public read views
// (leaderboard, per-player match stats) plus the admin points endpoints.
type PlayerController struct {
	repo   PlayerRepository
	ledger *Ledger
}

func NewPlayerController(repo PlayerRepository, ledger *Ledger) *PlayerController {
	return &PlayerController{repo: repo, ledger: ledger}
}

var pinPattern = regexp.MustCompile(`^\d{4}$`)

// --- DTOs for requests ---

type CreatePlayerRequest struct {
	Name      string  `json:"name" binding:"required"`
	Position  string  `json:"position" binding:"required"`
	Number    *int    `json:"number"`
	ImageURL  *string `json:"image_url"`
	Pace      *int    `json:"pace" binding:"omitempty,gte=0,lte=99"`
	Shooting  *int    `json:"shooting" binding:"omitempty,gte=0,lte=99"`
	Passing   *int    `json:"passing" binding:"omitempty,gte=0,lte=99"`
	Dribbling *int    `json:"dribbling" binding:"omitempty,gte=0,lte=99"`
	Defending *int    `json:"defending" binding:"omitempty,gte=0,lte=99"`
	Physical  *int    `json:"physical" binding:"omitempty,gte=0,lte=99"`
}

type UpdatePlayerRequest struct {
	ID        uint    `json:"id" binding:"required"`
	Name      *string `json:"name"`
	Position  *string `json:"position"`
	Number    *int    `json:"number"`
	ImageURL  *string `json:"image_url"`
	Pace      *int    `json:"pace" binding:"omitempty,gte=0,lte=99"`
	Shooting  *int    `json:"shooting" binding:"omitempty,gte=0,lte=99"`
	Passing   *int    `json:"passing" binding:"omitempty,gte=0,lte=99"`
	Dribbling *int    `json:"dribbling" binding:"omitempty,gte=0,lte=99"`
	Defending *int    `json:"defending" binding:"omitempty,gte=0,lte=99"`
	Physical  *int    `json:"physical" binding:"omitempty,gte=0,lte=99"`
	CardType  *string `json:"card_type"`
}

type DeletePlayerRequest struct {
	ID uint `json:"id" binding:"required"`
}

type AwardPointsRequest struct {
	PlayerIDs   []uint `json:"player_ids" binding:"required,min=1"`
	Amount      int    `json:"amount" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type SetPINRequest struct {
	PlayerID uint   `json:"player_id" binding:"required"`
	PIN      string `json:"pin"`
}

// --- Response shapes ---

type LeaderboardEntry struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Position  string  `json:"position"`
	Number    *int    `json:"number"`
	ImageURL  *string `json:"image_url"`
	Pace      int     `json:"pace"`
	Shooting  int     `json:"shooting"`
	Passing   int     `json:"passing"`
	Dribbling int     `json:"dribbling"`
	Defending int     `json:"defending"`
	Physical  int     `json:"physical"`
	CardType  string  `json:"card_type"`
	Overall   int     `json:"overall"`
}

type PlayerMatchStats struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Position    string  `json:"position"`
	Number      *int    `json:"number"`
	ImageURL    *string `json:"image_url"`
	Appearances int     `json:"appearances"`
	Goals       int     `json:"goals"`
	Assists     int     `json:"assists"`
	YellowCards int     `json:"yellow_cards"`
	RedCards    int     `json:"red_cards"`
	MOTM        int     `json:"motm"`
}

type PointsAdminEntry struct {
	ID           uint               `json:"id"`
	Name         string             `json:"name"`
	PointBalance int                `json:"point_balance"`
	PointsEarned int                `json:"points_earned"`
	PointsSpent  int                `json:"points_spent"`
	Transactions []PointTransaction `json:"transactions"`
}

// GetAllPlayers godoc
// @Summary List players
// @Tags Players
// @Produce json
// @Success 200 {array} Player
// @Router /players [get]
func (pc *PlayerController) GetAllPlayers(c *gin.Context) {
	players, err := pc.repo.GetAllPlayers()
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch players: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, players)
}

// CreatePlayer godoc
// @Summary Create a player
// @Tags Players
// @Accept json
// @Produce json
// @Param player body CreatePlayerRequest true "Player data"
// @Success 201 {object} Player
// @Failure 400 {object} responses.ErrorResponse
// @Router /players [post]
func (pc *PlayerController) CreatePlayer(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Name and position are required")
		return
	}

	player := Player{
		Name:     req.Name,
		Position: req.Position,
		Number:   req.Number,
		ImageURL: req.ImageURL,
		// Attributes default to 50 unless supplied.
		Pace:      50,
		Shooting:  50,
		Passing:   50,
		Dribbling: 50,
		Defending: 50,
		Physical:  50,
		CardType:  DefaultCardType,
	}
	if req.Pace != nil {
		player.Pace = *req.Pace
	}
	if req.Shooting != nil {
		player.Shooting = *req.Shooting
	}
	if req.Passing != nil {
		player.Passing = *req.Passing
	}
	if req.Dribbling != nil {
		player.Dribbling = *req.Dribbling
	}
	if req.Defending != nil {
		player.Defending = *req.Defending
	}
	if req.Physical != nil {
		player.Physical = *req.Physical
	}

	if err := pc.repo.CreatePlayer(&player); err != nil {
		responses.InternalServerError(c, "Failed to create player: "+err.Error())
		return
	}
	c.JSON(http.StatusCreated, player)
}

// UpdatePlayer godoc
// @Summary Update a player
// @Tags Players
// @Accept json
// @Produce json
// @Param player body UpdatePlayerRequest true "Fields to update"
// @Success 200 {object} Player
// @Failure 404 {object} responses.ErrorResponse
// @Router /players [patch]
func (pc *PlayerController) UpdatePlayer(c *gin.Context) {
	var req UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Player id is required")
		return
	}

	existing, err := pc.repo.GetPlayerByID(req.ID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch player: "+err.Error())
		return
	}
	if existing == nil {
		responses.NotFound(c, "Player")
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.Number != nil {
		updates["number"] = *req.Number
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Pace != nil {
		updates["pace"] = *req.Pace
	}
	if req.Shooting != nil {
		updates["shooting"] = *req.Shooting
	}
	if req.Passing != nil {
		updates["passing"] = *req.Passing
	}
	if req.Dribbling != nil {
		updates["dribbling"] = *req.Dribbling
	}
	if req.Defending != nil {
		updates["defending"] = *req.Defending
	}
	if req.Physical != nil {
		updates["physical"] = *req.Physical
	}
	if req.CardType != nil {
		updates["card_type"] = *req.CardType
	}

	player, err := pc.repo.UpdatePlayer(req.ID, updates)
	if err != nil {
		responses.InternalServerError(c, "Failed to update player: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, player)
}

// DeletePlayer godoc
// @Summary Delete a player
// @Tags Players
// @Accept json
// @Produce json
// @Param player body DeletePlayerRequest true "Player id"
// @Success 200 {object} map[string]bool
// @Router /players [delete]
func (pc *PlayerController) DeletePlayer(c *gin.Context) {
	var req DeletePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Player id is required")
		return
	}

	existing, err := pc.repo.GetPlayerByID(req.ID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch player: "+err.Error())
		return
	}
	if existing == nil {
		responses.NotFound(c, "Player")
		return
	}

	if err := pc.repo.DeletePlayer(req.ID); err != nil {
		responses.InternalServerError(c, "Failed to delete player: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetLeaderboard godoc
// @Summary Attribute leaderboard
// @Description Players ranked by overall card rating.
// @Tags Players
// @Produce json
// @Success 200 {array} LeaderboardEntry
// @Router /leaderboard [get]
func (pc *PlayerController) GetLeaderboard(c *gin.Context) {
	players, err := pc.repo.GetAllPlayersByName()
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch players: "+err.Error())
		return
	}

	entries := make([]LeaderboardEntry, 0, len(players))
	for i := range players {
		p := &players[i]
		entries = append(entries, LeaderboardEntry{
			ID:        p.ID,
			Name:      p.Name,
			Position:  p.Position,
			Number:    p.Number,
			ImageURL:  p.ImageURL,
			Pace:      p.Pace,
			Shooting:  p.Shooting,
			Passing:   p.Passing,
			Dribbling: p.Dribbling,
			Defending: p.Defending,
			Physical:  p.Physical,
			CardType:  p.CardType,
			Overall:   p.Overall(),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Overall > entries[j].Overall
	})

	c.JSON(http.StatusOK, entries)
}

// GetPlayerStats godoc
// @Summary Per-player match statistics
// @Description Appearances, goals, assists, cards and MOTM counts.
// @Tags Players
// @Produce json
// @Success 200 {array} PlayerMatchStats
// @Router /stats/players [get]
func (pc *PlayerController) GetPlayerStats(c *gin.Context) {
	players, err := pc.repo.GetAllPlayersByName()
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch players: "+err.Error())
		return
	}
	appearances, err := pc.repo.AppearanceCounts()
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch appearances: "+err.Error())
		return
	}
	events, err := pc.repo.EventCounts()
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch events: "+err.Error())
		return
	}

	stats := make([]PlayerMatchStats, 0, len(players))
	for i := range players {
		p := &players[i]
		ev := events[p.ID]
		stats = append(stats, PlayerMatchStats{
			ID:          p.ID,
			Name:        p.Name,
			Position:    p.Position,
			Number:      p.Number,
			ImageURL:    p.ImageURL,
			Appearances: appearances[p.ID],
			Goals:       ev["goal"],
			Assists:     ev["assist"],
			YellowCards: ev["yellow_card"],
			RedCards:    ev["red_card"],
			MOTM:        ev["motm"],
		})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Goals != stats[j].Goals {
			return stats[i].Goals > stats[j].Goals
		}
		return stats[i].Appearances > stats[j].Appearances
	})

	c.JSON(http.StatusOK, stats)
}

// GetPointsOverview godoc
// @Summary Admin view of player balances
// @Description Balances with the ten most recent transactions per player.
// @Tags Points
// @Produce json
// @Success 200 {array} PointsAdminEntry
// @Router /admin/points [get]
func (pc *PlayerController) GetPointsOverview(c *gin.Context) {
	players, err := pc.repo.GetAllPlayersByName()
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch players: "+err.Error())
		return
	}

	entries := make([]PointsAdminEntry, 0, len(players))
	for i := range players {
		p := &players[i]
		txs, err := pc.repo.GetTransactions(p.ID, 10)
		if err != nil {
			responses.InternalServerError(c, "Failed to fetch transactions: "+err.Error())
			return
		}
		entries = append(entries, PointsAdminEntry{
			ID:           p.ID,
			Name:         p.Name,
			PointBalance: p.PointBalance,
			PointsEarned: p.PointsEarned,
			PointsSpent:  p.PointsSpent,
			Transactions: txs,
		})
	}
	c.JSON(http.StatusOK, entries)
}

// AwardPoints godoc
// @Summary Manual point award
// @Description Grants (or deducts, with a negative amount) points to a batch of players.
// @Tags Points
// @Accept json
// @Produce json
// @Param award body AwardPointsRequest true "Award data"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} responses.ErrorResponse
// @Router /admin/points [post]
func (pc *PlayerController) AwardPoints(c *gin.Context) {
	var req AwardPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "player_ids, amount, and description required")
		return
	}

	for _, pid := range req.PlayerIDs {
		if err := pc.ledger.Award(pid, req.Amount, TxAward, req.Description, nil); err != nil {
			if err == ErrPlayerNotFound {
				responses.NotFound(c, "Player")
				return
			}
			responses.InternalServerError(c, "Failed to award points: "+err.Error())
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SetPIN godoc
// @Summary Set or clear a player's login PIN
// @Tags Points
// @Accept json
// @Produce json
// @Param pin body SetPINRequest true "Player id and 4-digit PIN (empty to clear)"
// @Success 200 {object} Player
// @Failure 400 {object} responses.ErrorResponse
// @Router /admin/pins [patch]
func (pc *PlayerController) SetPIN(c *gin.Context) {
	var req SetPINRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Player id required")
		return
	}

	existing, err := pc.repo.GetPlayerByID(req.PlayerID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch player: "+err.Error())
		return
	}
	if existing == nil {
		responses.NotFound(c, "Player")
		return
	}

	hash := ""
	if req.PIN != "" {
		if !pinPattern.MatchString(req.PIN) {
			responses.BadRequest(c, "PIN must be exactly 4 digits")
			return
		}
		hash, err = utils.HashPIN(req.PIN)
		if err != nil {
			responses.InternalServerError(c, "Failed to hash PIN")
			return
		}
	}

	player, err := pc.repo.UpdatePlayer(req.PlayerID, map[string]interface{}{"pin_hash": hash})
	if err != nil {
		responses.InternalServerError(c, "Failed to update PIN: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, player)
}
