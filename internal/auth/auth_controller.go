package auth

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/ashfc/clubhouse/config"
	mw "github.com/ashfc/clubhouse/internal/middleware"
	"github.com/ashfc/clubhouse/internal/player"
	"github.com/ashfc/clubhouse/pkg/responses"
	"github.com/ashfc/clubhouse/pkg/token"
	"github.com/ashfc/clubhouse/utils"
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

// AuthController issues and clears the admin and player session cookies.
type AuthController struct {
	cfg        *config.Config
	playerRepo player.PlayerRepository
}

func NewAuthController(cfg *config.Config, playerRepo player.PlayerRepository) *AuthController {
	return &AuthController{cfg: cfg, playerRepo: playerRepo}
}

type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type PlayerLoginRequest struct {
	PlayerID uint   `json:"player_id" binding:"required"`
	PIN      string `json:"pin" binding:"required"`
}

func (ac *AuthController) setSessionCookie(c *gin.Context, name, value string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, int(ttl.Seconds()), "/", "", ac.cfg.App.Env == "production", true)
}

func (ac *AuthController) clearSessionCookie(c *gin.Context, name string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, "", -1, "/", "", ac.cfg.App.Env == "production", true)
}

// AdminLogin godoc
// @Summary Admin login
// @Description Checks credentials against the configured admin account and sets the admin session cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body AdminLoginRequest true "Admin credentials"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} responses.ErrorResponse
// @Router /admin/login [post]
func (ac *AuthController) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Username and password required")
		return
	}

	if ac.cfg.Admin.Username == "" || ac.cfg.Admin.Password == "" {
		log.Warn("Admin login attempted but no admin credentials are configured")
		responses.Unauthorized(c, "Admin login is disabled")
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(ac.cfg.Admin.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(ac.cfg.Admin.Password)) == 1
	if !userOK || !passOK {
		responses.Unauthorized(c, "Invalid credentials")
		return
	}

	ttl := time.Duration(ac.cfg.Session.AdminTTLHours) * time.Hour
	session, err := token.GenerateSession(0, token.RoleAdmin, ac.cfg.Session.Secret, ttl)
	if err != nil {
		responses.InternalServerError(c, "Failed to create session: "+err.Error())
		return
	}

	ac.setSessionCookie(c, mw.AdminCookie, session, ttl)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AdminSession godoc
// @Summary Check the admin session
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 401 {object} responses.ErrorResponse
// @Router /admin/login [get]
func (ac *AuthController) AdminSession(c *gin.Context) {
	if !mw.AdminFromCookie(c, ac.cfg.Session.Secret) {
		responses.Unauthorized(c, "Not authenticated")
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true})
}

// AdminLogout godoc
// @Summary Admin logout
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /admin/login [delete]
func (ac *AuthController) AdminLogout(c *gin.Context) {
	ac.clearSessionCookie(c, mw.AdminCookie)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// PlayerLogin godoc
// @Summary Player login
// @Description Verifies the player's 4-digit PIN and sets the player session cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body PlayerLoginRequest true "Player id and PIN"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} responses.ErrorResponse
// @Router /player/login [post]
func (ac *AuthController) PlayerLogin(c *gin.Context) {
	var req PlayerLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "player_id and pin required")
		return
	}

	p, err := ac.playerRepo.GetPlayerByID(req.PlayerID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch player: "+err.Error())
		return
	}
	if p == nil || p.PINHash == "" || !utils.CheckPIN(p.PINHash, req.PIN) {
		responses.Unauthorized(c, "Invalid player or PIN")
		return
	}

	ttl := time.Duration(ac.cfg.Session.PlayerTTLDays) * 24 * time.Hour
	session, err := token.GenerateSession(p.ID, token.RolePlayer, ac.cfg.Session.Secret, ttl)
	if err != nil {
		responses.InternalServerError(c, "Failed to create session: "+err.Error())
		return
	}

	ac.setSessionCookie(c, mw.PlayerCookie, session, ttl)
	c.JSON(http.StatusOK, gin.H{"success": true, "player_id": p.ID})
}

// PlayerSession godoc
// @Summary Check the player session
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} responses.ErrorResponse
// @Router /player/login [get]
func (ac *AuthController) PlayerSession(c *gin.Context) {
	playerID, ok := mw.PlayerFromCookie(c, ac.cfg.Session.Secret)
	if !ok {
		responses.Unauthorized(c, "Not authenticated")
		return
	}

	p, err := ac.playerRepo.GetPlayerByID(playerID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch player: "+err.Error())
		return
	}
	if p == nil {
		ac.clearSessionCookie(c, mw.PlayerCookie)
		responses.Unauthorized(c, "Not authenticated")
		return
	}

	c.JSON(http.StatusOK, gin.H{"authenticated": true, "player_id": p.ID, "name": p.Name})
}

// PlayerLogout godoc
// @Summary Player logout
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /player/login [delete]
func (ac *AuthController) PlayerLogout(c *gin.Context) {
	ac.clearSessionCookie(c, mw.PlayerCookie)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
