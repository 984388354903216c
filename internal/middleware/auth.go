package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ashfc/clubhouse/pkg/token"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	// AdminCookie and PlayerCookie are the two independent session cookies.
	AdminCookie  = "clubhouse_admin"
	PlayerCookie = "clubhouse_player"

	AuthPlayerIDKey = "auth_player_id"
)

// AdminRequired aborts with 401 unless the request carries a valid admin
// session cookie.
func AdminRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !AdminFromCookie(c, secret) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Admin session required"})
			return
		}
		c.Next()
	}
}

// PlayerRequired aborts with 401 unless the request carries a valid player
// session cookie referencing an existing player.
func PlayerRequired(secret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		playerID, ok := PlayerFromCookie(c, secret)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Player session required"})
			return
		}

		var count int64
		if err := db.Table("players").Where("id = ?", playerID).Count(&count).Error; err != nil || count == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Player not found"})
			return
		}

		c.Set(AuthPlayerIDKey, playerID)
		c.Next()
	}
}

// AdminFromCookie reports whether the request has a valid admin session,
// without aborting. Used by endpoints with role-dependent views.
func AdminFromCookie(c *gin.Context, secret string) bool {
	cookie, err := c.Cookie(AdminCookie)
	if err != nil {
		return false
	}
	claims, err := token.ValidateSession(cookie, secret)
	return err == nil && claims.Role == token.RoleAdmin
}

// PlayerFromCookie returns the authenticated player id, if any, without
// aborting.
func PlayerFromCookie(c *gin.Context, secret string) (uint, bool) {
	cookie, err := c.Cookie(PlayerCookie)
	if err != nil {
		return 0, false
	}
	claims, err := token.ValidateSession(cookie, secret)
	if err != nil || claims.Role != token.RolePlayer {
		return 0, false
	}
	return claims.PlayerID, true
}

// PlayerIDFromContext extracts the player id set by PlayerRequired.
func PlayerIDFromContext(c *gin.Context) (uint, error) {
	playerID, exists := c.Get(AuthPlayerIDKey)
	if !exists {
		return 0, errors.New("player id not found in context")
	}

	pid, ok := playerID.(uint)
	if !ok {
		return 0, fmt.Errorf("player id has unexpected type: %T", playerID)
	}

	return pid, nil
}
