package auth

import (
	"github.com/ashfc/clubhouse/config"
	"github.com/ashfc/clubhouse/internal/player"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthRoutes sets up session login, check, and logout routes.
func AuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	playerRepo := player.NewPlayerRepository(db)
	authController := NewAuthController(appConfig, playerRepo)

	router.POST("/admin/login", authController.AdminLogin)
	router.GET("/admin/login", authController.AdminSession)
	router.DELETE("/admin/login", authController.AdminLogout)

	router.POST("/player/login", authController.PlayerLogin)
	router.GET("/player/login", authController.PlayerSession)
	router.DELETE("/player/login", authController.PlayerLogout)
}
