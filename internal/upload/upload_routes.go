package upload

import (
	"github.com/ashfc/clubhouse/config"
	mw "github.com/ashfc/clubhouse/internal/middleware"
	"github.com/gin-gonic/gin"
)

// UploadRoutes sets up the admin-only image upload route.
func UploadRoutes(router *gin.RouterGroup, appConfig *config.Config) {
	uploadController := NewUploadController(appConfig)

	adminRoutes := router.Group("/")
	adminRoutes.Use(mw.AdminRequired(appConfig.Session.Secret))
	{
		adminRoutes.POST("/upload", uploadController.UploadImage)
	}
}
