package upload

import (
	"net/http"

	"github.com/ashfc/clubhouse/config"
	"github.com/ashfc/clubhouse/pkg/responses"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
)

const uploadFolder = "clubhouse"

// UploadController pushes image files to Cloudinary and returns the
// hosted URL.
type UploadController struct {
	cfg *config.Config
}

func NewUploadController(cfg *config.Config) *UploadController {
	return &UploadController{cfg: cfg}
}

// UploadImage godoc
// @Summary Upload an image
// @Description Accepts a multipart file field named "file" and returns the hosted URL.
// @Tags Upload
// @Accept mpfd
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} map[string]string
// @Failure 400 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse "Cloudinary not configured"
// @Router /upload [post]
func (uc *UploadController) UploadImage(c *gin.Context) {
	cfg := uc.cfg.Cloudinary
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		responses.InternalServerError(c, "Cloudinary not configured. Check env vars: CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY, CLOUDINARY_API_SECRET")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		responses.BadRequest(c, "No file provided")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		responses.BadRequest(c, "Failed to read file: "+err.Error())
		return
	}
	defer file.Close()

	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		responses.InternalServerError(c, "Failed to init Cloudinary: "+err.Error())
		return
	}

	resp, err := cld.Upload.Upload(c.Request.Context(), file, uploader.UploadParams{Folder: uploadFolder})
	if err != nil {
		responses.InternalServerError(c, "Upload failed: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": resp.SecureURL})
}
