package highlight

import (
	"net/http"

	"github.com/ashfc/clubhouse/pkg/responses"
	"github.com/gin-gonic/gin"
)

type HighlightController struct {
	repo HighlightRepository
}

func NewHighlightController(repo HighlightRepository) *HighlightController {
	return &HighlightController{repo: repo}
}

type CreateHighlightRequest struct {
	Title     string  `json:"title" binding:"required"`
	VideoURL  string  `json:"video_url" binding:"required,url"`
	Thumbnail *string `json:"thumbnail"`
	MatchID   *uint   `json:"match_id"`
	Pinned    bool    `json:"pinned"`
}

type UpdateHighlightRequest struct {
	ID        uint    `json:"id" binding:"required"`
	Title     *string `json:"title"`
	VideoURL  *string `json:"video_url"`
	Thumbnail *string `json:"thumbnail"`
	MatchID   *uint   `json:"match_id"`
	Pinned    *bool   `json:"pinned"`
}

type DeleteHighlightRequest struct {
	ID uint `json:"id" binding:"required"`
}

// GetHighlights godoc
// @Summary List highlights
// @Description Pinned clips first, then newest first.
// @Tags Highlights
// @Produce json
// @Success 200 {array} Highlight
// @Router /highlights [get]
func (hc *HighlightController) GetHighlights(c *gin.Context) {
	highlights, err := hc.repo.GetAllHighlights()
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch highlights: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, highlights)
}

// CreateHighlight godoc
// @Summary Add a highlight
// @Tags Highlights
// @Accept json
// @Produce json
// @Param highlight body CreateHighlightRequest true "Highlight data"
// @Success 201 {object} Highlight
// @Failure 400 {object} responses.ErrorResponse
// @Router /highlights [post]
func (hc *HighlightController) CreateHighlight(c *gin.Context) {
	var req CreateHighlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Title and a valid video_url required")
		return
	}

	highlight := Highlight{
		Title:     req.Title,
		VideoURL:  req.VideoURL,
		Thumbnail: req.Thumbnail,
		MatchID:   req.MatchID,
		Pinned:    req.Pinned,
	}
	if err := hc.repo.CreateHighlight(&highlight); err != nil {
		responses.InternalServerError(c, "Failed to create highlight: "+err.Error())
		return
	}
	c.JSON(http.StatusCreated, highlight)
}

// UpdateHighlight godoc
// @Summary Update a highlight
// @Tags Highlights
// @Accept json
// @Produce json
// @Param highlight body UpdateHighlightRequest true "Fields to update"
// @Success 200 {object} Highlight
// @Failure 404 {object} responses.ErrorResponse
// @Router /highlights [patch]
func (hc *HighlightController) UpdateHighlight(c *gin.Context) {
	var req UpdateHighlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Highlight id required")
		return
	}

	existing, err := hc.repo.GetHighlightByID(req.ID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch highlight: "+err.Error())
		return
	}
	if existing == nil {
		responses.NotFound(c, "Highlight")
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.VideoURL != nil {
		updates["video_url"] = *req.VideoURL
	}
	if req.Thumbnail != nil {
		updates["thumbnail"] = *req.Thumbnail
	}
	if req.MatchID != nil {
		updates["match_id"] = *req.MatchID
	}
	if req.Pinned != nil {
		updates["pinned"] = *req.Pinned
	}

	highlight, err := hc.repo.UpdateHighlight(req.ID, updates)
	if err != nil {
		responses.InternalServerError(c, "Failed to update highlight: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, highlight)
}

// DeleteHighlight godoc
// @Summary Delete a highlight
// @Tags Highlights
// @Accept json
// @Produce json
// @Param highlight body DeleteHighlightRequest true "Highlight id"
// @Success 200 {object} map[string]bool
// @Router /highlights [delete]
func (hc *HighlightController) DeleteHighlight(c *gin.Context) {
	var req DeleteHighlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Highlight id required")
		return
	}

	if err := hc.repo.DeleteHighlight(req.ID); err != nil {
		responses.InternalServerError(c, "Failed to delete highlight: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
