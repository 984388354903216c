package highlight

import (
	"github.com/ashfc/clubhouse/internal/match"
	"gorm.io/gorm"
)

// Highlight is a video clip shown on the site, optionally linked to a
// match.
type Highlight struct {
	gorm.Model
	Title     string       `json:"title" gorm:"not null"`
	VideoURL  string       `json:"video_url" gorm:"not null"`
	Thumbnail *string      `json:"thumbnail"`
	MatchID   *uint        `json:"match_id"`
	Match     *match.Match `json:"match,omitempty" gorm:"foreignKey:MatchID"`
	Pinned    bool         `json:"pinned" gorm:"default:false"`
}
