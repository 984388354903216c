// training/model.go
package training

import (
	"time"

	"github.com/ashfc/clubhouse/internal/player"
	"gorm.io/gorm"
)

// Training is a scheduled session. Completed flips exactly once, at
// confirmation time, and locks further RSVP changes.
type Training struct {
	gorm.Model
	Date      time.Time      `json:"date" gorm:"index;not null"`
	Location  string         `json:"location" gorm:"not null"`
	Notes     *string        `json:"notes"`
	Completed bool           `json:"completed" gorm:"default:false"`
	Rsvps     []TrainingRsvp `json:"rsvps" gorm:"foreignKey:TrainingID"`
}

// RSVP statuses.
const (
	StatusIn  = "in"
	StatusOut = "out"
)

// TrainingRsvp is a player's signup for one training, unique per
// (training, player). Attended is set only when the session is confirmed.
type TrainingRsvp struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	TrainingID uint      `json:"training_id" gorm:"not null;uniqueIndex:uniq_training_rsvp"`
	PlayerID   uint      `json:"player_id" gorm:"not null;uniqueIndex:uniq_training_rsvp"`

	Player   player.Player `json:"player" gorm:"foreignKey:PlayerID"`
	Status   string        `json:"status" gorm:"default:'in'"`
	Attended bool          `json:"attended" gorm:"default:false"`
}
