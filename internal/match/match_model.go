// match/model.go
package match

import (
	"time"

	"github.com/ashfc/clubhouse/internal/player"
	"github.com/ashfc/clubhouse/internal/team"
	"gorm.io/gorm"
)

// Match is a fixture between two teams. Nil scores mean not yet played; a
// match with both scores set is completed. Cancelled matches never count
// towards standings, whatever their scores say.
type Match struct {
	gorm.Model
	Date         time.Time         `json:"date" gorm:"index;not null"`
	Venue        string            `json:"venue"`
	HomeTeamID   uint              `json:"home_team_id" gorm:"index;not null"`
	AwayTeamID   uint              `json:"away_team_id" gorm:"index;not null"`
	HomeTeam     team.Team         `json:"home_team" gorm:"foreignKey:HomeTeamID"`
	AwayTeam     team.Team         `json:"away_team" gorm:"foreignKey:AwayTeamID"`
	HomeScore    *int              `json:"home_score"`
	AwayScore    *int              `json:"away_score"`
	Cancelled    bool              `json:"cancelled" gorm:"default:false"`
	CancelReason string            `json:"cancel_reason"`
	Events       []MatchEvent      `json:"events" gorm:"foreignKey:MatchID"`
	Appearances  []MatchAppearance `json:"appearances" gorm:"foreignKey:MatchID"`
}

// Completed reports whether the match counts as a played result: both
// scores recorded and not cancelled.
func (m *Match) Completed() bool {
	return m.HomeScore != nil && m.AwayScore != nil && !m.Cancelled
}

// Event types recorded against a match.
const (
	EventGoal       = "goal"
	EventAssist     = "assist"
	EventYellowCard = "yellow_card"
	EventRedCard    = "red_card"
	EventMOTM       = "motm"
)

// MatchEvent is a single recorded incident (goal, card, man of the match).
// Events are replaced wholesale when a match is edited, so they carry no
// soft-delete bookkeeping.
type MatchEvent struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	CreatedAt time.Time      `json:"created_at"`
	MatchID   uint           `json:"match_id" gorm:"index;not null"`
	PlayerID  *uint          `json:"player_id"`
	Player    *player.Player `json:"player,omitempty" gorm:"foreignKey:PlayerID"`
	Type      string         `json:"type" gorm:"not null"`
	Minute    *int           `json:"minute"`
	Notes     string         `json:"notes"`
}

// MatchAppearance marks that a player featured in a match.
type MatchAppearance struct {
	ID        uint          `json:"id" gorm:"primarykey"`
	CreatedAt time.Time     `json:"created_at"`
	MatchID   uint          `json:"match_id" gorm:"index;not null;uniqueIndex:uniq_appearance"`
	PlayerID  uint          `json:"player_id" gorm:"not null;uniqueIndex:uniq_appearance"`
	Player    player.Player `json:"player" gorm:"foreignKey:PlayerID"`
}
