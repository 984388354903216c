// player/model.go
package player

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// StatMax is the cap for every card attribute.
const StatMax = 99

// DefaultCardType is always selectable without unlocking.
const DefaultCardType = "default"

// StatFields are the six upgradeable card attributes, in display order.
var StatFields = [6]string{"pace", "shooting", "passing", "dribbling", "defending", "physical"}

// Point transaction type tags.
const (
	TxAward       = "award"
	TxTraining    = "training"
	TxStreakBonus = "streak_bonus"
	TxMOTM        = "motm"
	TxUpgrade     = "upgrade"
	TxCardUnlock  = "card_unlock"
)

// Player is a club roster member with a game-style attribute card and a
// reward-point account. PointBalance is the authoritative spendable total;
// PointTransactions are its audit trail.
type Player struct {
	gorm.Model
	Name     string  `json:"name" gorm:"not null"`
	Position string  `json:"position" gorm:"not null"`
	Number   *int    `json:"number"`
	ImageURL *string `json:"image_url"`

	Pace      int `json:"pace" gorm:"default:50"`
	Shooting  int `json:"shooting" gorm:"default:50"`
	Passing   int `json:"passing" gorm:"default:50"`
	Dribbling int `json:"dribbling" gorm:"default:50"`
	Defending int `json:"defending" gorm:"default:50"`
	Physical  int `json:"physical" gorm:"default:50"`

	CardType string `json:"card_type" gorm:"default:'default'"`

	PointBalance int `json:"point_balance" gorm:"default:0"`
	PointsEarned int `json:"points_earned" gorm:"default:0"`
	PointsSpent  int `json:"points_spent" gorm:"default:0"`

	// UnlockedCardTypes is a JSON-encoded []string at the storage boundary.
	UnlockedCardTypes string `json:"unlocked_card_types" gorm:"default:'[]'"`

	// PINHash is the bcrypt hash of the player's 4-digit login PIN. Never
	// serialized.
	PINHash string `json:"-" gorm:"column:pin_hash"`
}

// PointTransaction is a write-once ledger entry. MatchID is set only for
// match-bound awards (man of the match); the unique (type, match_id) index
// makes those awards idempotent per match.
type PointTransaction struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	PlayerID    uint      `json:"player_id" gorm:"index;not null"`
	Amount      int       `json:"amount" gorm:"not null"`
	Type        string    `json:"type" gorm:"not null;uniqueIndex:uniq_match_award"`
	Description string    `json:"description"`
	MatchID     *uint     `json:"match_id,omitempty" gorm:"uniqueIndex:uniq_match_award"`
	CreatedAt   time.Time `json:"created_at"`
}

// Attribute returns the named stat value; ok is false for unknown names.
func (p *Player) Attribute(name string) (int, bool) {
	switch name {
	case "pace":
		return p.Pace, true
	case "shooting":
		return p.Shooting, true
	case "passing":
		return p.Passing, true
	case "dribbling":
		return p.Dribbling, true
	case "defending":
		return p.Defending, true
	case "physical":
		return p.Physical, true
	}
	return 0, false
}

// IsStatField reports whether name is one of the six attributes.
func IsStatField(name string) bool {
	for _, f := range StatFields {
		if f == name {
			return true
		}
	}
	return false
}

// Overall is the rounded mean of the six attributes.
func (p *Player) Overall() int {
	sum := p.Pace + p.Shooting + p.Passing + p.Dribbling + p.Defending + p.Physical
	return (sum + 3) / 6
}

// UnlockedCards decodes the unlocked card-type set. Malformed JSON yields
// an empty set.
func (p *Player) UnlockedCards() []string {
	var cards []string
	if err := json.Unmarshal([]byte(p.UnlockedCardTypes), &cards); err != nil {
		return nil
	}
	return cards
}

// HasUnlocked reports whether cardType is in the unlocked set.
func (p *Player) HasUnlocked(cardType string) bool {
	for _, ct := range p.UnlockedCards() {
		if ct == cardType {
			return true
		}
	}
	return false
}

// LevelForXP maps lifetime earned points to an XP level label.
func LevelForXP(earned int) string {
	switch {
	case earned >= 500:
		return "Legend"
	case earned >= 300:
		return "Veteran"
	case earned >= 150:
		return "Regular"
	case earned >= 50:
		return "Starter"
	default:
		return "Rookie"
	}
}
