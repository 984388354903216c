package settings

import (
	"encoding/json"
	"time"
)

// SiteSettings is a singleton row (id = 1) of admin-tunable constants and
// feature toggles.
type SiteSettings struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	TeamPhotoURL  string `json:"team_photo_url"`
	PlayerCardsOn bool   `json:"player_cards_on" gorm:"default:true"`

	// CardTypes is the cosmetic card catalog, JSON-encoded at the storage
	// boundary. Use CardTypeCatalog to read it.
	CardTypes string `json:"card_types" gorm:"default:'[]'"`

	PointsPerTraining int `json:"points_per_training" gorm:"default:10"`
	UpgradeCost       int `json:"upgrade_cost" gorm:"default:10"`
	MOTMPoints        int `json:"motm_points" gorm:"default:15"`
	StreakBonus3      int `json:"streak_bonus_3" gorm:"default:15"`
	StreakBonus5      int `json:"streak_bonus_5" gorm:"default:25"`
	StreakBonus10     int `json:"streak_bonus_10" gorm:"default:50"`

	ShowGoalScorers bool `json:"show_goal_scorers" gorm:"default:true"`
	ShowHighlights  bool `json:"show_highlights" gorm:"default:true"`
	ShowPlayerStats bool `json:"show_player_stats" gorm:"default:true"`
	ShowMOTM        bool `json:"show_motm" gorm:"default:true"`
	ShowStreaks     bool `json:"show_streaks" gorm:"default:true"`
	ShowLevels      bool `json:"show_levels" gorm:"default:true"`
}

// CardType is one entry of the cosmetic card catalog.
type CardType struct {
	Value      string `json:"value"`
	Label      string `json:"label"`
	ImageURL   string `json:"image_url,omitempty"`
	UnlockCost int    `json:"unlock_cost,omitempty"`
	Unlockable *bool  `json:"unlockable,omitempty"`
}

// IsUnlockable defaults to true when the catalog entry doesn't say.
func (ct CardType) IsUnlockable() bool {
	return ct.Unlockable == nil || *ct.Unlockable
}

// CardTypeCatalog decodes the stored card-type catalog. Malformed JSON
// yields an empty catalog rather than an error.
func (s *SiteSettings) CardTypeCatalog() []CardType {
	var types []CardType
	if err := json.Unmarshal([]byte(s.CardTypes), &types); err != nil {
		return nil
	}
	return types
}

// FindCardType looks up a catalog entry by its value.
func (s *SiteSettings) FindCardType(value string) (CardType, bool) {
	for _, ct := range s.CardTypeCatalog() {
		if ct.Value == value {
			return ct, true
		}
	}
	return CardType{}, false
}

// BonusForStreak returns the configured bonus for an exact streak length,
// or zero. Thresholds are exact hits only, a streak of 4 or 11 pays nothing.
func (s *SiteSettings) BonusForStreak(streak int) int {
	switch streak {
	case 3:
		return s.StreakBonus3
	case 5:
		return s.StreakBonus5
	case 10:
		return s.StreakBonus10
	default:
		return 0
	}
}
