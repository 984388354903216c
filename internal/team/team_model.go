// team/model.go
package team

import "gorm.io/gorm"

// Team represents a league opponent (or the club itself). The Manual*
// counters hold results the admin entered by hand, for games that were
// never recorded as Match rows; the standings calculator adds them on top
// of real match data.
type Team struct {
	gorm.Model
	Name        string `json:"name" gorm:"uniqueIndex;not null"`
	ManualWon   int    `json:"manual_won" gorm:"default:0"`
	ManualDrawn int    `json:"manual_drawn" gorm:"default:0"`
	ManualLost  int    `json:"manual_lost" gorm:"default:0"`
	ManualGF    int    `json:"manual_gf" gorm:"default:0"`
	ManualGA    int    `json:"manual_ga" gorm:"default:0"`
}
