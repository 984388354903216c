package player

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ashfc/clubhouse/internal/settings"
	"gorm.io/gorm"
)

// UpgradeStat raises one attribute by a single point in exchange for cost.
// Fails when the stat is unknown, already at StatMax, or the balance can't
// cover the cost; no partial write happens on failure.
func (l *Ledger) UpgradeStat(playerID uint, stat string, cost int) (*Player, error) {
	if !IsStatField(stat) {
		return nil, ErrUnknownStat
	}

	var out Player
	err := l.db.Transaction(func(tx *gorm.DB) error {
		var p Player
		if err := tx.First(&p, playerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPlayerNotFound
			}
			return err
		}

		current, _ := p.Attribute(stat)
		if current >= StatMax {
			return ErrStatMaxed
		}
		if p.PointBalance < cost {
			return ErrInsufficientPoints
		}

		desc := fmt.Sprintf("Upgraded %s to %d", strings.ToUpper(stat), current+1)
		// stat is whitelisted by IsStatField above, safe as a column name.
		if err := spendTx(tx, &p, cost, TxUpgrade, desc, map[string]interface{}{
			stat: current + 1,
		}); err != nil {
			return err
		}

		return tx.First(&out, playerID).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UnlockCard permanently unlocks a catalog card type for cost and makes it
// the player's active card.
func (l *Ledger) UnlockCard(playerID uint, ct settings.CardType) (*Player, error) {
	var out Player
	err := l.db.Transaction(func(tx *gorm.DB) error {
		var p Player
		if err := tx.First(&p, playerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPlayerNotFound
			}
			return err
		}

		if p.HasUnlocked(ct.Value) {
			return ErrAlreadyUnlocked
		}
		if p.PointBalance < ct.UnlockCost {
			return ErrInsufficientPoints
		}

		unlocked := append(p.UnlockedCards(), ct.Value)
		encoded, err := json.Marshal(unlocked)
		if err != nil {
			return err
		}

		if err := spendTx(tx, &p, ct.UnlockCost, TxCardUnlock, fmt.Sprintf("Unlocked %s card", ct.Label), map[string]interface{}{
			"unlocked_card_types": string(encoded),
			"card_type":           ct.Value,
		}); err != nil {
			return err
		}

		return tx.First(&out, playerID).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SwitchCard changes the active card skin. The default type is always
// selectable; anything else requires prior unlocking.
func (l *Ledger) SwitchCard(playerID uint, cardType string) (*Player, error) {
	var p Player
	if err := l.db.First(&p, playerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	if cardType != DefaultCardType && !p.HasUnlocked(cardType) {
		return nil, ErrNotUnlocked
	}

	if err := l.db.Model(&p).Update("card_type", cardType).Error; err != nil {
		return nil, err
	}
	p.CardType = cardType
	return &p, nil
}
