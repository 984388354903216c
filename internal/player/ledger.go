package player

import (
	"errors"

	"gorm.io/gorm"
)

// Ledger errors surfaced to controllers, which map them to HTTP statuses.
var (
	ErrPlayerNotFound     = errors.New("player not found")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrStatMaxed          = errors.New("stat already at maximum")
	ErrUnknownStat        = errors.New("unknown stat")
	ErrAlreadyUnlocked    = errors.New("card type already unlocked")
	ErrNotUnlocked        = errors.New("card type not unlocked")
)

// Ledger performs every balance-changing mutation. Each call pairs the
// player-row update with an appended PointTransaction inside one database
// transaction; balance updates are atomic increments guarded by a balance
// predicate, so two racing spends can never drive a balance negative.
type Ledger struct {
	db *gorm.DB
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// Award credits amount to the player and logs a transaction. Amount may be
// negative for manual admin corrections; lifetime earnings only grow for
// positive amounts.
func (l *Ledger) Award(playerID uint, amount int, txType, description string, matchID *uint) error {
	return l.db.Transaction(func(tx *gorm.DB) error {
		return AwardTx(tx, playerID, amount, txType, description, matchID)
	})
}

// AwardTx is Award running inside an existing transaction, for callers that
// batch several ledger writes (training confirmation, match event saves).
func AwardTx(tx *gorm.DB, playerID uint, amount int, txType, description string, matchID *uint) error {
	earned := 0
	if amount > 0 {
		earned = amount
	}

	res := tx.Model(&Player{}).Where("id = ?", playerID).Updates(map[string]interface{}{
		"point_balance": gorm.Expr("point_balance + ?", amount),
		"points_earned": gorm.Expr("points_earned + ?", earned),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPlayerNotFound
	}

	return tx.Create(&PointTransaction{
		PlayerID:    playerID,
		Amount:      amount,
		Type:        txType,
		Description: description,
		MatchID:     matchID,
	}).Error
}

// spendTx deducts cost from the player's balance if and only if the balance
// covers it, applies extraUpdates to the same row, and logs a negative
// transaction. The balance predicate in the UPDATE closes the check-then-
// write race window.
func spendTx(tx *gorm.DB, p *Player, cost int, txType, description string, extraUpdates map[string]interface{}) error {
	updates := map[string]interface{}{
		"point_balance": gorm.Expr("point_balance - ?", cost),
		"points_spent":  gorm.Expr("points_spent + ?", cost),
	}
	for k, v := range extraUpdates {
		updates[k] = v
	}

	res := tx.Model(&Player{}).
		Where("id = ? AND point_balance >= ?", p.ID, cost).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientPoints
	}

	return tx.Create(&PointTransaction{
		PlayerID:    p.ID,
		Amount:      -cost,
		Type:        txType,
		Description: description,
	}).Error
}
