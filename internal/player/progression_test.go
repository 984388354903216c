package player

import (
	"testing"

	"github.com/ashfc/clubhouse/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpgradeStatRaisesStatAndCharges(t *testing.T) {
	db := openTestDB(t)
	ledger := NewLedger(db)
	p := seedPlayer(t, db, 30)

	got, err := ledger.UpgradeStat(p.ID, "shooting", 10)
	require.NoError(t, err)
	assert.Equal(t, 51, got.Shooting)
	assert.Equal(t, 20, got.PointBalance)
	assert.Equal(t, 10, got.PointsSpent)

	var tx PointTransaction
	require.NoError(t, db.Where("player_id = ? AND type = ?", p.ID, TxUpgrade).First(&tx).Error)
	assert.Equal(t, -10, tx.Amount)
	assert.Equal(t, "Upgraded SHOOTING to 51", tx.Description)
}

func TestUpgradeStatUnknownStat(t *testing.T) {
	db := openTestDB(t)
	ledger := NewLedger(db)
	p := seedPlayer(t, db, 100)

	_, err := ledger.UpgradeStat(p.ID, "charisma", 10)
	assert.ErrorIs(t, err, ErrUnknownStat)
}

func TestUpgradeStatAtMaxFailsWithoutCharge(t *testing.T) {
	db := openTestDB(t)
	ledger := NewLedger(db)
	p := seedPlayer(t, db, 100)
	require.NoError(t, db.Model(p).Update("pace", StatMax).Error)

	_, err := ledger.UpgradeStat(p.ID, "pace", 10)
	assert.ErrorIs(t, err, ErrStatMaxed)

	var got Player
	require.NoError(t, db.First(&got, p.ID).Error)
	assert.Equal(t, StatMax, got.Pace, "stat must not pass the cap")
	assert.Equal(t, 100, got.PointBalance, "failed upgrade must not charge")
}

func TestUpgradeStatInsufficientPoints(t *testing.T) {
	db := openTestDB(t)
	ledger := NewLedger(db)
	p := seedPlayer(t, db, 5)

	_, err := ledger.UpgradeStat(p.ID, "passing", 10)
	assert.ErrorIs(t, err, ErrInsufficientPoints)

	var got Player
	require.NoError(t, db.First(&got, p.ID).Error)
	assert.Equal(t, 50, got.Passing)
	assert.Equal(t, 5, got.PointBalance)
}

func TestUnlockCardUnlocksAndActivates(t *testing.T) {
	db := openTestDB(t)
	ledger := NewLedger(db)
	p := seedPlayer(t, db, 60)

	ct := settings.CardType{Value: "gold", Label: "Gold", UnlockCost: 50}
	got, err := ledger.UnlockCard(p.ID, ct)
	require.NoError(t, err)

	assert.Equal(t, "gold", got.CardType, "unlocking should switch to the new card")
	assert.True(t, got.HasUnlocked("gold"))
	assert.Equal(t, 10, got.PointBalance)

	var tx PointTransaction
	require.NoError(t, db.Where("player_id = ? AND type = ?", p.ID, TxCardUnlock).First(&tx).Error)
	assert.Equal(t, "Unlocked Gold card", tx.Description)
}

func TestUnlockCardAlreadyUnlocked(t *testing.T) {
	db := openTestDB(t)
	ledger := NewLedger(db)
	p := seedPlayer(t, db, 200)

	ct := settings.CardType{Value: "gold", Label: "Gold", UnlockCost: 50}
	_, err := ledger.UnlockCard(p.ID, ct)
	require.NoError(t, err)

	_, err = ledger.UnlockCard(p.ID, ct)
	assert.ErrorIs(t, err, ErrAlreadyUnlocked)

	var got Player
	require.NoError(t, db.First(&got, p.ID).Error)
	assert.Equal(t, 150, got.PointBalance, "second unlock must not charge again")
}

func TestSwitchCard(t *testing.T) {
	db := openTestDB(t)
	ledger := NewLedger(db)
	p := seedPlayer(t, db, 60)

	_, err := ledger.SwitchCard(p.ID, "gold")
	assert.ErrorIs(t, err, ErrNotUnlocked)

	ct := settings.CardType{Value: "gold", Label: "Gold", UnlockCost: 50}
	_, err = ledger.UnlockCard(p.ID, ct)
	require.NoError(t, err)

	got, err := ledger.SwitchCard(p.ID, DefaultCardType)
	require.NoError(t, err, "the default card is always selectable")
	assert.Equal(t, DefaultCardType, got.CardType)

	got, err = ledger.SwitchCard(p.ID, "gold")
	require.NoError(t, err)
	assert.Equal(t, "gold", got.CardType)
	assert.Equal(t, 10, got.PointBalance, "switching must not charge")
}

func TestOverallIsRoundedMean(t *testing.T) {
	p := Player{Pace: 80, Shooting: 70, Passing: 75, Dribbling: 77, Defending: 40, Physical: 66}
	// (80+70+75+77+40+66) = 408, mean 68.0
	assert.Equal(t, 68, p.Overall())

	p.Pace = 83
	// 411/6 = 68.5 rounds up
	assert.Equal(t, 69, p.Overall())
}

func TestLevelForXP(t *testing.T) {
	assert.Equal(t, "Rookie", LevelForXP(0))
	assert.Equal(t, "Rookie", LevelForXP(49))
	assert.Equal(t, "Starter", LevelForXP(50))
	assert.Equal(t, "Regular", LevelForXP(150))
	assert.Equal(t, "Veteran", LevelForXP(300))
	assert.Equal(t, "Legend", LevelForXP(500))
	assert.Equal(t, "Legend", LevelForXP(10000))
}
