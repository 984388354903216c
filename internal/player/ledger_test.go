package player

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "opening in-memory database should not fail")
	require.NoError(t, db.AutoMigrate(&Player{}, &PointTransaction{}))
	return db
}

func seedPlayer(t *testing.T, db *gorm.DB, balance int) *Player {
	t.Helper()
	p := &Player{
		Name:              "Jamie",
		Position:          "ST",
		PointBalance:      balance,
		PointsEarned:      balance,
		UnlockedCardTypes: "[]",
		CardType:          DefaultCardType,
		Pace:              50, Shooting: 50, Passing: 50,
		Dribbling: 50, Defending: 50, Physical: 50,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func TestAwardCreditsBalanceAndLogsTransaction(t *testing.T) {
	db := openTestDB(t)
	ledger := NewLedger(db)
	p := seedPlayer(t, db, 0)

	err := ledger.Award(p.ID, 25, TxAward, "Great performance", nil)
	require.NoError(t, err)

	var got Player
	require.NoError(t, db.First(&got, p.ID).Error)
	assert.Equal(t, 25, got.PointBalance)
	assert.Equal(t, 25, got.PointsEarned)
	assert.Equal(t, 0, got.PointsSpent)

	var txs []PointTransaction
	require.NoError(t, db.Where("player_id = ?", p.ID).Find(&txs).Error)
	require.Len(t, txs, 1)
	assert.Equal(t, 25, txs[0].Amount)
	assert.Equal(t, TxAward, txs[0].Type)
	assert.Equal(t, "Great performance", txs[0].Description)
}

func TestAwardNegativeAmountDoesNotGrowEarned(t *testing.T) {
	db := openTestDB(t)
	ledger := NewLedger(db)
	p := seedPlayer(t, db, 40)

	err := ledger.Award(p.ID, -15, TxAward, "Correction", nil)
	require.NoError(t, err)

	var got Player
	require.NoError(t, db.First(&got, p.ID).Error)
	assert.Equal(t, 25, got.PointBalance)
	assert.Equal(t, 40, got.PointsEarned, "lifetime earnings should not shrink")
}

func TestAwardUnknownPlayer(t *testing.T) {
	db := openTestDB(t)
	ledger := NewLedger(db)

	err := ledger.Award(999, 10, TxAward, "ghost", nil)
	assert.ErrorIs(t, err, ErrPlayerNotFound)

	var count int64
	require.NoError(t, db.Model(&PointTransaction{}).Count(&count).Error)
	assert.Zero(t, count, "no transaction should be logged for a missing player")
}

func TestBalanceMatchesTransactionSum(t *testing.T) {
	db := openTestDB(t)
	ledger := NewLedger(db)
	p := seedPlayer(t, db, 0)

	require.NoError(t, ledger.Award(p.ID, 30, TxTraining, "Training attendance: The Rec", nil))
	require.NoError(t, ledger.Award(p.ID, 15, TxStreakBonus, "3-training attendance streak bonus", nil))
	_, err := ledger.UpgradeStat(p.ID, "pace", 10)
	require.NoError(t, err)

	var got Player
	require.NoError(t, db.First(&got, p.ID).Error)

	var sum int
	require.NoError(t, db.Model(&PointTransaction{}).
		Where("player_id = ?", p.ID).
		Select("COALESCE(SUM(amount), 0)").Scan(&sum).Error)
	assert.Equal(t, got.PointBalance, sum, "balance should equal the sum of ledger entries")
	assert.Equal(t, 35, got.PointBalance)
	assert.Equal(t, 45, got.PointsEarned)
	assert.Equal(t, 10, got.PointsSpent)
}
