package training

import (
	"fmt"
	"testing"
	"time"

	"github.com/ashfc/clubhouse/internal/player"
	"github.com/ashfc/clubhouse/internal/settings"
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
	require.NoError(t, db.AutoMigrate(
		&player.Player{}, &player.PointTransaction{},
		&Training{}, &TrainingRsvp{},
	))
	return db
}

func seedPlayer(t *testing.T, db *gorm.DB, name string) *player.Player {
	t.Helper()
	p := &player.Player{Name: name, Position: "CM", UnlockedCardTypes: "[]"}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedTraining(t *testing.T, db *gorm.DB, date time.Time) *Training {
	t.Helper()
	tr := &Training{Date: date, Location: "The Rec"}
	require.NoError(t, db.Create(tr).Error)
	return tr
}

// seedAttendedTraining creates an already-confirmed session the given
// players attended.
func seedAttendedTraining(t *testing.T, db *gorm.DB, date time.Time, playerIDs ...uint) {
	t.Helper()
	tr := &Training{Date: date, Location: "The Rec", Completed: true}
	require.NoError(t, db.Create(tr).Error)
	for _, pid := range playerIDs {
		rsvp := TrainingRsvp{TrainingID: tr.ID, PlayerID: pid, Status: StatusIn, Attended: true}
		require.NoError(t, db.Create(&rsvp).Error)
	}
}

func testSettings() *settings.SiteSettings {
	return &settings.SiteSettings{
		PointsPerTraining: 10,
		StreakBonus3:      15,
		StreakBonus5:      25,
		StreakBonus10:     50,
		ShowStreaks:       true,
	}
}

func balance(t *testing.T, db *gorm.DB, playerID uint) int {
	t.Helper()
	var p player.Player
	require.NoError(t, db.First(&p, playerID).Error)
	return p.PointBalance
}

func TestConfirmAwardsPointsAndCompletes(t *testing.T) {
	db := openTestDB(t)
	repo := NewTrainingRepository(db)

	alice := seedPlayer(t, db, "Alice")
	bob := seedPlayer(t, db, "Bob")
	tr := seedTraining(t, db, time.Now())

	// Bob said out but showed up anyway.
	_, err := repo.UpsertRsvp(tr.ID, bob.ID, StatusOut)
	require.NoError(t, err)

	err = Confirm(db, tr, []uint{alice.ID, bob.ID}, testSettings())
	require.NoError(t, err)

	got, err := repo.GetTrainingByID(tr.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)
	require.Len(t, got.Rsvps, 2)
	for _, r := range got.Rsvps {
		assert.True(t, r.Attended, "player %d should be marked attended", r.PlayerID)
	}

	assert.Equal(t, 10, balance(t, db, alice.ID))
	assert.Equal(t, 10, balance(t, db, bob.ID))

	var tx player.PointTransaction
	require.NoError(t, db.Where("player_id = ? AND type = ?", alice.ID, player.TxTraining).First(&tx).Error)
	assert.Equal(t, "Training attendance: The Rec", tx.Description)
}

func TestConfirmClearsUnlistedRsvps(t *testing.T) {
	db := openTestDB(t)
	repo := NewTrainingRepository(db)

	alice := seedPlayer(t, db, "Alice")
	bob := seedPlayer(t, db, "Bob")
	tr := seedTraining(t, db, time.Now())

	_, err := repo.UpsertRsvp(tr.ID, alice.ID, StatusIn)
	require.NoError(t, err)
	_, err = repo.UpsertRsvp(tr.ID, bob.ID, StatusIn)
	require.NoError(t, err)

	// Only Alice actually showed up.
	require.NoError(t, Confirm(db, tr, []uint{alice.ID}, testSettings()))

	var bobRsvp TrainingRsvp
	require.NoError(t, db.Where("training_id = ? AND player_id = ?", tr.ID, bob.ID).First(&bobRsvp).Error)
	assert.False(t, bobRsvp.Attended, "no-shows must not be marked attended")
	assert.Zero(t, balance(t, db, bob.ID), "no-shows earn nothing")
	assert.Equal(t, 10, balance(t, db, alice.ID))
}

func TestConfirmTwiceFailsWithoutDoublePay(t *testing.T) {
	db := openTestDB(t)

	alice := seedPlayer(t, db, "Alice")
	tr := seedTraining(t, db, time.Now())

	require.NoError(t, Confirm(db, tr, []uint{alice.ID}, testSettings()))
	err := Confirm(db, tr, []uint{alice.ID}, testSettings())
	assert.ErrorIs(t, err, ErrAlreadyConfirmed)

	assert.Equal(t, 10, balance(t, db, alice.ID), "second confirmation must not pay again")

	var count int64
	require.NoError(t, db.Model(&player.PointTransaction{}).
		Where("player_id = ?", alice.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestConfirmStreakBonusOnExactThreshold(t *testing.T) {
	db := openTestDB(t)

	alice := seedPlayer(t, db, "Alice")
	base := time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)
	seedAttendedTraining(t, db, base, alice.ID)
	seedAttendedTraining(t, db, base.AddDate(0, 0, 2), alice.ID)

	// Third consecutive session hits the streak threshold.
	tr := seedTraining(t, db, base.AddDate(0, 0, 4))
	require.NoError(t, Confirm(db, tr, []uint{alice.ID}, testSettings()))

	assert.Equal(t, 25, balance(t, db, alice.ID), "attendance plus the 3-streak bonus")

	var bonus player.PointTransaction
	require.NoError(t, db.Where("player_id = ? AND type = ?", alice.ID, player.TxStreakBonus).First(&bonus).Error)
	assert.Equal(t, 15, bonus.Amount)
	assert.Equal(t, "3-training attendance streak bonus", bonus.Description)
}

func TestConfirmNoBonusBetweenThresholds(t *testing.T) {
	db := openTestDB(t)

	alice := seedPlayer(t, db, "Alice")
	base := time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		seedAttendedTraining(t, db, base.AddDate(0, 0, i*2), alice.ID)
	}

	// Fourth in a row: past 3, short of 5, so no bonus.
	tr := seedTraining(t, db, base.AddDate(0, 0, 8))
	require.NoError(t, Confirm(db, tr, []uint{alice.ID}, testSettings()))

	assert.Equal(t, 10, balance(t, db, alice.ID))
}

func TestConfirmStreakResetsAfterMiss(t *testing.T) {
	db := openTestDB(t)

	alice := seedPlayer(t, db, "Alice")
	base := time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)
	seedAttendedTraining(t, db, base, alice.ID)
	seedAttendedTraining(t, db, base.AddDate(0, 0, 2), alice.ID)
	seedAttendedTraining(t, db, base.AddDate(0, 0, 4)) // missed this one

	tr := seedTraining(t, db, base.AddDate(0, 0, 6))
	require.NoError(t, Confirm(db, tr, []uint{alice.ID}, testSettings()))

	assert.Equal(t, 10, balance(t, db, alice.ID), "a missed session breaks the streak")
}

func TestConfirmStreaksDisabled(t *testing.T) {
	db := openTestDB(t)

	alice := seedPlayer(t, db, "Alice")
	base := time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)
	seedAttendedTraining(t, db, base, alice.ID)
	seedAttendedTraining(t, db, base.AddDate(0, 0, 2), alice.ID)

	st := testSettings()
	st.ShowStreaks = false

	tr := seedTraining(t, db, base.AddDate(0, 0, 4))
	require.NoError(t, Confirm(db, tr, []uint{alice.ID}, st))

	assert.Equal(t, 10, balance(t, db, alice.ID), "no streak bonus while streaks are off")
}

func TestAttendanceStreakWalk(t *testing.T) {
	db := openTestDB(t)
	repo := NewTrainingRepository(db)

	alice := seedPlayer(t, db, "Alice")
	base := time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)
	seedAttendedTraining(t, db, base) // missed, but older than the run
	seedAttendedTraining(t, db, base.AddDate(0, 0, 2), alice.ID)
	seedAttendedTraining(t, db, base.AddDate(0, 0, 4), alice.ID)

	streak, err := repo.AttendanceStreak(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, streak)
}
