package match

import (
	"fmt"
	"testing"
	"time"

	"github.com/ashfc/clubhouse/internal/player"
	"github.com/ashfc/clubhouse/internal/team"
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
		&team.Team{}, &Match{}, &MatchEvent{}, &MatchAppearance{},
		&player.Player{}, &player.PointTransaction{},
	))
	return db
}

func seedMatch(t *testing.T, db *gorm.DB) *Match {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&team.Team{}).Count(&n).Error)
	home := team.Team{Name: fmt.Sprintf("Home %d", n)}
	away := team.Team{Name: fmt.Sprintf("Away %d", n)}
	require.NoError(t, db.Create(&home).Error)
	require.NoError(t, db.Create(&away).Error)

	m := &Match{Date: time.Now(), Venue: "Park Lane", HomeTeamID: home.ID, AwayTeamID: away.ID}
	require.NoError(t, db.Create(m).Error)
	return m
}

func TestAwardMOTMPaysOncePerMatch(t *testing.T) {
	db := openTestDB(t)
	m := seedMatch(t, db)

	p := player.Player{Name: "Alice", Position: "GK", UnlockedCardTypes: "[]"}
	require.NoError(t, db.Create(&p).Error)

	awarded, err := AwardMOTM(db, m.ID, p.ID, 15)
	require.NoError(t, err)
	assert.True(t, awarded)

	// Saving the match again re-runs the award; it must be a no-op.
	awarded, err = AwardMOTM(db, m.ID, p.ID, 15)
	require.NoError(t, err)
	assert.False(t, awarded)

	var got player.Player
	require.NoError(t, db.First(&got, p.ID).Error)
	assert.Equal(t, 15, got.PointBalance)

	var count int64
	require.NoError(t, db.Model(&player.PointTransaction{}).
		Where("type = ? AND match_id = ?", player.TxMOTM, m.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAwardMOTMDistinctMatches(t *testing.T) {
	db := openTestDB(t)
	m1 := seedMatch(t, db)
	m2 := seedMatch(t, db)

	p := player.Player{Name: "Alice", Position: "GK", UnlockedCardTypes: "[]"}
	require.NoError(t, db.Create(&p).Error)

	awarded, err := AwardMOTM(db, m1.ID, p.ID, 15)
	require.NoError(t, err)
	assert.True(t, awarded)

	awarded, err = AwardMOTM(db, m2.ID, p.ID, 15)
	require.NoError(t, err)
	assert.True(t, awarded, "each match carries its own award")

	var got player.Player
	require.NoError(t, db.First(&got, p.ID).Error)
	assert.Equal(t, 30, got.PointBalance)
}

func TestAwardMOTMDisabled(t *testing.T) {
	db := openTestDB(t)
	m := seedMatch(t, db)

	p := player.Player{Name: "Alice", Position: "GK", UnlockedCardTypes: "[]"}
	require.NoError(t, db.Create(&p).Error)

	awarded, err := AwardMOTM(db, m.ID, p.ID, 0)
	require.NoError(t, err)
	assert.False(t, awarded, "zero points disables the award")
	assert.Zero(t, balanceOf(t, db, p.ID))
}

func balanceOf(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var p player.Player
	require.NoError(t, db.First(&p, id).Error)
	return p.PointBalance
}

func TestCompleted(t *testing.T) {
	score := func(v int) *int { return &v }

	m := Match{}
	assert.False(t, m.Completed())

	m.HomeScore = score(2)
	assert.False(t, m.Completed(), "one score is not a result")

	m.AwayScore = score(1)
	assert.True(t, m.Completed())

	m.Cancelled = true
	assert.False(t, m.Completed(), "cancelled matches never count")
}
