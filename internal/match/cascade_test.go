package match

import (
	"testing"

	"github.com/ashfc/clubhouse/internal/player"
	"github.com/ashfc/clubhouse/internal/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Deleting a team takes its fixtures, and their events and appearances,
// with it.
func TestDeleteTeamRemovesItsMatches(t *testing.T) {
	db := openTestDB(t)
	m := seedMatch(t, db)

	p := player.Player{Name: "Alice", Position: "GK", UnlockedCardTypes: "[]"}
	require.NoError(t, db.Create(&p).Error)
	require.NoError(t, db.Create(&MatchEvent{MatchID: m.ID, PlayerID: &p.ID, Type: EventGoal}).Error)
	require.NoError(t, db.Create(&MatchAppearance{MatchID: m.ID, PlayerID: p.ID}).Error)

	// An unrelated fixture between two other teams survives.
	other := seedMatch(t, db)

	repo := team.NewTeamRepository(db)
	require.NoError(t, repo.DeleteTeam(m.HomeTeamID))

	var gone Match
	err := db.First(&gone, m.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var eventCount, appearanceCount int64
	require.NoError(t, db.Model(&MatchEvent{}).Where("match_id = ?", m.ID).Count(&eventCount).Error)
	require.NoError(t, db.Model(&MatchAppearance{}).Where("match_id = ?", m.ID).Count(&appearanceCount).Error)
	assert.Zero(t, eventCount)
	assert.Zero(t, appearanceCount)

	var kept Match
	assert.NoError(t, db.First(&kept, other.ID).Error, "other fixtures are untouched")

	var deletedTeam team.Team
	err = db.First(&deletedTeam, m.HomeTeamID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
