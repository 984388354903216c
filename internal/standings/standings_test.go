package standings

import (
	"testing"

	"github.com/ashfc/clubhouse/internal/match"
	"github.com/ashfc/clubhouse/internal/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func intPtr(v int) *int { return &v }

func testTeam(id uint, name string) team.Team {
	return team.Team{Model: gorm.Model{ID: id}, Name: name}
}

func playedMatch(homeID, awayID uint, homeScore, awayScore int) match.Match {
	return match.Match{
		HomeTeamID: homeID,
		AwayTeamID: awayID,
		HomeScore:  intPtr(homeScore),
		AwayScore:  intPtr(awayScore),
	}
}

func TestComputeManualSeedPlusResults(t *testing.T) {
	teams := []team.Team{
		{Model: gorm.Model{ID: 1}, Name: "Team A", ManualWon: 2, ManualDrawn: 1, ManualGF: 5, ManualGA: 2},
		testTeam(2, "Team B"),
	}
	matches := []match.Match{playedMatch(1, 2, 3, 1)}

	table := Compute(teams, matches)
	require.Len(t, table, 2)

	a := table[0]
	assert.Equal(t, "Team A", a.Name)
	assert.Equal(t, 4, a.Played)
	assert.Equal(t, 3, a.Won)
	assert.Equal(t, 1, a.Drawn)
	assert.Equal(t, 0, a.Lost)
	assert.Equal(t, 8, a.GoalsFor)
	assert.Equal(t, 3, a.GoalsAgainst)
	assert.Equal(t, 5, a.GoalDifference)
	assert.Equal(t, 10, a.Points)

	b := table[1]
	assert.Equal(t, "Team B", b.Name)
	assert.Equal(t, 1, b.Played)
	assert.Equal(t, 1, b.Lost)
	assert.Equal(t, -2, b.GoalDifference)
	assert.Equal(t, 0, b.Points)
}

func TestComputeRowInvariants(t *testing.T) {
	teams := []team.Team{
		{Model: gorm.Model{ID: 1}, Name: "Alpha", ManualWon: 1, ManualLost: 2, ManualGF: 3, ManualGA: 4},
		testTeam(2, "Beta"),
		testTeam(3, "Gamma"),
	}
	matches := []match.Match{
		playedMatch(1, 2, 2, 2),
		playedMatch(2, 3, 0, 1),
		playedMatch(3, 1, 4, 0),
	}

	for _, row := range Compute(teams, matches) {
		assert.Equal(t, row.Played, row.Won+row.Drawn+row.Lost,
			"played must equal won+drawn+lost for %s", row.Name)
		assert.Equal(t, row.Points, row.Won*3+row.Drawn,
			"points must be 3 per win plus 1 per draw for %s", row.Name)
		assert.Equal(t, row.GoalDifference, row.GoalsFor-row.GoalsAgainst,
			"goal difference must match totals for %s", row.Name)
	}
}

func TestComputeSkipsUnfinishedCancelledAndUnknown(t *testing.T) {
	teams := []team.Team{testTeam(1, "Alpha"), testTeam(2, "Beta")}

	cancelled := playedMatch(1, 2, 5, 0)
	cancelled.Cancelled = true

	matches := []match.Match{
		{HomeTeamID: 1, AwayTeamID: 2}, // no scores yet
		{HomeTeamID: 1, AwayTeamID: 2, HomeScore: intPtr(1)},
		cancelled,
		playedMatch(1, 99, 9, 0), // opponent not in the table
	}

	for _, row := range Compute(teams, matches) {
		assert.Zero(t, row.Played, "%s should have no counted matches", row.Name)
		assert.Zero(t, row.Points)
	}
}

func TestComputeSortOrder(t *testing.T) {
	teams := []team.Team{
		testTeam(1, "Zebras"),
		testTeam(2, "Aardvarks"),
		testTeam(3, "Mids"),
	}
	matches := []match.Match{
		// Zebras and Aardvarks both finish on 3 points with identical
		// goal records; Mids lose twice.
		playedMatch(1, 3, 2, 0),
		playedMatch(2, 3, 2, 0),
	}

	table := Compute(teams, matches)
	require.Len(t, table, 3)
	assert.Equal(t, "Aardvarks", table[0].Name, "equal records rank alphabetically")
	assert.Equal(t, "Zebras", table[1].Name)
	assert.Equal(t, "Mids", table[2].Name)
}

func TestComputeGoalDifferenceBeforeGoalsFor(t *testing.T) {
	teams := []team.Team{
		{Model: gorm.Model{ID: 1}, Name: "High Scorers", ManualWon: 1, ManualGF: 5, ManualGA: 4},
		{Model: gorm.Model{ID: 2}, Name: "Tight Defence", ManualWon: 1, ManualGF: 2, ManualGA: 0},
	}

	table := Compute(teams, nil)
	require.Len(t, table, 2)
	assert.Equal(t, "Tight Defence", table[0].Name, "better goal difference wins the tie")
}
