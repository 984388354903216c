// Package standings turns completed matches and manual override counters
// into a ranked league table.
package standings

import (
	"sort"
	"strings"

	"github.com/ashfc/clubhouse/internal/match"
	"github.com/ashfc/clubhouse/internal/team"
)

// TeamStanding is one row of the league table.
type TeamStanding struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

// Compute builds the ranked table. Callers pass every team plus the matches
// that qualify (both scores recorded, not cancelled); manual override
// counters seed each team's totals and real results are added on top. The
// sort is a strict total order: points, then goal difference, then goals
// for, then name, so equal records always rank alphabetically.
func Compute(teams []team.Team, matches []match.Match) []TeamStanding {
	table := make(map[uint]*TeamStanding, len(teams))
	for _, t := range teams {
		table[t.ID] = &TeamStanding{
			ID:           t.ID,
			Name:         t.Name,
			Played:       t.ManualWon + t.ManualDrawn + t.ManualLost,
			Won:          t.ManualWon,
			Drawn:        t.ManualDrawn,
			Lost:         t.ManualLost,
			GoalsFor:     t.ManualGF,
			GoalsAgainst: t.ManualGA,
			Points:       t.ManualWon*3 + t.ManualDrawn,
		}
	}

	for _, m := range matches {
		if m.HomeScore == nil || m.AwayScore == nil || m.Cancelled {
			continue
		}
		home, ok := table[m.HomeTeamID]
		if !ok {
			continue
		}
		away, ok := table[m.AwayTeamID]
		if !ok {
			continue
		}

		homeScore, awayScore := *m.HomeScore, *m.AwayScore

		home.Played++
		away.Played++
		home.GoalsFor += homeScore
		home.GoalsAgainst += awayScore
		away.GoalsFor += awayScore
		away.GoalsAgainst += homeScore

		switch {
		case homeScore > awayScore:
			home.Won++
			home.Points += 3
			away.Lost++
		case homeScore < awayScore:
			away.Won++
			away.Points += 3
			home.Lost++
		default:
			home.Drawn++
			away.Drawn++
			home.Points++
			away.Points++
		}
	}

	result := make([]TeamStanding, 0, len(table))
	for _, row := range table {
		row.GoalDifference = row.GoalsFor - row.GoalsAgainst
		result = append(result, *row)
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return strings.Compare(a.Name, b.Name) < 0
	})

	return result
}
