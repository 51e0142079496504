package survivor

import (
	"fmt"
	"math"
	"sort"
)

// Summary holds whole-pool statistics for one week.
type Summary struct {
	// PrizeTotal is the total prize pool.
	PrizeTotal float64
	// TotalEntrants counts every pick plus the entrant being evaluated.
	TotalEntrants int
	// ScaleUpToPicks is the reference pool size, or 0 if values are not scaled.
	ScaleUpToPicks int
	// CurrentValue is the prize share of one entrant if the pool were split now.
	CurrentValue float64
	// ExpectedSurvivors is the expected number of entrants alive after this week.
	ExpectedSurvivors float64
	// ExpectedEliminationPercent is the expected percentage of entrants eliminated this week.
	ExpectedEliminationPercent float64
}

// Result is the output of ComputeExpectedValues.
type Result struct {
	Summary Summary
	// Ranking lists the teams by descending expected value.
	Ranking TeamList
}

// ComputeExpectedValues sets the expected value of picking each team this week and ranks the teams.
//
// Teams are scored from most to least likely to win.  Each team is scored alone: its own
// matchup is taken out of the pool of expected survivors, and its own pickers (plus the
// entrant being evaluated) are added back.  If scaleUpToPicks is positive, values are
// rescaled to what they would be in a pool of that many entrants.
func ComputeExpectedValues(teams TeamList, slate Slate, prizeTotal float64, scaleUpToPicks int) (*Result, error) {
	if prizeTotal < 0 || math.IsNaN(prizeTotal) {
		return nil, fmt.Errorf("ComputeExpectedValues: prize total %v must be non-negative: %w", prizeTotal, ErrValidation)
	}
	if scaleUpToPicks < 0 {
		return nil, fmt.Errorf("ComputeExpectedValues: scale %d must be non-negative: %w", scaleUpToPicks, ErrValidation)
	}

	totalEntrants := 1
	for _, t := range teams {
		totalEntrants += t.PickCount
	}

	matchupOf := make(map[string]int)
	for i, m := range slate {
		matchupOf[m.TeamA.Name] = i
		matchupOf[m.TeamB.Name] = i
	}

	order := teams.Clone()
	sort.Stable(ByWinProbability{order})

	for _, team := range order {
		excluded, ok := matchupOf[team.Name]
		if !ok {
			return nil, fmt.Errorf("ComputeExpectedValues: team \"%s\" not in any matchup: %w", team.Name, ErrIntegrity)
		}
		ev, err := expectedValue(team, remainingSurvivors(slate, excluded), prizeTotal, totalEntrants, scaleUpToPicks)
		if err != nil {
			return nil, err
		}
		team.ExpectedValue = ev
	}

	survivors := slate.ExpectedSurvivors()
	summary := Summary{
		PrizeTotal:                 prizeTotal,
		TotalEntrants:              totalEntrants,
		ScaleUpToPicks:             scaleUpToPicks,
		CurrentValue:               prizeTotal / float64(maxInt(totalEntrants, scaleUpToPicks)),
		ExpectedSurvivors:          survivors,
		ExpectedEliminationPercent: 100 * (float64(totalEntrants) - survivors) / float64(totalEntrants),
	}

	ranking := teams.Clone()
	sort.Stable(ByExpectedValue{ranking})

	return &Result{Summary: summary, Ranking: ranking}, nil
}

// remainingSurvivors sums expected survivors over every matchup but the excluded one.
func remainingSurvivors(slate Slate, excluded int) float64 {
	sum := 0.
	for i, m := range slate {
		if i == excluded {
			continue
		}
		sum += m.ExpectedSurvivors()
	}
	return sum
}

func expectedValue(team *Team, others, prizeTotal float64, totalEntrants, scaleUpToPicks int) (float64, error) {
	remaining := others + float64(team.PickCount+1)
	if remaining <= 0 {
		return 0, fmt.Errorf("expectedValue: no entrants expected to remain with team \"%s\": %w", team.Name, ErrDivisionUndefined)
	}
	if scaleUpToPicks > 0 {
		return team.WinProbability * prizeTotal * float64(totalEntrants) / (remaining * float64(scaleUpToPicks)), nil
	}
	return team.WinProbability * prizeTotal / remaining, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
