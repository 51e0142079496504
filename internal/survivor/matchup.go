package survivor

import "fmt"

// Matchup represents a game between two teams on this week's slate.
type Matchup struct {
	TeamA *Team
	TeamB *Team
}

// ExpectedSurvivors is the expected number of entrants holding either side of the matchup who survive it.
func (m Matchup) ExpectedSurvivors() float64 {
	return m.TeamA.WinProbability*float64(m.TeamA.PickCount) + m.TeamB.WinProbability*float64(m.TeamB.PickCount)
}

// Contains reports whether the named team plays in the matchup.
func (m Matchup) Contains(name string) bool {
	return m.TeamA.Name == name || m.TeamB.Name == name
}

func (m Matchup) String() string {
	return fmt.Sprintf("%s v %s", m.TeamA.Name, m.TeamB.Name)
}

// Slate is the full set of matchups for one week.
type Slate []Matchup

// ExpectedSurvivors sums expected survivors over every matchup.
func (s Slate) ExpectedSurvivors() float64 {
	sum := 0.
	for _, m := range s {
		sum += m.ExpectedSurvivors()
	}
	return sum
}

// IndexOf returns the index of the matchup the named team plays in, or -1.
func (s Slate) IndexOf(name string) int {
	for i, m := range s {
		if m.Contains(name) {
			return i
		}
	}
	return -1
}

// BuildMatchups pairs every team in the registry with its opponent.
// Matchups come out in the order of the first team of each pair in the registry.
func BuildMatchups(r *Registry) (Slate, error) {
	assigned := make(map[string]int)
	slate := make(Slate, 0, r.Len()/2)

	for _, team := range r.teams {
		if _, done := assigned[team.Name]; done {
			continue
		}
		if team.Opponent == team.Name {
			return nil, fmt.Errorf("BuildMatchups: team \"%s\" plays itself: %w", team.Name, ErrIntegrity)
		}
		opp, ok := r.index[team.Opponent]
		if !ok {
			return nil, fmt.Errorf("BuildMatchups: opponent \"%s\" of team \"%s\" not found: %w", team.Opponent, team.Name, ErrIntegrity)
		}
		if opp.Opponent != team.Name {
			return nil, fmt.Errorf("BuildMatchups: team \"%s\" plays \"%s\", but \"%s\" plays \"%s\": %w", team.Name, opp.Name, opp.Name, opp.Opponent, ErrIntegrity)
		}
		if _, done := assigned[opp.Name]; done {
			return nil, fmt.Errorf("BuildMatchups: team \"%s\" already in a matchup: %w", opp.Name, ErrIntegrity)
		}
		assigned[team.Name] = len(slate)
		assigned[opp.Name] = len(slate)
		slate = append(slate, Matchup{TeamA: team, TeamB: opp})
	}

	// every team in exactly one matchup
	counts := make(map[string]int)
	for _, m := range slate {
		counts[m.TeamA.Name]++
		counts[m.TeamB.Name]++
	}
	for _, team := range r.teams {
		if counts[team.Name] != 1 {
			return nil, fmt.Errorf("BuildMatchups: team \"%s\" appears in %d matchups: %w", team.Name, counts[team.Name], ErrIntegrity)
		}
	}

	return slate, nil
}
