package survivor

import "fmt"

// Team is one side of this week's slate.
type Team struct {
	// Name is the unique key of the team, as written by the feed.
	Name string
	// Opponent is the name of the team this team plays this week.
	Opponent string
	// WinProbability is the probability in [0,1] that this team wins this week.
	WinProbability float64
	// PickCount is the number of entrants holding this team this week.
	PickCount int
	// ExpectedValue is the modeled prize value of picking this team, filled by ComputeExpectedValues.
	ExpectedValue float64
}

func (t Team) String() string {
	return fmt.Sprintf("%s\t%d\t%v\t%v", t.Name, t.PickCount, t.WinProbability, t.ExpectedValue)
}

// TeamList implements the sort.Interface interface and represents a list of Teams sorted by name.
type TeamList []*Team

// Len calculates the length of the TeamList (implements sort.Interface interface)
func (t TeamList) Len() int {
	return len(t)
}

// Less reports whether (implements sort.Interface interface)
func (t TeamList) Less(i, j int) bool {
	return t[i].Name < t[j].Name
}

// Swap swaps the elements with indexes i and j (implements sort.Interface interface)
func (t TeamList) Swap(i, j int) {
	t[i], t[j] = t[j], t[i]
}

// Clone copies the list, not the teams.
func (t TeamList) Clone() TeamList {
	out := make(TeamList, len(t))
	copy(out, t)
	return out
}

// Names returns the team names in list order.
func (t TeamList) Names() []string {
	out := make([]string, len(t))
	for i, team := range t {
		out[i] = team.Name
	}
	return out
}

// ByWinProbability sorts a TeamList by win probability (descending).
type ByWinProbability struct{ TeamList }

// Less reports whether team i is more likely to win than team j.
func (b ByWinProbability) Less(i, j int) bool {
	return b.TeamList[i].WinProbability > b.TeamList[j].WinProbability
}

// ByExpectedValue sorts a TeamList by expected value (descending).
type ByExpectedValue struct{ TeamList }

// Less reports whether team i has a greater expected value than team j.
func (b ByExpectedValue) Less(i, j int) bool {
	return b.TeamList[i].ExpectedValue > b.TeamList[j].ExpectedValue
}
