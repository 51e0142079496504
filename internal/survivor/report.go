package survivor

import (
	"fmt"
	"math"
	"strings"
)

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// String renders the summary line of the report.
func (s Summary) String() string {
	return fmt.Sprintf("Prize = %v, Entries = %d, Cur Value = %v, Expected Elim%% = %v",
		round2(s.PrizeTotal), s.TotalEntrants, round2(s.CurrentValue), round2(s.ExpectedEliminationPercent))
}

// String renders the full report: the summary, a blank line, then one tab-separated line per team by rank.
func (r Result) String() string {
	var b strings.Builder
	b.WriteString(r.Summary.String())
	b.WriteString("\n\n")
	for _, team := range r.Ranking {
		b.WriteString(team.String())
		b.WriteString("\n")
	}
	return b.String()
}
