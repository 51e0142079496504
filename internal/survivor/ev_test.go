package survivor

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// twoTeams is a one-game slate with 10 entrants on A and 5 on B.
func twoTeams(t *testing.T) (*Registry, Slate) {
	t.Helper()
	r := makeRegistry(t, []Record{
		{Team: "A", Opponent: "B", WinProbabilityPercent: 60},
		{Team: "B", Opponent: "A", WinProbabilityPercent: 40},
	})
	if err := r.ApplyOverrides([]Override{{"A", 10}, {"B", 5}}); err != nil {
		t.Fatal(err)
	}
	slate, err := BuildMatchups(r)
	if err != nil {
		t.Fatal(err)
	}
	return r, slate
}

func TestComputeExpectedValues(t *testing.T) {
	type want struct {
		evA, evB     float64
		currentValue float64
	}
	tests := []struct {
		name  string
		scale int
		want  want
	}{
		{
			"unscaled",
			0,
			want{evA: 0.6 * 1000 / 11, evB: 0.4 * 1000 / 6, currentValue: 1000. / 16},
		},
		{
			"scaled to larger pool",
			20,
			want{evA: 0.6 * 1000 * 16 / (11 * 20), evB: 0.4 * 1000 * 16 / (6 * 20), currentValue: 1000. / 20},
		},
		{
			"scaled to smaller pool",
			8,
			want{evA: 0.6 * 1000 * 16 / (11 * 8), evB: 0.4 * 1000 * 16 / (6 * 8), currentValue: 1000. / 16},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, slate := twoTeams(t)
			result, err := ComputeExpectedValues(r.Teams(), slate, 1000, tt.scale)
			if err != nil {
				t.Fatal(err)
			}

			a, _ := r.Find("A")
			b, _ := r.Find("B")
			if !approx(a.ExpectedValue, tt.want.evA) {
				t.Errorf("A: expected %v, got %v", tt.want.evA, a.ExpectedValue)
			}
			if !approx(b.ExpectedValue, tt.want.evB) {
				t.Errorf("B: expected %v, got %v", tt.want.evB, b.ExpectedValue)
			}

			s := result.Summary
			if s.TotalEntrants != 16 {
				t.Errorf("expected 16 entrants, got %d", s.TotalEntrants)
			}
			if !approx(s.ExpectedSurvivors, 8) {
				t.Errorf("expected 8 survivors, got %v", s.ExpectedSurvivors)
			}
			if !approx(s.ExpectedEliminationPercent, 50) {
				t.Errorf("expected 50%% eliminated, got %v", s.ExpectedEliminationPercent)
			}
			if !approx(s.CurrentValue, tt.want.currentValue) {
				t.Errorf("expected current value %v, got %v", tt.want.currentValue, s.CurrentValue)
			}

			if diff := cmp.Diff([]string{"B", "A"}, result.Ranking.Names()); diff != "" {
				t.Errorf("ranking (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComputeExpectedValues_Rounded(t *testing.T) {
	r, slate := twoTeams(t)
	if _, err := ComputeExpectedValues(r.Teams(), slate, 1000, 0); err != nil {
		t.Fatal(err)
	}
	a, _ := r.Find("A")
	b, _ := r.Find("B")
	if round2(a.ExpectedValue) != 54.55 {
		t.Errorf("expected 54.55, got %v", round2(a.ExpectedValue))
	}
	if round2(b.ExpectedValue) != 66.67 {
		t.Errorf("expected 66.67, got %v", round2(b.ExpectedValue))
	}

	if _, err := ComputeExpectedValues(r.Teams(), slate, 1000, 20); err != nil {
		t.Fatal(err)
	}
	if round2(a.ExpectedValue) != 43.64 {
		t.Errorf("expected 43.64, got %v", round2(a.ExpectedValue))
	}
}

func TestComputeExpectedValues_OnlyOwnMatchupExcluded(t *testing.T) {
	r := makeRegistry(t, fourTeams)
	err := r.ApplyOverrides([]Override{{"PIT", 10}, {"CLE", 2}, {"SD", 4}})
	if err != nil {
		t.Fatal(err)
	}
	slate, err := BuildMatchups(r)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ComputeExpectedValues(r.Teams(), slate, 35000, 0); err != nil {
		t.Fatal(err)
	}

	pitGame := 0.8*10 + 0.2*2
	sdGame := 0.7 * 4
	want := map[string]float64{
		"PIT": 0.8 * 35000 / (sdGame + 11),
		"CLE": 0.2 * 35000 / (sdGame + 3),
		"SD":  0.7 * 35000 / (pitGame + 5),
		"OAK": 0.3 * 35000 / (pitGame + 1),
	}
	for _, team := range r.Teams() {
		if !approx(team.ExpectedValue, want[team.Name]) {
			t.Errorf("%s: expected %v, got %v", team.Name, want[team.Name], team.ExpectedValue)
		}
	}
}

func TestComputeExpectedValues_Repeatable(t *testing.T) {
	r := makeRegistry(t, fourTeams)
	if err := r.ApplyOverrides([]Override{{"PIT", 7}, {"OAK", 1}}); err != nil {
		t.Fatal(err)
	}
	slate, err := BuildMatchups(r)
	if err != nil {
		t.Fatal(err)
	}

	snapshot := func() []Team {
		out := make([]Team, 0)
		for _, team := range r.Teams() {
			out = append(out, *team)
		}
		return out
	}

	if _, err := ComputeExpectedValues(r.Teams(), slate, 1000, 0); err != nil {
		t.Fatal(err)
	}
	first := snapshot()
	if _, err := ComputeExpectedValues(r.Teams(), slate, 1000, 0); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first, snapshot()); diff != "" {
		t.Errorf("second pass changed teams (-first +second):\n%s", diff)
	}
}

func TestComputeExpectedValues_ZeroWinProbability(t *testing.T) {
	r := makeRegistry(t, []Record{
		{Team: "A", Opponent: "B", WinProbabilityPercent: 100},
		{Team: "B", Opponent: "A", WinProbabilityPercent: 0},
	})
	slate, err := BuildMatchups(r)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ComputeExpectedValues(r.Teams(), slate, 1000, 0); err != nil {
		t.Fatal(err)
	}
	b, _ := r.Find("B")
	if b.ExpectedValue != 0 || math.IsNaN(b.ExpectedValue) {
		t.Errorf("expected 0, got %v", b.ExpectedValue)
	}
}

func TestComputeExpectedValues_Errors(t *testing.T) {
	r, slate := twoTeams(t)

	if _, err := ComputeExpectedValues(r.Teams(), slate, -1, 0); !errors.Is(err, ErrValidation) {
		t.Errorf("expected %v, got %v", ErrValidation, err)
	}
	if _, err := ComputeExpectedValues(r.Teams(), slate, 1000, -1); !errors.Is(err, ErrValidation) {
		t.Errorf("expected %v, got %v", ErrValidation, err)
	}

	stray := append(r.Teams(), &Team{Name: "X", Opponent: "Y", WinProbability: 0.5})
	if _, err := ComputeExpectedValues(stray, slate, 1000, 0); !errors.Is(err, ErrIntegrity) {
		t.Errorf("expected %v, got %v", ErrIntegrity, err)
	}
}

func TestExpectedValue_DivisionUndefined(t *testing.T) {
	// Unreachable through ComputeExpectedValues: the entrant being scored always counts.
	team := &Team{Name: "A", WinProbability: 0.5}
	if _, err := expectedValue(team, -1, 1000, 1, 0); !errors.Is(err, ErrDivisionUndefined) {
		t.Errorf("expected %v, got %v", ErrDivisionUndefined, err)
	}
}

func TestRemainingSurvivors(t *testing.T) {
	_, slate := twoTeams(t)
	if remainingSurvivors(slate, 0) != 0 {
		t.Errorf("expected 0, got %v", remainingSurvivors(slate, 0))
	}
	if !approx(remainingSurvivors(slate, -1), 8) {
		t.Errorf("expected 8, got %v", remainingSurvivors(slate, -1))
	}
}

func BenchmarkComputeExpectedValues(b *testing.B) {
	names := []string{"ARI", "ATL", "BAL", "BUF", "CAR", "CHI", "CIN", "CLE", "DAL", "DEN", "DET", "GB", "HOU", "IND", "JAX", "KC",
		"LAC", "LAR", "LV", "MIA", "MIN", "NE", "NO", "NYG", "NYJ", "PHI", "PIT", "SEA", "SF", "TB", "TEN", "WAS"}
	r := NewRegistry()
	for i := 0; i < len(names); i += 2 {
		p := 0.5 + float64(i)/100
		r.AddTeam(names[i], names[i+1], p)
		r.AddTeam(names[i+1], names[i], 1-p)
		r.SetPickCount(names[i], i*3)
	}
	slate, err := BuildMatchups(r)
	if err != nil {
		b.Fatal(err)
	}
	teams := r.Teams()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ComputeExpectedValues(teams, slate, 35000, 0)
	}
}
