package survivor

import (
	"fmt"
	"math"
	"sort"

	"github.com/segmentio/fasthash/jody"
)

// Record is one row of a win probability feed.
type Record struct {
	Team                  string  `yaml:"team"`
	Opponent              string  `yaml:"opponent"`
	WinProbabilityPercent float64 `yaml:"win_percent"`
}

// Registry holds every team on this week's slate, in the order the feed listed them.
// It is rebuilt from scratch on every run and is not safe for concurrent use.
type Registry struct {
	teams TeamList
	index map[string]*Team
}

// NewRegistry makes an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]*Team)}
}

// AddTeam adds a team with no picks.
func (r *Registry) AddTeam(name, opponent string, winProbability float64) (*Team, error) {
	if name == "" {
		return nil, fmt.Errorf("AddTeam: empty team name: %w", ErrValidation)
	}
	if math.IsNaN(winProbability) || winProbability < 0 || winProbability > 1 {
		return nil, fmt.Errorf("AddTeam: win probability %v of team \"%s\" outside [0,1]: %w", winProbability, name, ErrValidation)
	}
	if _, exists := r.index[name]; exists {
		return nil, fmt.Errorf("AddTeam: team \"%s\" listed twice: %w", name, ErrIntegrity)
	}
	t := &Team{Name: name, Opponent: opponent, WinProbability: winProbability}
	r.teams = append(r.teams, t)
	r.index[name] = t
	return t, nil
}

// Populate adds one team per feed record, converting percentages to probabilities.
func (r *Registry) Populate(records []Record) error {
	for _, rec := range records {
		if _, err := r.AddTeam(rec.Team, rec.Opponent, rec.WinProbabilityPercent/100); err != nil {
			return err
		}
	}
	return nil
}

// Find looks up a team by name.
func (r *Registry) Find(name string) (*Team, error) {
	t, ok := r.index[name]
	if !ok {
		return nil, fmt.Errorf("Find: team \"%s\" not in registry: %w", name, ErrUnknownTeam)
	}
	return t, nil
}

// SetPickCount sets the number of entrants holding a team.
func (r *Registry) SetPickCount(name string, count int) error {
	if count < 0 {
		return fmt.Errorf("SetPickCount: negative pick count %d for team \"%s\": %w", count, name, ErrValidation)
	}
	t, err := r.Find(name)
	if err != nil {
		return fmt.Errorf("SetPickCount: %w", err)
	}
	t.PickCount = count
	return nil
}

// ApplyOverrides sets pick counts for the named teams.
// All overrides are checked before any are applied, so a bad override changes nothing.
func (r *Registry) ApplyOverrides(overrides []Override) error {
	for _, o := range overrides {
		if _, ok := r.index[o.Team]; !ok {
			return fmt.Errorf("ApplyOverrides: team \"%s\" not in registry: %w", o.Team, ErrUnknownTeam)
		}
		if o.Picks < 0 {
			return fmt.Errorf("ApplyOverrides: negative pick count %d for team \"%s\": %w", o.Picks, o.Team, ErrValidation)
		}
	}
	for _, o := range overrides {
		r.index[o.Team].PickCount = o.Picks
	}
	return nil
}

// Clear empties the registry so it can be filled for another week.
func (r *Registry) Clear() {
	r.teams = nil
	r.index = make(map[string]*Team)
}

// Teams returns the teams in the order they were added.
func (r *Registry) Teams() TeamList {
	return r.teams.Clone()
}

// Len returns the number of teams in the registry.
func (r *Registry) Len() int {
	return len(r.teams)
}

// TotalPicks sums the pick counts of every team.
func (r *Registry) TotalPicks() int {
	n := 0
	for _, t := range r.teams {
		n += t.PickCount
	}
	return n
}

// Fingerprint hashes the slate (names, opponents, win probabilities) independent of feed order.
// Pick counts are not part of the slate.
func (r *Registry) Fingerprint() uint64 {
	tl := r.Teams()
	sort.Sort(tl)
	hash := jody.HashString64("")
	for _, t := range tl {
		hash = jody.AddString64(hash, t.Name)
		hash = jody.AddString64(hash, t.Opponent)
		hash = jody.AddUint64(hash, math.Float64bits(t.WinProbability))
	}
	return hash
}
