package survivor

import (
	"context"
	"fmt"
	"log"
)

// Feed supplies this week's win probabilities.
type Feed interface {
	Fetch(ctx context.Context) ([]Record, error)
}

// Analyzer owns the registry and slate for one pool and runs the full pipeline.
// An Analyzer must be used from a single goroutine.
type Analyzer struct {
	feed           Feed
	prizeTotal     float64
	scaleUpToPicks int

	registry *Registry
	slate    Slate
}

// NewAnalyzer makes an analyzer that reads from feed.
func NewAnalyzer(feed Feed, prizeTotal float64, scaleUpToPicks int) *Analyzer {
	return &Analyzer{
		feed:           feed,
		prizeTotal:     prizeTotal,
		scaleUpToPicks: scaleUpToPicks,
		registry:       NewRegistry(),
	}
}

// Registry returns the teams of the last run.
func (a *Analyzer) Registry() *Registry {
	return a.registry
}

// Slate returns the matchups of the last run.
func (a *Analyzer) Slate() Slate {
	return a.slate
}

// Run fetches the feed, applies the pick count overrides, pairs the teams, and computes expected values.
// Nothing is returned unless every step succeeds.
func (a *Analyzer) Run(ctx context.Context, overrides []Override) (*Result, error) {
	a.registry.Clear()
	a.slate = nil

	records, err := a.feed.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("Run: %v: %w", err, ErrFeedFetch)
	}
	log.Printf("fetched %d feed records", len(records))

	if err := a.registry.Populate(records); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	if err := a.registry.ApplyOverrides(overrides); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	log.Printf("registry holds %d teams with %d picks", a.registry.Len(), a.registry.TotalPicks())

	slate, err := BuildMatchups(a.registry)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	log.Printf("built %d matchups", len(slate))

	result, err := ComputeExpectedValues(a.registry.Teams(), slate, a.prizeTotal, a.scaleUpToPicks)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	a.slate = slate
	return result, nil
}
