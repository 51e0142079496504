// Package store publishes survivor reports to Firestore and reads pick counts from it.
package store

import (
	"context"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/reallyasi9/survivor-pool/internal/survivor"
)

// Store wraps a Firestore client.
type Store struct {
	fs *firestore.Client
}

// PickCount is how entrant pick counts are stored in Firestore.
type PickCount struct {
	Season string `firestore:"season"`
	Week   int    `firestore:"week"`
	Team   string `firestore:"team"`
	Picks  int    `firestore:"picks"`
}

// Report is the document written for each analyzed week.
type Report struct {
	Season                     string    `firestore:"season"`
	Week                       int       `firestore:"week"`
	Fingerprint                string    `firestore:"fingerprint"`
	PrizeTotal                 float64   `firestore:"prize_total"`
	TotalEntrants              int       `firestore:"total_entrants"`
	ScaleUpToPicks             int       `firestore:"scale_up_to_picks"`
	CurrentValue               float64   `firestore:"current_value"`
	ExpectedSurvivors          float64   `firestore:"expected_survivors"`
	ExpectedEliminationPercent float64   `firestore:"expected_elimination_percent"`
	Timestamp                  time.Time `firestore:"timestamp,serverTimestamp"`
}

// TeamValue is one team's line in a report, stored in the report's "teams" collection.
type TeamValue struct {
	Rank           int     `firestore:"rank"`
	Team           string  `firestore:"team"`
	Opponent       string  `firestore:"opponent"`
	WinProbability float64 `firestore:"win_probability"`
	PickCount      int     `firestore:"pick_count"`
	ExpectedValue  float64 `firestore:"expected_value"`
}

// New connects to Firestore in the given project.  An empty credentials file uses the default credentials.
func New(ctx context.Context, projectID, credentialsFile string) (*Store, error) {
	conf := &firebase.Config{ProjectID: projectID}
	opts := make([]option.ClientOption, 0)
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("New: cannot create app: %v", err)
	}
	fs, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("New: cannot connect to firestore: %v", err)
	}
	return &Store{fs: fs}, nil
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.fs.Close()
}

// LoadOverrides reads the pick counts recorded for a week.
func (s *Store) LoadOverrides(ctx context.Context, season string, week int) ([]survivor.Override, error) {
	iter := s.fs.Collection("pick_counts").Where("season", "==", season).Where("week", "==", week).Documents(ctx)
	defer iter.Stop()

	counts := make([]PickCount, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("LoadOverrides: %v", err)
		}
		var pc PickCount
		if err := doc.DataTo(&pc); err != nil {
			return nil, fmt.Errorf("LoadOverrides: document %s: %v", doc.Ref.ID, err)
		}
		counts = append(counts, pc)
	}
	log.Printf("loaded %d pick counts for season %s week %d", len(counts), season, week)
	return toOverrides(counts), nil
}

// SaveReport writes the report and its ranked teams in one transaction.
// Reports for the same slate overwrite one another.
func (s *Store) SaveReport(ctx context.Context, season string, week int, fingerprint uint64, result *survivor.Result) error {
	report, teams := newReport(season, week, fingerprint, result)
	reportRef := s.fs.Collection("survivor_reports").Doc(reportID(report))
	teamsCol := reportRef.Collection("teams")

	err := s.fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if err := tx.Set(reportRef, &report); err != nil {
			return err
		}
		for i := range teams {
			if err := tx.Set(teamsCol.Doc(teams[i].Team), &teams[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("SaveReport: %v", err)
	}
	log.Printf("saved report %s with %d teams", reportRef.ID, len(teams))
	return nil
}

func toOverrides(counts []PickCount) []survivor.Override {
	out := make([]survivor.Override, len(counts))
	for i, pc := range counts {
		out[i] = survivor.Override{Team: pc.Team, Picks: pc.Picks}
	}
	return out
}

func reportID(r Report) string {
	return fmt.Sprintf("%s-%02d-%s", r.Season, r.Week, r.Fingerprint)
}

func newReport(season string, week int, fingerprint uint64, result *survivor.Result) (Report, []TeamValue) {
	s := result.Summary
	report := Report{
		Season:                     season,
		Week:                       week,
		Fingerprint:                fmt.Sprintf("%016x", fingerprint),
		PrizeTotal:                 s.PrizeTotal,
		TotalEntrants:              s.TotalEntrants,
		ScaleUpToPicks:             s.ScaleUpToPicks,
		CurrentValue:               s.CurrentValue,
		ExpectedSurvivors:          s.ExpectedSurvivors,
		ExpectedEliminationPercent: s.ExpectedEliminationPercent,
	}
	teams := make([]TeamValue, len(result.Ranking))
	for i, t := range result.Ranking {
		teams[i] = TeamValue{
			Rank:           i + 1,
			Team:           t.Name,
			Opponent:       t.Opponent,
			WinProbability: t.WinProbability,
			PickCount:      t.PickCount,
			ExpectedValue:  t.ExpectedValue,
		}
	}
	return report, teams
}
