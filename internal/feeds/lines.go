package feeds

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/atgjack/prob"
	"github.com/reallyasi9/survivor-pool/internal/survivor"
)

// PredictionTrackerURL is where ThePredictionTracker.com publishes NFL lines for the coming week.
const PredictionTrackerURL = "http://www.thepredictiontracker.com/nflpredictions.csv"

// Lines converts predicted point spreads into win probabilities.
// The CSV has the home and road team in the first two columns and one column per model;
// each model's value is the home team's predicted margin of victory.
type Lines struct {
	URL string
	// Model is the header of the column to read.
	Model string
	// StdDev is the standard deviation of actual margins around the predicted spread.
	StdDev float64
	// HomeBias is added to every spread, for models that do not include home field advantage.
	HomeBias float64
	Client   *http.Client
}

// NewLines makes a Lines feed with the default HTTP client.
func NewLines(url, model string, stdDev, homeBias float64) *Lines {
	return &Lines{URL: url, Model: model, StdDev: stdDev, HomeBias: homeBias, Client: defaultClient()}
}

// Fetch downloads the lines and predicts a win probability for each side of each game.
// Games with no line for the model are skipped.
func (l *Lines) Fetch(ctx context.Context) ([]survivor.Record, error) {
	if l.StdDev <= 0 {
		return nil, fmt.Errorf("Lines: standard deviation %f must be positive: %w", l.StdDev, survivor.ErrFeedFetch)
	}
	dist, err := prob.NewNormal(0, l.StdDev)
	if err != nil {
		return nil, fmt.Errorf("Lines: bad standard deviation %f: %v: %w", l.StdDev, err, survivor.ErrFeedFetch)
	}

	body, err := getURLBody(ctx, l.Client, l.URL)
	if err != nil {
		return nil, fmt.Errorf("Lines: cannot get URL \"%s\": %v: %w", l.URL, err, survivor.ErrFeedFetch)
	}

	reader := csv.NewReader(bytes.NewReader(body))

	// first line contains the header information
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("Lines: cannot read header: %v: %w", err, survivor.ErrFeedFetch)
	}
	col := -1
	for i, name := range header {
		if i >= 2 && name == l.Model {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("Lines: model \"%s\" not in header %v: %w", l.Model, header, survivor.ErrFeedFetch)
	}

	records := make([]survivor.Record, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("Lines: cannot read line: %v: %w", err, survivor.ErrFeedFetch)
		}
		home, road := record[0], record[1]

		spread, err := strconv.ParseFloat(record[col], 64)
		if err != nil {
			log.Printf("no %s line for %s v %s: skipping", l.Model, home, road)
			continue
		}
		p := dist.Cdf(spread + l.HomeBias)

		records = append(records,
			survivor.Record{Team: home, Opponent: road, WinProbabilityPercent: 100 * p},
			survivor.Record{Team: road, Opponent: home, WinProbabilityPercent: 100 * (1 - p)},
		)
	}
	return records, nil
}
