package feeds

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/reallyasi9/survivor-pool/internal/survivor"
)

// Moneylines reads a CSV of American moneyline odds (team, opponent, team odds, opponent odds)
// and converts each game to vig-free win probabilities.
type Moneylines struct {
	Path string
}

// AmericanToImplied converts American odds to the implied probability of winning, vig included.
func AmericanToImplied(odds int) float64 {
	if odds < 0 {
		return float64(-odds) / float64(-odds+100)
	}
	return 100 / float64(odds+100)
}

// RemoveVig scales the implied probabilities of a two-way market so they sum to one.
func RemoveVig(impliedA, impliedB float64) (float64, float64) {
	total := impliedA + impliedB
	if impliedA <= 0 || impliedB <= 0 || total <= 0 {
		return 0, 0
	}
	return impliedA / total, impliedB / total
}

// Fetch reads the file.
func (m *Moneylines) Fetch(ctx context.Context) ([]survivor.Record, error) {
	f, err := os.Open(m.Path)
	if err != nil {
		return nil, fmt.Errorf("Moneylines: %v: %w", err, survivor.ErrFeedFetch)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 4
	reader.Comment = '#'

	records := make([]survivor.Record, 0)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("Moneylines: %v: %w", err, survivor.ErrFeedFetch)
		}
		oddsA, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("Moneylines: odds \"%s\" of \"%s\": %v: %w", row[2], row[0], err, survivor.ErrFeedFetch)
		}
		oddsB, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, fmt.Errorf("Moneylines: odds \"%s\" of \"%s\": %v: %w", row[3], row[1], err, survivor.ErrFeedFetch)
		}
		if oddsA > -100 && oddsA < 100 || oddsB > -100 && oddsB < 100 {
			return nil, fmt.Errorf("Moneylines: odds %d/%d of %s v %s are not American odds: %w", oddsA, oddsB, row[0], row[1], survivor.ErrFeedFetch)
		}
		pA, pB := RemoveVig(AmericanToImplied(oddsA), AmericanToImplied(oddsB))
		records = append(records,
			survivor.Record{Team: row[0], Opponent: row[1], WinProbabilityPercent: 100 * pA},
			survivor.Record{Team: row[1], Opponent: row[0], WinProbabilityPercent: 100 * pB},
		)
	}
	return records, nil
}
