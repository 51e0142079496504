package feeds

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/reallyasi9/survivor-pool/internal/survivor"
)

// SurvivorGridURL is where survivorgrid.com publishes the weekly grid.
const SurvivorGridURL = "http://survivorgrid.com"

// gridRE finds the grid table in the page.
var gridRE = regexp.MustCompile(`(?is)<table id="grid".*?</table>`)

// gridRowRE parses one team row of the grid.
var gridRowRE = regexp.MustCompile(`(?is)<tr id=.*?` +
	`<td class="dist".*?` + // pick distribution
	`<td class="dist">(.*?)%.*?` + // win percent
	`<td class="teamname">(.*?)<.*?` + // team
	`<td.*?>@?(.*?)<.*?` + // opponent, @ if away
	`</tr>`)

// SurvivorGrid scrapes this week's win percentages from the survivorgrid.com grid.
type SurvivorGrid struct {
	URL    string
	Client *http.Client
}

// NewSurvivorGrid makes a SurvivorGrid feed reading the given URL.
func NewSurvivorGrid(url string) *SurvivorGrid {
	return &SurvivorGrid{URL: url, Client: defaultClient()}
}

// Fetch downloads and parses the grid.  Rows without a win percentage are skipped.
func (s *SurvivorGrid) Fetch(ctx context.Context) ([]survivor.Record, error) {
	body, err := getURLBody(ctx, s.Client, s.URL)
	if err != nil {
		return nil, fmt.Errorf("SurvivorGrid: cannot get URL \"%s\": %v: %w", s.URL, err, survivor.ErrFeedFetch)
	}
	return parseGrid(string(body))
}

func parseGrid(page string) ([]survivor.Record, error) {
	table := gridRE.FindString(page)
	if table == "" {
		return nil, fmt.Errorf("SurvivorGrid: cannot find grid table: %w", survivor.ErrFeedFetch)
	}

	records := make([]survivor.Record, 0)
	for _, row := range gridRowRE.FindAllStringSubmatch(table, -1) {
		winPct := strings.TrimSpace(row[1])
		name := strings.TrimSpace(row[2])
		opp := strings.TrimSpace(row[3])
		if winPct == "" {
			log.Printf("no win percentage for \"%s\": skipping", name)
			continue
		}
		pct, err := strconv.ParseFloat(winPct, 64)
		if err != nil {
			return nil, fmt.Errorf("SurvivorGrid: cannot parse win percentage \"%s\" of \"%s\": %v: %w", winPct, name, err, survivor.ErrFeedFetch)
		}
		records = append(records, survivor.Record{Team: name, Opponent: opp, WinProbabilityPercent: pct})
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("SurvivorGrid: cannot find team rows in grid: %w", survivor.ErrFeedFetch)
	}
	return records, nil
}
