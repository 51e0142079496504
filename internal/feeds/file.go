package feeds

import (
	"context"
	"fmt"
	"io/ioutil"

	"github.com/reallyasi9/survivor-pool/internal/survivor"
	yaml "gopkg.in/yaml.v2"
)

// File reads records from a YAML list, for offline runs:
//   - team: SD
//     opponent: OAK
//     win_percent: 80.5
type File struct {
	Path string
}

// Fetch reads the file.
func (f *File) Fetch(ctx context.Context) ([]survivor.Record, error) {
	data, err := ioutil.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("File: %v: %w", err, survivor.ErrFeedFetch)
	}
	var records []survivor.Record
	if err := yaml.UnmarshalStrict(data, &records); err != nil {
		return nil, fmt.Errorf("File: cannot parse \"%s\": %v: %w", f.Path, err, survivor.ErrFeedFetch)
	}
	return records, nil
}
