package survivor

import (
	"fmt"
	"io/ioutil"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v2"
)

// Override sets the number of entrants holding a team this week.
type Override struct {
	Team  string
	Picks int
}

// MakeOverrides parses a YAML file of team names to pick counts, keeping file order.
func MakeOverrides(fileName string) ([]Override, error) {
	overrideYaml, err := ioutil.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	return UnmarshalOverrides(overrideYaml)
}

// UnmarshalOverrides parses a YAML mapping of team names to pick counts, keeping document order.
func UnmarshalOverrides(data []byte) ([]Override, error) {
	var ms yaml.MapSlice
	if err := yaml.Unmarshal(data, &ms); err != nil {
		return nil, err
	}

	out := make([]Override, 0, len(ms))
	for _, item := range ms {
		// YAML 1.1 reads unquoted NO as false
		name, ok := item.Key.(string)
		if !ok {
			return nil, fmt.Errorf("UnmarshalOverrides: key %v is not a team name (quote it): %w", item.Key, ErrValidation)
		}
		picks, ok := item.Value.(int)
		if !ok {
			return nil, fmt.Errorf("UnmarshalOverrides: pick count %v of team \"%s\" is not an integer: %w", item.Value, name, ErrValidation)
		}
		out = append(out, Override{Team: name, Picks: picks})
	}
	return out, nil
}

// ParseOverrides parses a comma-separated list of TEAM=count pairs.
func ParseOverrides(value string) ([]Override, error) {
	out := make([]Override, 0)
	if strings.TrimSpace(value) == "" {
		return out, nil
	}
	for _, pair := range strings.Split(value, ",") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("ParseOverrides: expected TEAM=count, got \"%s\": %w", pair, ErrValidation)
		}
		picks, err := strconv.Atoi(strings.TrimSpace(kv[1]))
		if err != nil {
			return nil, fmt.Errorf("ParseOverrides: pick count \"%s\" is not an integer: %w", kv[1], ErrValidation)
		}
		out = append(out, Override{Team: strings.TrimSpace(kv[0]), Picks: picks})
	}
	return out, nil
}
