// Package config reads run defaults from the environment.
package config

import "github.com/kelseyhightower/envconfig"

// Config holds defaults for a run; command-line flags override them.
type Config struct {
	PrizeTotal     float64 `envconfig:"PRIZE_TOTAL" default:"35000"`
	ScaleUpToPicks int     `envconfig:"SCALE_UP_TO_PICKS" default:"0"`
	Feed           string  `envconfig:"FEED" default:"survivorgrid"`
	FeedURL        string  `envconfig:"FEED_URL" default:""`
	FeedFile       string  `envconfig:"FEED_FILE" default:""`
	LinesModel     string  `envconfig:"LINES_MODEL" default:"line"`
	LinesStdDev    float64 `envconfig:"LINES_STD_DEV" default:"13.5"`
	LinesHomeBias  float64 `envconfig:"LINES_HOME_BIAS" default:"0"`
	ProjectID      string  `envconfig:"GCP_PROJECT" default:""`
	Credentials    string  `envconfig:"CREDENTIALS" default:""`
	Season         string  `envconfig:"SEASON" default:""`
}

// Load reads SURVIVOR_* variables.  The project also falls back to the unprefixed GCP_PROJECT.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("survivor", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
