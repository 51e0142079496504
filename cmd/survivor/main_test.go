package main

import (
	"flag"
	"testing"

	"github.com/reallyasi9/survivor-pool/internal/config"
	"github.com/reallyasi9/survivor-pool/internal/feeds"
)

func TestBindFlags(t *testing.T) {
	cfg := &config.Config{PrizeTotal: 35000, Feed: "survivorgrid", LinesStdDev: 13.5}
	fs := flag.NewFlagSet("survivor", flag.ContinueOnError)
	bindFlags(fs, cfg)

	err := fs.Parse([]string{"-prize", "1000", "-scale", "20", "-feed", "file", "-file", "week9.yaml"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.PrizeTotal != 1000 || cfg.ScaleUpToPicks != 20 || cfg.Feed != "file" || cfg.FeedFile != "week9.yaml" {
		t.Errorf("flags not bound: %+v", cfg)
	}
	if cfg.LinesStdDev != 13.5 {
		t.Errorf("expected default 13.5 kept, got %v", cfg.LinesStdDev)
	}
}

func TestBuildFeed(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{"survivorgrid default url", config.Config{Feed: "survivorgrid"}, false},
		{"lines", config.Config{Feed: "lines", LinesModel: "line", LinesStdDev: 13.5}, false},
		{"moneylines", config.Config{Feed: "moneylines", FeedFile: "odds.csv"}, false},
		{"moneylines without file", config.Config{Feed: "moneylines"}, true},
		{"file", config.Config{Feed: "file", FeedFile: "week9.yaml"}, false},
		{"file without file", config.Config{Feed: "file"}, true},
		{"unknown", config.Config{Feed: "espn"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feed, err := buildFeed(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("buildFeed() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if feed == nil {
				t.Errorf("expected a feed")
			}
		})
	}

	feed, _ := buildFeed(&config.Config{Feed: "survivorgrid"})
	if sg, ok := feed.(*feeds.SurvivorGrid); !ok || sg.URL != feeds.SurvivorGridURL {
		t.Errorf("expected survivorgrid at %s, got %v", feeds.SurvivorGridURL, feed)
	}
}
