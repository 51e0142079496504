package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/errorreporting"

	"github.com/reallyasi9/survivor-pool/internal/config"
	"github.com/reallyasi9/survivor-pool/internal/feeds"
	"github.com/reallyasi9/survivor-pool/internal/store"
	"github.com/reallyasi9/survivor-pool/internal/survivor"
)

var overridesYaml = flag.String("overrides", "", "YAML `file` of team pick counts")
var inlineOverrides = flag.String("override", "", "comma-separated `TEAM=count` pick counts, applied last")
var weekNumber = flag.Int("week", -1, "Week `number` of the season (needed to publish or read Firestore pick counts)")
var publish = flag.Bool("publish", false, "Publish the report to Firestore")
var firestoreOverrides = flag.Bool("firestore-overrides", false, "Read pick counts for the week from Firestore")

var erclient *errorreporting.Client

// check reports and logs a fatal error.
func check(err error) {
	if err == nil {
		return
	}
	if erclient != nil {
		erclient.Report(errorreporting.Entry{Error: err})
		erclient.Close()
	}
	log.Fatalln(err)
}

func bindFlags(fs *flag.FlagSet, cfg *config.Config) {
	fs.Float64Var(&cfg.PrizeTotal, "prize", cfg.PrizeTotal, "Total prize `amount` of the pool")
	fs.IntVar(&cfg.ScaleUpToPicks, "scale", cfg.ScaleUpToPicks, "Scale values to a pool of this many `entrants` (0 to disable)")
	fs.StringVar(&cfg.Feed, "feed", cfg.Feed, "Win probability `source`: survivorgrid, lines, moneylines, or file")
	fs.StringVar(&cfg.FeedURL, "url", cfg.FeedURL, "`URL` of the feed (survivorgrid and lines)")
	fs.StringVar(&cfg.FeedFile, "file", cfg.FeedFile, "`file` to read (moneylines and file)")
	fs.StringVar(&cfg.LinesModel, "model", cfg.LinesModel, "Lines `column` to read")
	fs.Float64Var(&cfg.LinesStdDev, "stddev", cfg.LinesStdDev, "Standard `deviation` of margins around the line")
	fs.Float64Var(&cfg.LinesHomeBias, "homebias", cfg.LinesHomeBias, "`points` added to every home line")
	fs.StringVar(&cfg.ProjectID, "project", cfg.ProjectID, "Google Cloud `project` to use")
	fs.StringVar(&cfg.Credentials, "credentials", cfg.Credentials, "Service account credentials `file`")
	fs.StringVar(&cfg.Season, "season", cfg.Season, "`season` label for Firestore documents")
}

func buildFeed(cfg *config.Config) (survivor.Feed, error) {
	switch cfg.Feed {
	case "survivorgrid":
		url := cfg.FeedURL
		if url == "" {
			url = feeds.SurvivorGridURL
		}
		return feeds.NewSurvivorGrid(url), nil
	case "lines":
		url := cfg.FeedURL
		if url == "" {
			url = feeds.PredictionTrackerURL
		}
		return feeds.NewLines(url, cfg.LinesModel, cfg.LinesStdDev, cfg.LinesHomeBias), nil
	case "moneylines":
		if cfg.FeedFile == "" {
			return nil, fmt.Errorf("moneylines feed needs a file")
		}
		return &feeds.Moneylines{Path: cfg.FeedFile}, nil
	case "file":
		if cfg.FeedFile == "" {
			return nil, fmt.Errorf("file feed needs a file")
		}
		return &feeds.File{Path: cfg.FeedFile}, nil
	default:
		return nil, fmt.Errorf("unknown feed \"%s\"", cfg.Feed)
	}
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalln(err)
	}
	bindFlags(flag.CommandLine, cfg)
	flag.Parse()

	if cfg.ProjectID != "" {
		erclient, err = errorreporting.NewClient(ctx, cfg.ProjectID, errorreporting.Config{
			ServiceName: "survivor",
			OnError: func(err error) {
				log.Printf("Could not log error: %v", err)
			},
		})
		if err != nil {
			log.Printf("error reporting disabled: %v", err)
			erclient = nil
		}
	}

	needStore := *publish || *firestoreOverrides
	if needStore && (cfg.ProjectID == "" || *weekNumber < 0) {
		check(fmt.Errorf("publishing or reading Firestore pick counts needs -project and -week"))
	}

	feed, err := buildFeed(cfg)
	check(err)
	log.Printf("reading win probabilities from %s", cfg.Feed)

	overrides := make([]survivor.Override, 0)
	if *overridesYaml != "" {
		o, err := survivor.MakeOverrides(*overridesYaml)
		check(err)
		log.Printf("read %d pick counts from \"%s\"", len(o), *overridesYaml)
		overrides = append(overrides, o...)
	}

	var st *store.Store
	if needStore {
		st, err = store.New(ctx, cfg.ProjectID, cfg.Credentials)
		check(err)
		defer st.Close()
	}
	if *firestoreOverrides {
		o, err := st.LoadOverrides(ctx, cfg.Season, *weekNumber)
		check(err)
		overrides = append(overrides, o...)
	}

	inline, err := survivor.ParseOverrides(*inlineOverrides)
	check(err)
	overrides = append(overrides, inline...)

	analyzer := survivor.NewAnalyzer(feed, cfg.PrizeTotal, cfg.ScaleUpToPicks)
	result, err := analyzer.Run(ctx, overrides)
	check(err)

	fmt.Fprint(os.Stdout, result)

	if *publish {
		err = st.SaveReport(ctx, cfg.Season, *weekNumber, analyzer.Registry().Fingerprint(), result)
		check(err)
	}

	if erclient != nil {
		erclient.Close()
	}
}
