package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"roster-scraper/config"
	"roster-scraper/db"
	"roster-scraper/fetcher"
	"roster-scraper/loader"
	"roster-scraper/scraper"
)

func main() {
	// Parse command line arguments
	mode := flag.String("mode", "all", "What to run: scrape, load or all")
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	cfg := loadConfig(*configPath)

	switch *mode {
	case "scrape":
		runScrape(cfg)
	case "load":
		runLoad(cfg)
	case "all":
		runScrape(cfg)
		runLoad(cfg)
	default:
		log.Fatalf("Unknown mode %q (want scrape, load or all)", *mode)
	}
}

// loadConfig loads the YAML config, falling back to defaults when the
// file cannot be read.
func loadConfig(path string) *config.Config {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.Printf("Could not load config %s (%v), using defaults\n", path, err)
		return config.GetDefaultConfig()
	}
	return cfg
}

// runScrape scrapes the roster site and writes the bio CSV.
func runScrape(cfg *config.Config) {
	f, err := newFetcher(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize fetcher: %v\n", err)
	}
	defer f.Close()

	s := scraper.NewScraper(f, scraper.Config{
		RosterURL:   cfg.Scrape.RosterURL,
		Site:        cfg.Scrape.Site,
		PathPrefix:  cfg.Scrape.PathPrefix,
		OutputCSV:   cfg.Scrape.OutputCSV,
		RosterWait:  time.Duration(cfg.Scrape.RosterWaitSec) * time.Second,
		ProfileWait: time.Duration(cfg.Scrape.ProfileWaitSec) * time.Second,
	})

	if err := s.Run(); err != nil {
		log.Fatalf("Scrape failed: %v\n", err)
	}
}

// runLoad coerces the bio and stats CSV files into the database.
func runLoad(cfg *config.Config) {
	database, err := db.NewDB(cfg.Load.Database)
	if err != nil {
		log.Fatalf("Failed to open database: %v\n", err)
	}
	defer database.Close()

	res, err := loader.RunLoad(cfg.Load.BioCSV, cfg.Load.StatsCSV, database)
	if err != nil {
		log.Fatalf("Load failed: %v\n", err)
	}
	log.Printf("Loaded %d bio rows and %d stats rows into %s\n",
		res.BioRows, res.StatsRows, cfg.Load.Database)
}

// newFetcher picks the fetcher implementation from the configuration.
func newFetcher(cfg *config.Config) (fetcher.Fetcher, error) {
	switch cfg.Scrape.Fetcher {
	case "", "rod":
		return fetcher.NewRodFetcher(time.Duration(cfg.Scrape.PageTimeoutSec) * time.Second)
	case "colly":
		return fetcher.NewCollyFetcher(time.Duration(cfg.Scrape.RequestDelayMs) * time.Millisecond), nil
	default:
		return nil, fmt.Errorf("unknown fetcher %q (want rod or colly)", cfg.Scrape.Fetcher)
	}
}
