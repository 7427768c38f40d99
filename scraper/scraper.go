package scraper

import (
	"fmt"
	"log"
	"strings"
	"time"

	"roster-scraper/csvio"
	"roster-scraper/fetcher"
	"roster-scraper/models"
	"roster-scraper/parser"

	"github.com/PuerkitoBio/goquery"
)

// Marker elements the pages must render before extraction.
const (
	rosterMarker  = "span.sidearm-roster-player-name"
	profileMarker = ".sidearm-roster-player-header-details"
)

// Config holds the scrape targets and timeouts.
type Config struct {
	RosterURL   string
	Site        string // origin used to absolutize relative links
	PathPrefix  string // profile links must contain this path
	OutputCSV   string
	RosterWait  time.Duration // marker wait on the roster page
	ProfileWait time.Duration // marker wait on each profile page
}

// Scraper walks the roster page and every linked profile page,
// extracts the bio fields and writes them to a CSV file. Execution is
// strictly sequential, one page at a time.
type Scraper struct {
	fetcher fetcher.Fetcher
	cfg     Config
}

// NewScraper creates a Scraper using the given fetcher.
func NewScraper(f fetcher.Fetcher, cfg Config) *Scraper {
	return &Scraper{
		fetcher: f,
		cfg:     cfg,
	}
}

// Run executes one full scrape. A failure on the roster page is fatal;
// a failure on an individual profile page is logged and skipped so one
// bad profile never aborts the run.
func (s *Scraper) Run() error {
	log.Printf("Opening roster page: %s\n", s.cfg.RosterURL)
	html, err := s.fetcher.FetchPage(s.cfg.RosterURL, rosterMarker, s.cfg.RosterWait)
	if err != nil {
		return fmt.Errorf("failed to load roster page: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return fmt.Errorf("failed to parse roster page: %w", err)
	}

	links := parser.DiscoverProfileLinks(doc, s.cfg.Site, s.cfg.PathPrefix, s.cfg.RosterURL)
	log.Printf("Found %d profile links\n", len(links))

	var rows []models.Profile
	for i, url := range links {
		log.Printf("[%d/%d] Visiting %s\n", i+1, len(links), url)
		profile, err := s.scrapeProfile(url)
		if err != nil {
			log.Printf("Failed to scrape %s: %v\n", url, err)
			continue
		}
		rows = append(rows, profile)
	}

	if err := csvio.WriteBioCSV(s.cfg.OutputCSV, rows); err != nil {
		return fmt.Errorf("failed to write output CSV: %w", err)
	}
	log.Printf("Wrote %d bios to %s\n", len(rows), s.cfg.OutputCSV)
	return nil
}

// scrapeProfile fetches and extracts a single profile page.
func (s *Scraper) scrapeProfile(url string) (models.Profile, error) {
	html, err := s.fetcher.FetchPage(url, profileMarker, s.cfg.ProfileWait)
	if err != nil {
		return models.Profile{}, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return models.Profile{}, fmt.Errorf("failed to parse profile page: %w", err)
	}
	return parser.ExtractProfile(doc), nil
}
