package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every knob of the scrape and load runs. All fields
// default to the production roster site, so a bare run needs no file.
type Config struct {
	Scrape struct {
		RosterURL      string `yaml:"roster_url"`
		Site           string `yaml:"site"`        // origin used to absolutize relative links
		PathPrefix     string `yaml:"path_prefix"` // profile links must contain this path
		Fetcher        string `yaml:"fetcher"`     // "rod" (headless browser) or "colly" (plain HTTP)
		PageTimeoutSec int    `yaml:"page_timeout_sec"`
		RosterWaitSec  int    `yaml:"roster_wait_sec"`
		ProfileWaitSec int    `yaml:"profile_wait_sec"`
		RequestDelayMs int    `yaml:"request_delay_ms"`
		OutputCSV      string `yaml:"output_csv"`
	} `yaml:"scrape"`
	Load struct {
		BioCSV   string `yaml:"bio_csv"`
		StatsCSV string `yaml:"stats_csv"`
		Database string `yaml:"database"`
	} `yaml:"load"`
}

// LoadConfig loads configuration from a YAML file. Fields the file
// leaves out keep their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := GetDefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// GetDefaultConfig returns the configuration matching the production
// roster site.
func GetDefaultConfig() *Config {
	cfg := &Config{}
	cfg.Scrape.RosterURL = "https://hurstathletics.com/sports/mens-ice-hockey/roster"
	cfg.Scrape.Site = "https://hurstathletics.com"
	cfg.Scrape.PathPrefix = "/sports/mens-ice-hockey/roster/"
	cfg.Scrape.Fetcher = "rod"
	cfg.Scrape.PageTimeoutSec = 60
	cfg.Scrape.RosterWaitSec = 60
	cfg.Scrape.ProfileWaitSec = 30
	cfg.Scrape.RequestDelayMs = 500
	cfg.Scrape.OutputCSV = "bio.csv"
	cfg.Load.BioCSV = "bio.csv"
	cfg.Load.StatsCSV = "stats.csv"
	cfg.Load.Database = "hurst_hockey.db"
	return cfg
}
