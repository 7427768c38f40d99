package fetcher

import (
	"fmt"
	"log"
	"time"

	"github.com/gocolly/colly/v2"
)

// CollyFetcher implements the Fetcher interface with plain HTTP
// requests. It is the fallback when a browser cannot be started; pages
// that need JavaScript rendering come back unrendered, so waitSelector
// is ignored.
type CollyFetcher struct {
	collector *colly.Collector
}

// NewCollyFetcher creates a CollyFetcher with a per-domain politeness
// delay between requests.
func NewCollyFetcher(delay time.Duration) *CollyFetcher {
	c := colly.NewCollector(
		colly.UserAgent("Mozilla/5.0 (compatible; roster-scraper/1.0)"),
	)

	c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Parallelism: 1,
		Delay:       delay,
	})

	return &CollyFetcher{
		collector: c,
	}
}

// Close implements the Fetcher interface; there is nothing to release.
func (cf *CollyFetcher) Close() error {
	return nil
}

// FetchPage implements the Fetcher interface.
func (cf *CollyFetcher) FetchPage(url, waitSelector string, waitTimeout time.Duration) (string, error) {
	var html string

	// Clone per request so response callbacks do not accumulate on the
	// shared collector. Clone does not copy callbacks, so everything is
	// registered here.
	c := cf.collector.Clone()
	c.OnResponse(func(r *colly.Response) {
		html = string(r.Body)
	})
	c.OnError(func(r *colly.Response, err error) {
		log.Printf("Error fetching %s: %v\n", r.Request.URL, err)
	})

	if err := c.Visit(url); err != nil {
		return "", fmt.Errorf("failed to visit URL: %w", err)
	}
	c.Wait()

	if html == "" {
		return "", fmt.Errorf("no response body from %s", url)
	}
	return html, nil
}
