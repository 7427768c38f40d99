package fetcher

import "time"

// Fetcher is the contract shared by the page fetching implementations.
type Fetcher interface {
	// FetchPage retrieves the HTML of a single page. When waitSelector
	// is non-empty, implementations that render JavaScript wait up to
	// waitTimeout for a matching element to appear before returning the
	// HTML; static-HTML implementations ignore it.
	FetchPage(url, waitSelector string, waitTimeout time.Duration) (string, error)

	// Close releases any resources held by the fetcher.
	Close() error
}
