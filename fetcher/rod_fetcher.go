package fetcher

import (
	"fmt"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// RodFetcher implements the Fetcher interface using rod (headless browser).
// The roster platform renders its pages with JavaScript, so a plain HTTP
// fetch is not always enough.
type RodFetcher struct {
	browser     *rod.Browser
	pageTimeout time.Duration
}

// NewRodFetcher launches a headless browser and connects to it.
// pageTimeout bounds navigation and load of a single page.
func NewRodFetcher(pageTimeout time.Duration) (*RodFetcher, error) {
	l := launcher.New().
		Headless(true).
		NoSandbox(true).
		Leakless(false). // Disable leakless to avoid antivirus issues
		Set("disable-blink-features", "AutomationControlled").
		Set("disable-dev-shm-usage").
		Set("disable-gpu").
		Set("no-first-run").
		Set("no-default-browser-check").
		Set("disable-extensions").
		Set("mute-audio")

	// Prefer a system Chrome/Chromium when one is installed.
	linuxPaths := []string{
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/snap/bin/chromium",
	}
	for _, path := range linuxPaths {
		if _, err := os.Stat(path); err == nil {
			l = l.Bin(path)
			break
		}
	}

	browserURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(browserURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	return &RodFetcher{
		browser:     browser,
		pageTimeout: pageTimeout,
	}, nil
}

// Close closes the browser.
func (rf *RodFetcher) Close() error {
	if rf.browser != nil {
		return rf.browser.Close()
	}
	return nil
}

// FetchPage implements the Fetcher interface.
func (rf *RodFetcher) FetchPage(url, waitSelector string, waitTimeout time.Duration) (string, error) {
	// Create a new page (use MustPage with panic recovery)
	var page *rod.Page
	var pageErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				pageErr = fmt.Errorf("panic while creating page: %v", r)
			}
		}()
		page = rf.browser.MustPage()
	}()
	if pageErr != nil {
		return "", pageErr
	}
	defer page.Close()

	p := page.Timeout(rf.pageTimeout)
	if err := p.Navigate(url); err != nil {
		return "", fmt.Errorf("failed to navigate: %w", err)
	}
	if err := p.WaitLoad(); err != nil {
		return "", fmt.Errorf("failed to load page: %w", err)
	}

	if waitSelector != "" {
		if _, err := page.Timeout(waitTimeout).Element(waitSelector); err != nil {
			return "", fmt.Errorf("marker %q did not appear: %w", waitSelector, err)
		}
	}

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("failed to get HTML: %w", err)
	}
	return html, nil
}
