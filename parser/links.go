package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DiscoverProfileLinks returns the absolute profile URLs found on the
// roster document whose href contains pathPrefix, in document order,
// first occurrence winning. Relative hrefs are absolutized against the
// site origin. The roster URL itself is excluded.
func DiscoverProfileLinks(doc *goquery.Document, site, pathPrefix, rosterURL string) []string {
	seen := make(map[string]bool)
	var links []string

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href := a.AttrOr("href", "")
		if href == "" || !strings.Contains(href, pathPrefix) {
			return
		}
		if strings.HasPrefix(href, "/") {
			href = site + href
		}
		if href == rosterURL || seen[href] {
			return
		}
		seen[href] = true
		links = append(links, href)
	})

	return links
}
