package parser

import (
	"reflect"
	"testing"
)

const (
	testSite   = "https://hurstathletics.com"
	testPrefix = "/sports/mens-ice-hockey/roster/"
	testRoster = "https://hurstathletics.com/sports/mens-ice-hockey/roster"
)

func TestDiscoverProfileLinks(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected []string
	}{
		{
			name: "relative links absolutized",
			html: `
				<a href="/sports/mens-ice-hockey/roster/jane-doe/123">Jane Doe</a>
				<a href="/sports/mens-ice-hockey/roster/john-smith/124">John Smith</a>`,
			expected: []string{
				"https://hurstathletics.com/sports/mens-ice-hockey/roster/jane-doe/123",
				"https://hurstathletics.com/sports/mens-ice-hockey/roster/john-smith/124",
			},
		},
		{
			name: "duplicate absolute and relative forms collapse",
			html: `
				<a href="/sports/mens-ice-hockey/roster/jane-doe/123">card</a>
				<a href="https://hurstathletics.com/sports/mens-ice-hockey/roster/jane-doe/123">name</a>
				<a href="https://example.com/unrelated">elsewhere</a>
				<a href="/sports/mens-ice-hockey/roster/john-smith/124">John Smith</a>`,
			expected: []string{
				"https://hurstathletics.com/sports/mens-ice-hockey/roster/jane-doe/123",
				"https://hurstathletics.com/sports/mens-ice-hockey/roster/john-smith/124",
			},
		},
		{
			name: "roster url itself excluded",
			html: `
				<a href="/sports/mens-ice-hockey/roster">Roster</a>
				<a href="https://hurstathletics.com/sports/mens-ice-hockey/roster">Roster</a>
				<a href="/sports/mens-ice-hockey/roster/jane-doe/123">Jane Doe</a>`,
			expected: []string{
				"https://hurstathletics.com/sports/mens-ice-hockey/roster/jane-doe/123",
			},
		},
		{
			name:     "no matching links",
			html:     `<a href="/sports/womens-soccer/roster/someone/55">elsewhere</a>`,
			expected: nil,
		},
		{
			name: "first occurrence order preserved",
			html: `
				<a href="/sports/mens-ice-hockey/roster/zed/3">Zed</a>
				<a href="/sports/mens-ice-hockey/roster/abe/1">Abe</a>
				<a href="/sports/mens-ice-hockey/roster/zed/3">Zed again</a>`,
			expected: []string{
				"https://hurstathletics.com/sports/mens-ice-hockey/roster/zed/3",
				"https://hurstathletics.com/sports/mens-ice-hockey/roster/abe/1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustDoc(t, "<html><body>"+tt.html+"</body></html>")
			got := DiscoverProfileLinks(doc, testSite, testPrefix, testRoster)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("DiscoverProfileLinks() = %v, want %v", got, tt.expected)
			}
		})
	}
}
