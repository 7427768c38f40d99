package parser

import (
	"strings"

	"roster-scraper/models"

	"github.com/PuerkitoBio/goquery"
)

// Selectors for the roster platform's profile page layout.
const (
	jerseyNumberSelector = "span.sidearm-roster-player-jersey-number"
	playerNameSelector   = "span.sidearm-roster-player-name"
	playerFieldsSelector = ".sidearm-roster-player-fields dl"
)

// ExtractProfile maps a single profile document onto the ten bio
// fields. Anything that cannot be found stays empty.
func ExtractProfile(doc *goquery.Document) models.Profile {
	var p models.Profile

	p.Number = Normalize(doc.Find(jerseyNumberSelector).First().Text())

	if name := doc.Find(playerNameSelector).First(); name.Length() > 0 {
		var parts []string
		name.Find("span").Each(func(_ int, s *goquery.Selection) {
			if t := Normalize(s.Text()); t != "" {
				parts = append(parts, t)
			}
		})
		if len(parts) == 0 {
			// Some profile layouts render the name as plain text
			// without per-part spans.
			parts = strings.Fields(Normalize(name.Text()))
		}
		p.Player = strings.Join(parts, " ")
		if len(parts) > 0 {
			p.FirstName = parts[0]
			p.LastName = parts[len(parts)-1]
		}
	}

	doc.Find(playerFieldsSelector).Each(func(_ int, dl *goquery.Selection) {
		dt := dl.Find("dt").First()
		dd := dl.Find("dd").First()
		if dt.Length() == 0 || dd.Length() == 0 {
			return
		}

		label := strings.ToLower(strings.TrimSuffix(Normalize(dt.Text()), ":"))
		value := Normalize(dd.Text())
		switch {
		case strings.HasPrefix(label, "position"):
			p.Position = value
		case strings.HasPrefix(label, "height"):
			p.Height = value
		case strings.HasPrefix(label, "weight"):
			p.Weight = value
		case strings.HasPrefix(label, "class"):
			p.Class = value
		case strings.HasPrefix(label, "hometown"):
			p.Hometown = value
		case strings.HasPrefix(label, "high school"), strings.HasPrefix(label, "highschool"):
			p.HighSchool = value
		}
	})

	return p
}
