package parser

import "strings"

// Normalize collapses every whitespace run, including non-breaking
// spaces, into a single ordinary space and trims both ends. It never
// fails; garbage in, trimmed garbage out.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "\u00a0", " ")), " ")
}
