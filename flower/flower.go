// Package flower maps a birth month to the flower that crowns the anchor
// letter. Unknown months fall back to the default flower.
package flower

import "strings"

// Flower describes the blossom drawn above the anchor letter and the colors
// used for the stems.
type Flower struct {
	Name    string
	Glyph   rune
	Blossom string // hex color of the anchor letter and glyph
	Stem    string // hex color the remaining letters shade from
}

// Default is used when no month is selected or the month is unknown.
var Default = Flower{Name: "wildflower", Glyph: '❀', Blossom: "#e879a6", Stem: "#4ade80"}

var months = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// Birth flowers by month.
var catalog = map[string]Flower{
	"january":   {Name: "carnation", Glyph: '✿', Blossom: "#f472b6", Stem: "#4ade80"},
	"february":  {Name: "violet", Glyph: '❀', Blossom: "#a78bfa", Stem: "#4ade80"},
	"march":     {Name: "daffodil", Glyph: '✾', Blossom: "#facc15", Stem: "#65a30d"},
	"april":     {Name: "daisy", Glyph: '❁', Blossom: "#f8fafc", Stem: "#4ade80"},
	"may":       {Name: "lily of the valley", Glyph: '❃', Blossom: "#e2e8f0", Stem: "#22c55e"},
	"june":      {Name: "rose", Glyph: '❀', Blossom: "#f43f5e", Stem: "#166534"},
	"july":      {Name: "larkspur", Glyph: '✽', Blossom: "#818cf8", Stem: "#4ade80"},
	"august":    {Name: "gladiolus", Glyph: '✿', Blossom: "#fb7185", Stem: "#65a30d"},
	"september": {Name: "aster", Glyph: '✳', Blossom: "#c084fc", Stem: "#4ade80"},
	"october":   {Name: "marigold", Glyph: '❁', Blossom: "#fb923c", Stem: "#a16207"},
	"november":  {Name: "chrysanthemum", Glyph: '❋', Blossom: "#fbbf24", Stem: "#854d0e"},
	"december":  {Name: "narcissus", Glyph: '❅', Blossom: "#f1f5f9", Stem: "#15803d"},
}

// ForMonth returns the flower for a month name, case-insensitively.
// Empty or unrecognized months return Default.
func ForMonth(month string) Flower {
	if f, ok := catalog[strings.ToLower(strings.TrimSpace(month))]; ok {
		return f
	}
	return Default
}

// Months returns the month names in calendar order, for cycling in the UI.
func Months() []string {
	out := make([]string, len(months))
	copy(out, months)
	return out
}

// Next returns the month after the given one, wrapping at December.
// An empty or unknown month starts the cycle at January.
func Next(month string) string {
	m := strings.ToLower(strings.TrimSpace(month))
	for i, name := range months {
		if name == m {
			return months[(i+1)%len(months)]
		}
	}
	return months[0]
}
