package mood

import (
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/numa/pkg/record"
)

// Mood is one selectable mood in the catalog.
type Mood struct {
	Emoji string
	Label string
	Color color.Attribute
}

var catalog = []Mood{
	{Emoji: "😊", Label: "Happy", Color: color.FgGreen},
	{Emoji: "😌", Label: "Calm", Color: color.FgBlue},
	{Emoji: "😔", Label: "Sad", Color: color.FgHiBlue},
	{Emoji: "😰", Label: "Anxious", Color: color.FgYellow},
	{Emoji: "😡", Label: "Angry", Color: color.FgRed},
	{Emoji: "😴", Label: "Tired", Color: color.FgMagenta},
	{Emoji: "🥰", Label: "Loved", Color: color.FgHiMagenta},
	{Emoji: "😢", Label: "Heartbroken", Color: color.FgHiRed},
}

// Moods returns the fixed eight-mood catalog.
func Moods() []Mood {
	out := make([]Mood, len(catalog))
	copy(out, catalog)
	return out
}

// Find looks a mood up by emoji or case-insensitive label.
func Find(s string) (Mood, bool) {
	for _, m := range catalog {
		if m.Emoji == s || strings.EqualFold(m.Label, s) {
			return m, true
		}
	}
	return Mood{}, false
}

// Entry is one logged mood. Entries are never updated; history is kept
// newest-first.
type Entry struct {
	Date      record.Timestamp `json:"date"`
	Emoji     string           `json:"emoji"`
	Intensity int              `json:"intensity"`
	Note      string           `json:"note,omitempty"`
}

// Band is the display severity of an intensity value. It is derived on
// demand and never stored.
type Band int

const (
	BandLow    Band = iota // 1-3
	BandMedium             // 4-6
	BandHigh               // 7-10
)

// BandFor classifies an intensity value.
func BandFor(intensity int) Band {
	switch {
	case intensity <= 3:
		return BandLow
	case intensity <= 6:
		return BandMedium
	default:
		return BandHigh
	}
}

func (b Band) String() string {
	switch b {
	case BandLow:
		return "low"
	case BandMedium:
		return "medium"
	default:
		return "high"
	}
}

// Color returns the severity color, matching the intensity dots the app
// has always shown.
func (b Band) Color() color.Attribute {
	switch b {
	case BandLow:
		return color.FgGreen
	case BandMedium:
		return color.FgYellow
	default:
		return color.FgRed
	}
}
