package journal

import (
	"time"

	"tableflip.dev/numa/pkg/record"
)

// Entry is one saved journal entry. Entries are never edited in place;
// history is kept newest-first.
type Entry struct {
	ID      string           `json:"id"`
	Date    record.Timestamp `json:"date"`
	Title   string           `json:"title"`
	Content string           `json:"content"`
	// Prompt is a denormalized copy of the daily prompt shown when the
	// entry was written. No foreign key, nothing cascades.
	Prompt string `json:"prompt,omitempty"`
}

// Prompts is the fixed daily prompt rotation.
var Prompts = []string{
	"What made you smile today?",
	"What's one thing you're grateful for?",
	"How did you take care of yourself today?",
	"What's a challenge you faced and how did you handle it?",
	"What would you like to tell your future self?",
	"What's something you learned about yourself today?",
	"Describe a moment when you felt proud of yourself.",
	"What's weighing on your mind right now?",
}

// DailyPrompt selects the prompt for the given day: day-of-year modulo
// the rotation length, so a calendar day always yields the same prompt
// and the year boundary wraps naturally.
func DailyPrompt(t time.Time) string {
	return Prompts[t.YearDay()%len(Prompts)]
}
