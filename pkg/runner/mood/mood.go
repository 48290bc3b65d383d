package mood

import (
	"context"
	"fmt"
	"os"
	"time"

	"tableflip.dev/numa/pkg/mood"
	"tableflip.dev/numa/pkg/printers"
	"tableflip.dev/numa/pkg/store"
	"tableflip.dev/numa/pkg/timeutil"
)

// Log records one check-in and prints the week so far.
type Log struct {
	Mood        string
	Intensity   int
	Note        string
	Persistence store.Persistence
}

func (l *Log) Do(ctx context.Context) error {
	m := mood.NewManager(l.Persistence)
	entry, err := m.Log(l.Mood, l.Intensity, l.Note)
	if err != nil {
		if err == mood.ErrNoMood {
			return fmt.Errorf("unknown mood %q, pick one of the catalog (numa mood list)", l.Mood)
		}
		fmt.Fprintf(os.Stderr, "mood: not persisted: %s\n", err)
	}

	pp := printers.PrettyPrint{}
	pp.Logged(entry.Emoji, entry.Intensity)
	pp.NewLine()
	pp.Title("This Week")
	pp.Week(m.WeekSummary(time.Now()))
	return nil
}

// Week prints the 7-day mood calendar.
type Week struct {
	Persistence store.Persistence
}

func (w *Week) Do(ctx context.Context) error {
	m := mood.NewManager(w.Persistence)
	pp := printers.PrettyPrint{}
	pp.Title("This Week")
	pp.Week(m.WeekSummary(time.Now()))
	return nil
}

// Recent prints the latest check-ins, optionally limited to a lookback
// window like "1w" or "3d".
type Recent struct {
	Count       int
	Window      string
	Persistence store.Persistence
}

func (r *Recent) Do(ctx context.Context) error {
	if r.Count <= 0 {
		r.Count = 5
	}
	m := mood.NewManager(r.Persistence)
	entries := m.Recent(r.Count)

	title := "Recent Check-ins"
	if r.Window != "" {
		window, label, err := timeutil.ParseWindow(r.Window)
		if err != nil {
			return err
		}
		cutoff := time.Now().Add(-window)
		kept := entries[:0:0]
		for _, e := range entries {
			if e.Date.After(cutoff) {
				kept = append(kept, e)
			}
		}
		entries = kept
		title = fmt.Sprintf("Check-ins, last %s", label)
	}

	pp := printers.PrettyPrint{}
	pp.Title(title)
	pp.CheckIns(entries)
	return nil
}

// List prints the mood catalog.
type List struct{}

func (l *List) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}
	pp.Title("Moods")
	for _, m := range mood.Moods() {
		fmt.Printf("%s  %s\n", m.Emoji, m.Label)
	}
	pp.NewLine()
	return nil
}
