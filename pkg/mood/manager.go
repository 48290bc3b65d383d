package mood

import (
	"errors"
	"sync"
	"time"

	"tableflip.dev/numa/pkg/record"
	"tableflip.dev/numa/pkg/store"
)

// ErrNoMood rejects a log with no recognized mood selected.
var ErrNoMood = errors.New("mood: no mood selected")

// DefaultIntensity is the neutral midpoint used when none is given.
const DefaultIntensity = 5

// ConfirmationWindow is how long the logged confirmation shows before
// selection state resets. Fixed, not user-configurable.
const ConfirmationWindow = 2 * time.Second

// Manager owns the mood history collection, newest-first.
type Manager struct {
	mu       sync.Mutex
	p        store.Persistence
	history  []Entry
	hydrated bool
}

func NewManager(p store.Persistence) *Manager {
	return &Manager{p: p}
}

func (m *Manager) hydrate() {
	if m.hydrated {
		return
	}
	m.hydrated = true
	if m.p == nil {
		return
	}
	var stored []Entry
	if err := m.p.Load(store.MoodCollection, &stored); err != nil {
		return
	}
	m.history = stored
}

// Log records one mood entry and prepends it to history. The mood must
// name a catalog entry (emoji or label). A zero intensity takes the
// default midpoint; out-of-range values are clamped into [1,10] rather
// than rejected, mirroring the bounds of the intensity selector.
//
// A persistence failure keeps the new in-memory entry and returns the
// error for reporting.
func (m *Manager) Log(moodName string, intensity int, note string) (Entry, error) {
	selected, ok := Find(moodName)
	if !ok {
		return Entry{}, ErrNoMood
	}
	if intensity == 0 {
		intensity = DefaultIntensity
	}
	if intensity < 1 {
		intensity = 1
	}
	if intensity > 10 {
		intensity = 10
	}

	entry := Entry{
		Date:      record.Now(),
		Emoji:     selected.Emoji,
		Intensity: intensity,
		Note:      note,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.hydrate()
	m.history = append([]Entry{entry}, m.history...)

	if m.p != nil {
		if err := m.p.Save(store.MoodCollection, m.history); err != nil {
			return entry, err
		}
	}
	return entry, nil
}

// History returns a copy of the full history, newest-first.
func (m *Manager) History() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hydrate()
	out := make([]Entry, len(m.history))
	copy(out, m.history)
	return out
}

// Recent returns up to n of the latest check-ins.
func (m *Manager) Recent(n int) []Entry {
	all := m.History()
	if len(all) > n {
		all = all[:n]
	}
	return all
}

// DaySummary pairs one calendar day with the mood logged on it, if any.
type DaySummary struct {
	Day   time.Time
	Entry *Entry
}

// WeekSummary returns the last 7 calendar days, oldest first, each with
// the entry whose date falls on that day. Matching is date-only; because
// history is newest-first, the most recently logged mood wins a day.
func (m *Manager) WeekSummary(now time.Time) []DaySummary {
	history := m.History()

	days := make([]DaySummary, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		summary := DaySummary{Day: day}
		for idx := range history {
			if history[idx].Date.SameDay(day) {
				summary.Entry = &history[idx]
				break
			}
		}
		days = append(days, summary)
	}
	return days
}
