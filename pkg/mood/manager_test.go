package mood

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"tableflip.dev/numa/pkg/record"
)

type memoryPersistence struct {
	data  map[string][]byte
	flags map[string]bool
	fail  bool
}

func newMemoryPersistence() *memoryPersistence {
	return &memoryPersistence{data: make(map[string][]byte), flags: make(map[string]bool)}
}

func (m *memoryPersistence) Load(name string, into any) error {
	raw, ok := m.data[name]
	if !ok {
		return nil
	}
	return json.Unmarshal(raw, into)
}

func (m *memoryPersistence) Save(name string, v any) error {
	if m.fail {
		return errors.New("quota exceeded")
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.data[name] = raw
	return nil
}

func (m *memoryPersistence) Flag(name string) bool { return m.flags[name] }

func (m *memoryPersistence) SetFlag(name string, v bool) error {
	m.flags[name] = v
	return nil
}

func TestLogDefaultsAndClampsIntensity(t *testing.T) {
	m := NewManager(newMemoryPersistence())

	cases := []struct {
		in   int
		want int
	}{
		{0, DefaultIntensity},
		{1, 1},
		{10, 10},
		{-3, 1},
		{15, 10},
	}
	for _, c := range cases {
		entry, err := m.Log("😊", c.in, "")
		if err != nil {
			t.Fatalf("log intensity %d: %v", c.in, err)
		}
		if entry.Intensity != c.want {
			t.Fatalf("intensity %d: got %d, want %d", c.in, entry.Intensity, c.want)
		}
		if entry.Intensity < 1 || entry.Intensity > 10 {
			t.Fatalf("intensity out of range: %d", entry.Intensity)
		}
	}
}

func TestLogRequiresCatalogMood(t *testing.T) {
	m := NewManager(newMemoryPersistence())

	if _, err := m.Log("", 5, ""); !errors.Is(err, ErrNoMood) {
		t.Fatalf("expected ErrNoMood, got %v", err)
	}
	if _, err := m.Log("🤖", 5, ""); !errors.Is(err, ErrNoMood) {
		t.Fatalf("expected ErrNoMood for unknown emoji, got %v", err)
	}
	if len(m.History()) != 0 {
		t.Fatalf("rejected log must not mutate history")
	}
}

func TestLogAcceptsLabelAndPrepends(t *testing.T) {
	m := NewManager(newMemoryPersistence())

	if _, err := m.Log("anxious", 4, "deadline"); err != nil {
		t.Fatalf("log by label: %v", err)
	}
	if _, err := m.Log("Happy", 8, ""); err != nil {
		t.Fatalf("log by label: %v", err)
	}

	history := m.History()
	if len(history) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(history))
	}
	if history[0].Emoji != "😊" || history[1].Emoji != "😰" {
		t.Fatalf("history not newest-first: %+v", history)
	}
	if history[1].Note != "deadline" {
		t.Fatalf("note dropped: %+v", history[1])
	}
}

func TestLogPersistsAndRehydrates(t *testing.T) {
	p := newMemoryPersistence()
	first := NewManager(p)
	if _, err := first.Log("😊", 8, ""); err != nil {
		t.Fatalf("log: %v", err)
	}

	second := NewManager(p)
	history := second.History()
	if len(history) != 1 {
		t.Fatalf("expected rehydrated entry, got %d", len(history))
	}
	if history[0].Emoji != "😊" || history[0].Intensity != 8 {
		t.Fatalf("entry changed across round-trip: %+v", history[0])
	}
	if history[0].Date.IsZero() {
		t.Fatalf("timestamp not reconstructed")
	}
}

func TestLogPersistenceFailureKeepsState(t *testing.T) {
	p := newMemoryPersistence()
	p.fail = true
	m := NewManager(p)

	if _, err := m.Log("😊", 8, ""); err == nil {
		t.Fatalf("expected persistence error")
	}
	if len(m.History()) != 1 {
		t.Fatalf("in-memory state must survive a persistence failure")
	}
}

func TestWeekSummaryTodaySlot(t *testing.T) {
	m := NewManager(newMemoryPersistence())
	if _, err := m.Log("😊", 8, ""); err != nil {
		t.Fatalf("log: %v", err)
	}

	week := m.WeekSummary(time.Now())
	if len(week) != 7 {
		t.Fatalf("expected 7 days, got %d", len(week))
	}
	for i := 1; i < 7; i++ {
		if !week[i-1].Day.Before(week[i].Day) {
			t.Fatalf("week not oldest-first")
		}
	}
	today := week[6]
	if today.Entry == nil {
		t.Fatalf("today's slot empty after logging")
	}
	if today.Entry.Emoji != "😊" {
		t.Fatalf("today's slot shows %q", today.Entry.Emoji)
	}
	if BandFor(today.Entry.Intensity) != BandHigh {
		t.Fatalf("intensity 8 should band high")
	}
	for i := 0; i < 6; i++ {
		if week[i].Entry != nil {
			t.Fatalf("day %d unexpectedly has an entry", i)
		}
	}
}

func TestWeekSummaryNewestLoggedWins(t *testing.T) {
	m := NewManager(newMemoryPersistence())
	if _, err := m.Log("😔", 2, ""); err != nil {
		t.Fatalf("log: %v", err)
	}
	if _, err := m.Log("😊", 9, ""); err != nil {
		t.Fatalf("log: %v", err)
	}

	week := m.WeekSummary(time.Now())
	if week[6].Entry == nil || week[6].Entry.Emoji != "😊" {
		t.Fatalf("most recently logged mood should win the day")
	}
}

func TestWeekSummaryDateOnlyComparison(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.Local)

	m := NewManager(newMemoryPersistence())
	m.history = []Entry{{
		Date:      record.Timestamp{Time: now.AddDate(0, 0, -3).Add(9 * time.Hour)},
		Emoji:     "😴",
		Intensity: 5,
	}}
	m.hydrated = true

	week := m.WeekSummary(now)
	if week[3].Entry == nil || week[3].Entry.Emoji != "😴" {
		t.Fatalf("time-of-day must be ignored when matching days")
	}
}

func TestBandFor(t *testing.T) {
	cases := []struct {
		in   int
		want Band
	}{
		{1, BandLow}, {3, BandLow},
		{4, BandMedium}, {6, BandMedium},
		{7, BandHigh}, {10, BandHigh},
	}
	for _, c := range cases {
		if got := BandFor(c.in); got != c.want {
			t.Fatalf("BandFor(%d) = %s, want %s", c.in, got, c.want)
		}
	}
	if BandLow.String() != "low" || BandMedium.String() != "medium" || BandHigh.String() != "high" {
		t.Fatalf("band names changed")
	}
}

func TestRecentLimitsCount(t *testing.T) {
	m := NewManager(newMemoryPersistence())
	for i := 0; i < 8; i++ {
		if _, err := m.Log("calm", 5, ""); err != nil {
			t.Fatalf("log: %v", err)
		}
	}
	if got := len(m.Recent(5)); got != 5 {
		t.Fatalf("Recent(5) returned %d", got)
	}
	if got := len(m.Recent(20)); got != 8 {
		t.Fatalf("Recent(20) returned %d", got)
	}
}

func TestFindCatalog(t *testing.T) {
	if len(Moods()) != 8 {
		t.Fatalf("catalog must hold 8 moods")
	}
	if _, ok := Find("HEARTBROKEN"); !ok {
		t.Fatalf("label lookup should be case-insensitive")
	}
	if _, ok := Find("🥰"); !ok {
		t.Fatalf("emoji lookup failed")
	}
	if _, ok := Find("ecstatic"); ok {
		t.Fatalf("unknown mood should not resolve")
	}
}
