package journal

import (
	"errors"
	"strings"
	"sync"

	"tableflip.dev/numa/pkg/record"
	"tableflip.dev/numa/pkg/store"
)

var (
	// ErrEmptyTitle rejects a create whose title trims to nothing.
	ErrEmptyTitle = errors.New("journal: title required")
	// ErrEmptyContent rejects a create whose content trims to nothing.
	ErrEmptyContent = errors.New("journal: content required")
	// ErrNotFound is returned when deleting an unknown id.
	ErrNotFound = errors.New("journal: entry not found")
)

// Manager owns the journal collection, newest-first.
type Manager struct {
	mu       sync.Mutex
	p        store.Persistence
	entries  []Entry
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
	if err := m.p.Load(store.JournalCollection, &stored); err != nil {
		return
	}
	m.entries = stored
}

// Create saves a new entry. Title and content must be non-empty after
// trimming; a failed validation leaves the collection untouched. The
// prompt, if any, is copied onto the entry as it was shown.
func (m *Manager) Create(title, content, prompt string) (Entry, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" {
		return Entry{}, ErrEmptyTitle
	}
	if content == "" {
		return Entry{}, ErrEmptyContent
	}

	entry := Entry{
		ID:      record.NewID(),
		Date:    record.Now(),
		Title:   title,
		Content: content,
		Prompt:  prompt,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.hydrate()
	m.entries = append([]Entry{entry}, m.entries...)

	if m.p != nil {
		if err := m.p.Save(store.JournalCollection, m.entries); err != nil {
			return entry, err
		}
	}
	return entry, nil
}

// Delete removes the entry with the given id and persists the remainder.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hydrate()

	kept := m.entries[:0:0]
	found := false
	for _, e := range m.entries {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return ErrNotFound
	}
	m.entries = kept

	if m.p != nil {
		if err := m.p.Save(store.JournalCollection, m.entries); err != nil {
			return err
		}
	}
	return nil
}

// Entries returns a copy of all entries, newest-first.
func (m *Manager) Entries() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hydrate()
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Search filters entries by case-insensitive substring match on title or
// content, preserving order. An empty query returns everything.
func (m *Manager) Search(query string) []Entry {
	all := m.Entries()
	if query == "" {
		return all
	}
	q := strings.ToLower(query)
	matched := make([]Entry, 0, len(all))
	for _, e := range all {
		if strings.Contains(strings.ToLower(e.Title), q) ||
			strings.Contains(strings.ToLower(e.Content), q) {
			matched = append(matched, e)
		}
	}
	return matched
}
