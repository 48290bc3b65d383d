package journal

import (
	"context"
	"fmt"
	"os"
	"time"

	"tableflip.dev/numa/pkg/journal"
	"tableflip.dev/numa/pkg/printers"
	"tableflip.dev/numa/pkg/store"
)

// Add saves a new entry, stamping it with today's prompt unless told not
// to.
type Add struct {
	Title       string
	Content     string
	NoPrompt    bool
	Persistence store.Persistence
}

func (a *Add) Do(ctx context.Context) error {
	m := journal.NewManager(a.Persistence)

	prompt := ""
	if !a.NoPrompt {
		prompt = journal.DailyPrompt(time.Now())
	}

	entry, err := m.Create(a.Title, a.Content, prompt)
	if err != nil {
		if err == journal.ErrEmptyTitle || err == journal.ErrEmptyContent {
			return err
		}
		fmt.Fprintf(os.Stderr, "journal: not persisted: %s\n", err)
	}

	pp := printers.PrettyPrint{}
	pp.JournalEntry(entry)
	return nil
}

// List prints entries, optionally filtered by a search query.
type List struct {
	Query       string
	ShowID      bool
	Persistence store.Persistence
}

func (l *List) Do(ctx context.Context) error {
	m := journal.NewManager(l.Persistence)
	entries := m.Search(l.Query)

	pp := printers.PrettyPrint{ShowID: l.ShowID}
	if l.Query == "" {
		pp.Title("Journal")
	} else {
		pp.Title(fmt.Sprintf("Journal matching %q", l.Query))
	}
	pp.JournalEntries(entries...)
	return nil
}

// Delete removes the entry with the given id.
type Delete struct {
	ID          string
	Persistence store.Persistence
}

func (d *Delete) Do(ctx context.Context) error {
	m := journal.NewManager(d.Persistence)
	if err := m.Delete(d.ID); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", d.ID)
	return nil
}

// Prompt prints today's journaling prompt.
type Prompt struct{}

func (p *Prompt) Do(ctx context.Context) error {
	now := time.Now()
	pp := printers.PrettyPrint{}
	pp.PromptCard(journal.DailyPrompt(now), now)
	return nil
}
