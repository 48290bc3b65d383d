package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/numa/pkg/chat"
	"tableflip.dev/numa/pkg/journal"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Transcript prints a conversation in creation order.
func (pp *PrettyPrint) Transcript(messages ...chat.Message) {
	if len(messages) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	you := color.New(color.FgCyan, color.Bold)
	numa := color.New(color.FgMagenta, color.Bold)
	body := color.New()
	ts := color.New(color.Faint)

	for _, m := range messages {
		label, name := numa, "numa"
		if m.Role == chat.RoleUser {
			label, name = you, "you"
		}
		_, _ = label.Printf("%s ", name)
		_, _ = ts.Printf("(%s)\n", m.Timestamp.Local().Format("Jan 2 15:04"))
		_, _ = body.Println(indent(m.Content, "  "))
	}
	_, _ = body.Println("")
}

// CrisisBanner surfaces the safety alert above the transcript.
func (pp *PrettyPrint) CrisisBanner(text string) {
	a := color.New(color.FgHiRed, color.Bold)
	_, _ = a.Printf("⚠ %s\n\n", text)
}

// JournalEntries prints entries as a table, newest-first.
func (pp *PrettyPrint) JournalEntries(entries ...journal.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no entries yet\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true

	if pp.ShowID {
		tbl.AddRow("ID", "DATE", "TITLE", "CONTENT")
	} else {
		tbl.AddRow("DATE", "TITLE", "CONTENT")
	}
	for _, e := range entries {
		date := e.Date.Local().Format("Jan 2, 2006")
		if pp.ShowID {
			tbl.AddRow(e.ID, date, e.Title, e.Content)
		} else {
			tbl.AddRow(date, e.Title, e.Content)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// JournalEntry prints one full entry with its prompt, if any.
func (pp *PrettyPrint) JournalEntry(e journal.Entry) {
	pp.Title(e.Title)
	ts := color.New(color.Faint)
	_, _ = ts.Println(e.Date.Local().Format("Monday, January 2, 2006"))
	if e.Prompt != "" {
		p := color.New(color.FgHiMagenta, color.Italic)
		_, _ = p.Printf("💭 %s\n", e.Prompt)
	}
	fmt.Println("")
	fmt.Println(e.Content)
	fmt.Println("")
}

// PromptCard prints the daily journal prompt.
func (pp *PrettyPrint) PromptCard(prompt string, on time.Time) {
	t := color.New(color.Faint)
	p := color.New(color.Bold)
	_, _ = t.Printf("Today's prompt (%s)\n", on.Format("Jan 2"))
	_, _ = p.Printf("%s\n\n", prompt)
}

// Logged confirms a fresh check-in.
func (pp *PrettyPrint) Logged(emoji string, intensity int) {
	ok := color.New(color.FgGreen)
	_, _ = ok.Printf("✓ Mood logged: %s %d/10\n", emoji, intensity)
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
