package mood

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	moodpkg "tableflip.dev/numa/pkg/mood"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	faintStyle    = lipgloss.NewStyle().Faint(true)
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	successStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

type clearFlashMsg struct{}

// Model is the mood picker: choose a mood, dial intensity, log it. After
// logging, a confirmation shows for the fixed window and the selection
// resets.
type Model struct {
	manager *moodpkg.Manager
	moods   []moodpkg.Mood

	cursor    int
	selecting bool // true once a mood is picked and intensity is live
	intensity int
	flash     bool
	err       error
}

func New(manager *moodpkg.Manager) Model {
	return Model{
		manager:   manager,
		moods:     moodpkg.Moods(),
		intensity: moodpkg.DefaultIntensity,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.flash {
			// Confirmation window; input waits for the reset.
			if msg.String() == "ctrl+c" || msg.String() == "q" {
				return m, tea.Quit
			}
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			if m.selecting && msg.String() == "esc" {
				m.selecting = false
				m.intensity = moodpkg.DefaultIntensity
				return m, nil
			}
			return m, tea.Quit
		case "left", "h":
			if m.selecting {
				if m.intensity > 1 {
					m.intensity--
				}
			} else if m.cursor > 0 {
				m.cursor--
			}
		case "right", "l":
			if m.selecting {
				if m.intensity < 10 {
					m.intensity++
				}
			} else if m.cursor < len(m.moods)-1 {
				m.cursor++
			}
		case "up", "k":
			if !m.selecting && m.cursor >= 4 {
				m.cursor -= 4
			}
		case "down", "j":
			if !m.selecting && m.cursor+4 < len(m.moods) {
				m.cursor += 4
			}
		case "enter":
			if !m.selecting {
				m.selecting = true
				return m, nil
			}
			_, err := m.manager.Log(m.moods[m.cursor].Emoji, m.intensity, "")
			m.err = err
			m.flash = true
			return m, tea.Tick(moodpkg.ConfirmationWindow, func(time.Time) tea.Msg {
				return clearFlashMsg{}
			})
		}

	case clearFlashMsg:
		m.flash = false
		m.selecting = false
		m.intensity = moodpkg.DefaultIntensity
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("How are you feeling?") + "\n\n")

	if m.flash {
		b.WriteString(successStyle.Render("✓ Mood logged successfully!") + "\n")
		if m.err != nil {
			b.WriteString(faintStyle.Render("(not persisted: "+m.err.Error()+")") + "\n")
		}
		b.WriteString("\n" + m.week())
		return b.String()
	}

	for i, mood := range m.moods {
		label := fmt.Sprintf("%s %-12s", mood.Emoji, mood.Label)
		switch {
		case i == m.cursor && m.selecting:
			label = selectedStyle.Render(label)
		case i == m.cursor:
			label = cursorStyle.Render("> " + label)
		default:
			label = "  " + label
		}
		b.WriteString(label)
		if i%4 == 3 {
			b.WriteString("\n")
		} else {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")

	if m.selecting {
		b.WriteString(fmt.Sprintf("Intensity  %s %d/10  %s\n",
			strings.Repeat("─", m.intensity-1)+"●"+strings.Repeat("─", 10-m.intensity),
			m.intensity,
			faintStyle.Render(moodpkg.BandFor(m.intensity).String())))
		b.WriteString(faintStyle.Render("←/→ adjust · enter logs · esc back") + "\n")
	} else {
		b.WriteString(faintStyle.Render("arrows move · enter picks · q quits") + "\n")
	}

	b.WriteString("\n" + m.week())
	return b.String()
}

func (m Model) week() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("This Week") + "\n")
	for _, d := range m.manager.WeekSummary(time.Now()) {
		b.WriteString(fmt.Sprintf("%4s ", d.Day.Format("Mon")))
	}
	b.WriteString("\n")
	for _, d := range m.manager.WeekSummary(time.Now()) {
		if d.Entry == nil {
			b.WriteString(faintStyle.Render("   · "))
			continue
		}
		b.WriteString(fmt.Sprintf("%4s ", d.Entry.Emoji))
	}
	b.WriteString("\n")
	return b.String()
}

// Run starts the mood screen and blocks until the user leaves.
func Run(manager *moodpkg.Manager) error {
	_, err := tea.NewProgram(New(manager)).Run()
	return err
}
