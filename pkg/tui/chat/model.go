package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	chatpkg "tableflip.dev/numa/pkg/chat"
	"tableflip.dev/numa/pkg/crisis"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	userStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	numaStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
	alertStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

type replyMsg struct {
	exchange chatpkg.Exchange
	err      error
}

// Model is the interactive chat screen: transcript viewport, input line,
// typing indicator, and the crisis alert banner.
type Model struct {
	manager *chatpkg.Manager

	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	typing  bool
	pending string
	crisis  bool
	err     error
	ready   bool
	width   int
	height  int
}

func New(manager *chatpkg.Manager) Model {
	ti := textinput.New()
	ti.Placeholder = "Type your message..."
	ti.CharLimit = 500
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{manager: manager, input: ti, spinner: sp}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := msg.Height - 6
		if vpHeight < 3 {
			vpHeight = 3
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if m.typing || strings.TrimSpace(m.input.Value()) == "" {
				return m, nil
			}
			text := m.input.Value()
			m.input.Reset()
			m.typing = true
			m.pending = strings.TrimSpace(text)
			m.refresh()
			return m, tea.Batch(m.spinner.Tick, m.send(text))
		}

	case replyMsg:
		m.typing = false
		m.pending = ""
		m.err = msg.err
		if msg.exchange.Crisis {
			m.crisis = true
		}
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if !m.typing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// send runs the whole pipeline off the UI loop. The delay always
// resolves and its reply is always appended, even if the user is gone by
// then.
func (m Model) send(text string) tea.Cmd {
	manager := m.manager
	return func() tea.Msg {
		ex, err := manager.Send(context.Background(), text)
		return replyMsg{exchange: ex, err: err}
	}
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.transcript())
	m.viewport.GotoBottom()
}

func (m *Model) transcript() string {
	width := m.viewport.Width - 2
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	for _, msg := range m.manager.Messages() {
		name := numaStyle.Render("numa")
		if msg.Role == chatpkg.RoleUser {
			name = userStyle.Render("you")
		}
		when := faintStyle.Render(msg.Timestamp.Local().Format("15:04"))
		b.WriteString(fmt.Sprintf("%s %s\n%s\n\n", name, when, wordwrap.String(msg.Content, width)))
	}
	if m.pending != "" {
		b.WriteString(fmt.Sprintf("%s\n%s\n\n", userStyle.Render("you"), wordwrap.String(m.pending, width)))
	}
	return b.String()
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Numa") + faintStyle.Render("  esc to leave") + "\n")
	if m.crisis {
		b.WriteString(alertStyle.Render("⚠ "+crisis.Alert) + "\n")
	}
	b.WriteString(m.viewport.View() + "\n")
	if m.typing {
		b.WriteString(m.spinner.View() + faintStyle.Render("numa is typing...") + "\n")
	} else if m.err != nil {
		b.WriteString(alertStyle.Render(m.err.Error()) + "\n")
	} else {
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	return b.String()
}

// Run starts the chat screen and blocks until the user leaves.
func Run(manager *chatpkg.Manager) error {
	if err := manager.Initialize(); err != nil {
		fmt.Printf("chat: starting fresh: %s\n", err)
	}
	_, err := tea.NewProgram(New(manager), tea.WithAltScreen()).Run()
	return err
}
