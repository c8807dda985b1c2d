// Package ui renders the admin terminal locally with Bubble Tea: an
// output viewport over the session log plus a prompt line, with Tab
// completion, history browsing and a glamour-rendered help overlay.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rustpress/adminterm/internal/shell"
)

// Model implements tea.Model for the terminal emulator.
type Model struct {
	interp   *shell.Interpreter
	sess     *shell.Session
	renderer MarkdownRenderer

	input    textinput.Model
	viewport viewport.Model
	log      []shell.Line

	showHelp bool
	helpView string
	width    int
	height   int
	ready    bool
}

// NewModel builds the terminal model over an interpreter and session.
func NewModel(interp *shell.Interpreter, sess *shell.Session, renderer MarkdownRenderer) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "type a command, or 'help'"
	ti.Focus()

	vp := viewport.New(80, 20)

	m := Model{
		interp:   interp,
		sess:     sess,
		renderer: renderer,
		input:    ti,
		viewport: vp,
	}
	m.log = append(m.log, shell.Line{
		Kind: shell.LineOutput,
		Text: "RustPress admin terminal. Type 'help' for available commands.",
	})
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 3 // prompt and status rows
		m.input.Width = msg.Width - len(m.interp.Prompt(m.sess)) - 2
		m.ready = true
		m.refreshViewport()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		return m, tea.Quit

	case tea.KeyF1:
		m.showHelp = !m.showHelp
		if m.showHelp && m.helpView == "" {
			m.helpView = m.renderHelp()
		}
		return m, nil

	case tea.KeyCtrlL:
		m.log = nil
		m.refreshViewport()
		return m, nil

	case tea.KeyTab:
		if completed := m.interp.Complete(m.input.Value()); completed != "" {
			m.input.SetValue(completed)
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyUp:
		if entry, ok := m.sess.HistoryPrev(); ok {
			m.input.SetValue(entry)
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		entry, _ := m.sess.HistoryNext()
		m.input.SetValue(entry)
		m.input.CursorEnd()
		return m, nil

	case tea.KeyEnter:
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	result := m.interp.Run(m.sess, m.input.Value())
	m.input.SetValue("")

	if result.Exited {
		return m, tea.Quit
	}
	if result.ClearScreen {
		m.log = nil
	}
	m.log = append(m.log, result.Lines...)
	m.refreshViewport()
	return m, nil
}

func (m *Model) refreshViewport() {
	var b strings.Builder
	for _, line := range m.log {
		switch line.Kind {
		case shell.LineInput:
			b.WriteString(inputLineStyle.Render(line.Text))
		case shell.LineError:
			b.WriteString(errorLineStyle.Render(line.Text))
		default:
			b.WriteString(outputLineStyle.Render(line.Text))
		}
		b.WriteString("\n")
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

func (m Model) renderHelp() string {
	if m.renderer == nil {
		return helpMarkdown
	}
	rendered, err := m.renderer.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return rendered
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading terminal..."
	}

	if m.showHelp {
		return lipgloss.Place(
			m.width,
			m.height,
			lipgloss.Center,
			lipgloss.Center,
			helpBoxStyle.Render(m.helpView),
		)
	}

	status := statusStyle.Render("F1 help · Tab complete · Ctrl+D exit")
	if m.sess.Locked {
		status = lipgloss.JoinHorizontal(lipgloss.Left,
			lockedStyle.Render("locked "), status)
	}

	promptRow := lipgloss.JoinHorizontal(lipgloss.Left,
		promptStyle.Render(m.interp.Prompt(m.sess)+" "),
		m.input.View(),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewport.View(),
		promptRow,
		status,
	)
}

// Run starts the terminal in the alternate screen and blocks until exit.
func Run(interp *shell.Interpreter, sess *shell.Session, renderer MarkdownRenderer) error {
	program := tea.NewProgram(NewModel(interp, sess, renderer), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
