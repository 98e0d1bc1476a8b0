package ui

import (
	"context"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"wallpaper/internal/domain"
	"wallpaper/internal/infra"
	"wallpaper/internal/session"
)

// Session is the controller surface the UI drives.
type Session interface {
	State() session.State
	SetPrompt(prompt string)
	SelectDevice(d domain.DeviceProfile)
	Generate(ctx context.Context) <-chan struct{}
}

// StateMsg tells the program that the session state changed.
type StateMsg struct {
	State session.State
}

// Sender is implemented by *tea.Program.
type Sender interface {
	Send(msg tea.Msg)
}

// Notifier adapts a program into a session subscriber. Sends are
// asynchronous because subscribers may fire from inside Update.
func Notifier(p Sender) func(session.State) {
	return func(s session.State) {
		go p.Send(StateMsg{State: s})
	}
}

// Options configures the terminal model.
type Options struct {
	OutDir string
	Logger *infra.Logger
}

// Model is the bubbletea model hosting the wallpaper form.
type Model struct {
	ctx     context.Context
	session Session
	outDir  string
	logger  *infra.Logger

	input       textinput.Model
	spinner     spinner.Model
	width       int
	notice      string
	inspiration int
}

func NewModel(ctx context.Context, s Session, opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "e.g., A serene Japanese garden with a cherry blossom tree under a full moon"
	ti.CharLimit = 1000
	ti.Width = maxPanelWidth
	ti.SetValue(s.State().Prompt)
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(accent)

	logger := opts.Logger
	if logger == nil {
		l := zerolog.New(io.Discard)
		logger = &l
	}
	return Model{
		ctx:     ctx,
		session: s,
		outDir:  opts.OutDir,
		logger:  logger,
		input:   ti,
		spinner: sp,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case StateMsg:
		return m, nil
	case spinner.TickMsg:
		if !m.session.State().IsLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		m.notice = ""
		if m.session.Generate(m.ctx) == nil {
			return m, nil
		}
		return m, m.spinner.Tick
	case "tab":
		m.session.SelectDevice(m.session.State().Device.Next())
		return m, nil
	case "ctrl+n":
		prompt := InspirationPrompts[m.inspiration%len(InspirationPrompts)]
		m.inspiration++
		m.input.SetValue(prompt)
		m.input.CursorEnd()
		m.session.SetPrompt(prompt)
		return m, nil
	case "ctrl+s":
		m.notice = m.download()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.session.SetPrompt(m.input.Value())
	return m, cmd
}

func (m Model) download() string {
	s := m.session.State()
	if s.Phase() != session.PhaseResult {
		return "Nothing to download yet."
	}
	path, err := SaveImage(m.outDir, s.Image)
	if err != nil {
		m.logger.Error().Err(err).Msg("ui: download failed")
		return "Download failed: " + err.Error()
	}
	m.logger.Info().Str("path", path).Msg("ui: wallpaper saved")
	return "Saved " + path
}

func (m Model) View() string {
	return Render(m.session.State(), Form{
		Input:   m.input.View(),
		Spinner: m.spinner.View(),
		Width:   m.width,
		Notice:  m.notice,
	})
}
