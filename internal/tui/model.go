// Package tui drives a terminal.Session from a bubbletea program.
package tui

import (
	"cmp"
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/bthakur/termfolio/internal/portfolio"
	"github.com/bthakur/termfolio/internal/terminal"
)

const (
	bootDelay           = 250 * time.Millisecond
	defaultMountTimeout = 10 * time.Second
)

// refreshMsg reports a history change made outside Update.
type refreshMsg struct{}

type bootStepMsg struct{}

// Model is the bubbletea model of one terminal session.
type Model struct {
	session *terminal.Session
	events  <-chan tea.Msg
	exit    *atomic.Bool

	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model
	render   *renderer

	booted   int
	hint     string
	ready    bool
	quitting bool
}

// NewModel wraps session. events delivers refreshMsg values from the
// interpreter's background goroutines; exit is set by the exit command.
func NewModel(session *terminal.Session, events <-chan tea.Msg, exit *atomic.Bool) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "type help"
	ti.CharLimit = 256
	ti.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(mutedStyle))

	return Model{
		session:  session,
		events:   events,
		exit:     exit,
		input:    ti,
		spinner:  sp,
		viewport: viewport.New(80, 20),
		render:   newRenderer(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, waitForEvent(m.events), bootStep())
}

func waitForEvent(events <-chan tea.Msg) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		return msg
	}
}

func bootStep() tea.Cmd {
	return tea.Tick(bootDelay, func(time.Time) tea.Msg { return bootStepMsg{} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-3, 1)
		m.input.Width = max(msg.Width-len(terminal.Prompt)-16, 10)
		m.render.setWidth(msg.Width - 4)
		m.ready = true

	case bootStepMsg:
		if m.booted < len(bootSequence) {
			m.booted++
			cmds = append(cmds, bootStep())
		}

	case refreshMsg:
		cmds = append(cmds, waitForEvent(m.events))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if quit, cmd := m.handleKey(msg); quit || cmd != nil {
			if quit {
				m.quitting = true
				return m, tea.Quit
			}
			cmds = append(cmds, cmd)
		} else {
			var inputCmd tea.Cmd
			m.input, inputCmd = m.input.Update(msg)
			cmds = append(cmds, inputCmd)
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.refresh()
	return m, tea.Batch(cmds...)
}

// handleKey applies the shell's key bindings. It returns a nil command for
// keys that belong to the text input.
func (m *Model) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	history := m.session.History

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		return true, nil

	case tea.KeyEnter:
		line := m.input.Value()
		m.input.Reset()
		m.hint = ""
		m.session.Interpreter.Submit(line)
		if m.exit != nil && m.exit.Load() {
			return true, nil
		}
		m.viewport.GotoBottom()
		return false, m.spinner.Tick

	case tea.KeyUp:
		if input, ok := history.Previous(); ok {
			m.input.SetValue(input)
			m.input.CursorEnd()
		}
		return false, noop

	case tea.KeyDown:
		if input, ok := history.Next(); ok {
			m.input.SetValue(input)
			m.input.CursorEnd()
		}
		return false, noop

	case tea.KeyTab:
		m.complete()
		return false, noop

	case tea.KeyPgUp:
		m.viewport.LineUp(max(m.viewport.Height/2, 1))
		return false, noop

	case tea.KeyPgDown:
		m.viewport.LineDown(max(m.viewport.Height/2, 1))
		return false, noop
	}
	return false, nil
}

func noop() tea.Msg { return nil }

func (m *Model) complete() {
	partial := m.input.Value()
	c := m.session.Complete(partial)
	m.hint = ""

	switch c.Kind {
	case terminal.CompletionUnique:
		m.input.SetValue(c.Value)
	case terminal.CompletionMultiple:
		prefix := terminal.CommonPrefix(c.Options)
		if strings.HasPrefix(partial, "blog ") {
			prefix = "blog " + prefix
		}
		if len(prefix) > len(partial) {
			m.input.SetValue(prefix)
		}
		m.hint = strings.Join(c.Options, "  ")
	}
	m.input.CursorEnd()
}

func (m *Model) refresh() {
	atBottom := m.viewport.AtBottom()
	m.viewport.SetContent(m.content())
	if atBottom {
		m.viewport.GotoBottom()
	}
}

func (m Model) content() string {
	var b strings.Builder
	for _, line := range bootSequence[:m.booted] {
		b.WriteString(mutedStyle.Render(line))
		b.WriteString("\n")
	}
	if m.booted > 0 {
		b.WriteString("\n")
	}
	b.WriteString(m.render.history(m.session.History.Records(), m.spinner.View()))
	return b.String()
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	if m.ready {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(m.content())
	}
	b.WriteString("\n")
	b.WriteString(promptLine(m.session.Interpreter.Section()))
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.hint != "" {
		b.WriteString(mutedStyle.Render(m.hint))
	}
	return b.String()
}

// Options configures Run.
type Options struct {
	RequestTimeout time.Duration
	Logger         *zap.Logger
	AltScreen      bool
}

// Run starts an interactive session against store and blocks until the user
// exits or ctx is cancelled.
func Run(ctx context.Context, p *portfolio.Portfolio, store terminal.ContentStore, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	events := make(chan tea.Msg, 1)
	exit := &atomic.Bool{}
	session := terminal.NewSession(p, store,
		terminal.WithLogger(logger),
		terminal.WithRequestTimeout(opts.RequestTimeout),
		terminal.OnUpdate(func() {
			select {
			case events <- refreshMsg{}:
			default:
			}
		}),
		terminal.OnClose(func() { exit.Store(true) }),
	)
	defer session.Close()

	mountCtx, cancel := context.WithTimeout(ctx, cmp.Or(opts.RequestTimeout, defaultMountTimeout))
	if err := session.Mount(mountCtx); err != nil {
		logger.Warn("blog slugs unavailable for autocomplete", zap.Error(err))
	}
	cancel()

	programOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithMouseCellMotion()}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	_, err := tea.NewProgram(NewModel(session, events, exit), programOpts...).Run()
	return err
}
