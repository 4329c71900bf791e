package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"codex-tui/commands"
	"codex-tui/config"
	"codex-tui/keys"
	"codex-tui/log"
	"codex-tui/ui"
	"codex-tui/ui/overlay"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// interruptWindow is how quickly the second Esc must follow the first to
// interrupt a running program.
const interruptWindow = time.Second

// Run is the main entrypoint into the application.
func Run(ctx context.Context, cfg *config.Config, state config.StateManager) error {
	p := tea.NewProgram(newHome(ctx, cfg, state), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

type home struct {
	ctx context.Context

	cfg      *config.Config
	state    config.StateManager
	registry *commands.Registry
	theme    overlay.Theme

	// ui components
	transcript *ui.TranscriptPane
	pane       *ui.BottomPane
	menu       *ui.Menu
	errBox     *ui.ErrBox
	history    *ui.History

	// running program, if any
	runCancel context.CancelFunc
	runID     int
	lastEsc   time.Time

	now             func() time.Time
	copyToClipboard func(string) error

	windowWidth  int
	windowHeight int
	quitting     bool
}

func newHome(ctx context.Context, cfg *config.Config, state config.StateManager) *home {
	history := ui.NewHistory(cfg.HistoryLimit, state.GetPromptHistory())

	h := &home{
		ctx:      ctx,
		cfg:      cfg,
		state:    state,
		registry: commands.BuiltIn(),
		theme: overlay.Theme{
			Background: lipgloss.Color(cfg.Theme.ModalBackground),
			Foreground: lipgloss.Color(cfg.Theme.ModalForeground),
		},
		transcript:      ui.NewTranscriptPane(),
		pane:            ui.NewBottomPane(history),
		menu:            ui.NewMenu(),
		errBox:          ui.NewErrBox(),
		history:         history,
		now:             time.Now,
		copyToClipboard: clipboard.WriteAll,
	}

	seen := state.GetHelpScreensSeen()
	if seen&config.HelpScreenWelcome == 0 {
		h.showHelp()
		if err := state.SetHelpScreensSeen(seen | config.HelpScreenWelcome); err != nil {
			log.Component("app").Warn().Err(err).Msg("failed to record welcome help screen")
		}
	}

	return h
}

func (m *home) Init() tea.Cmd {
	return textarea.Blink
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case hideErrMsg:
		m.errBox.Clear()
		return m, nil
	case agentReplyMsg:
		return m.handleAgentReply(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.windowWidth, m.windowHeight = msg.Width, msg.Height
		m.pane.SetWidth(msg.Width)
		// The status line and the menu take one row each.
		m.pane.SetMaxHeight(msg.Height - 2)
		m.menu.SetWidth(msg.Width)
		m.errBox.SetWidth(msg.Width)
		return m, nil
	}
	return m, m.pane.Update(msg)
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// An open modal view gets every key until it is done.
	if m.pane.HasActiveView() {
		m.pane.HandleKey(msg)
		m.syncMenu()
		return m, nil
	}

	switch {
	case keys.Matches(msg, keys.KeyQuit):
		return m.handleQuit()
	case keys.Matches(msg, keys.KeyHelp):
		m.showHelp()
		return m, nil
	case m.running() && keys.Matches(msg, keys.KeyInterrupt):
		now := m.now()
		if !m.lastEsc.IsZero() && now.Sub(m.lastEsc) <= interruptWindow {
			m.lastEsc = time.Time{}
			m.interrupt()
			return m, nil
		}
		m.lastEsc = now
		m.errBox.SetInfo("press Esc again to interrupt")
		return m, nil
	}

	res, cmd := m.pane.HandleKey(msg)
	if !res.Submitted {
		return m, cmd
	}
	model, submitCmd := m.handleSubmit(res.Text)
	return model, tea.Batch(cmd, submitCmd)
}

func (m *home) handleSubmit(text string) (tea.Model, tea.Cmd) {
	if name, args, ok := commands.Parse(text); ok {
		return m.handleSlashCommand(name, args)
	}

	m.transcript.Append(ui.Message{Role: ui.RoleUser, Text: text})
	if m.cfg.Program == "" {
		return m, nil
	}
	if m.running() {
		return m.showErrorMessageForShortTime(errors.New("still working on the previous prompt"))
	}

	ctx, cancel := context.WithCancel(m.ctx)
	m.runCancel = cancel
	m.runID++
	m.syncMenu()
	log.Component("app").Debug().Int("run", m.runID).Str("program", m.cfg.Program).Msg("starting program")
	return m, runAgent(ctx, m.runID, m.cfg.Program, text)
}

func (m *home) handleAgentReply(msg agentReplyMsg) (tea.Model, tea.Cmd) {
	// Replies from interrupted runs arrive after the run was dropped.
	if msg.runID != m.runID || m.runCancel == nil {
		return m, nil
	}
	m.runCancel()
	m.runCancel = nil
	m.syncMenu()

	if msg.output != "" {
		m.transcript.Append(ui.Message{Role: ui.RoleAgent, Text: msg.output})
	}
	if msg.err != nil {
		log.Component("app").Warn().Err(msg.err).Int("run", msg.runID).Msg("program failed")
		return m.showErrorMessageForShortTime(fmt.Errorf("%s: %w", m.cfg.Program, msg.err))
	}
	return m, nil
}

func (m *home) running() bool {
	return m.runCancel != nil
}

// interrupt stops the running program, if any.
func (m *home) interrupt() {
	if m.runCancel == nil {
		return
	}
	m.runCancel()
	m.runCancel = nil
	m.runID++
	m.transcript.Append(ui.Message{Role: ui.RoleSystem, Text: errInterrupted.Error()})
	m.errBox.Clear()
	m.syncMenu()
}

func (m *home) syncMenu() {
	switch {
	case m.pane.HasActiveView():
		m.menu.SetState(ui.StateModal)
	case m.running():
		m.menu.SetState(ui.StateRunning)
	default:
		m.menu.SetState(ui.StateDefault)
	}
}

func (m *home) handleQuit() (tea.Model, tea.Cmd) {
	m.interrupt()
	if err := m.state.SavePromptHistory(m.history.Entries()); err != nil {
		log.Component("app").Error().Err(err).Msg("failed to save prompt history")
	}
	m.quitting = true
	return m, tea.Quit
}

// hideErrMsg implements tea.Msg and clears the error text from the screen.
type hideErrMsg struct{}

// showErrorMessageForShortTime sets the error message and returns a command
// that clears it again after a few seconds.
func (m *home) showErrorMessageForShortTime(err error) (tea.Model, tea.Cmd) {
	m.errBox.SetError(err)
	return m, func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(3 * time.Second):
		}

		return hideErrMsg{}
	}
}

func (m *home) View() string {
	if m.quitting {
		return ""
	}

	pane := m.pane.View()
	// One row each for the status line and the menu.
	height := max(m.windowHeight-lipgloss.Height(pane)-2, 0)
	m.transcript.SetSize(m.windowWidth, height)

	var rows []string
	if height > 0 {
		rows = append(rows, m.transcript.String())
	}
	rows = append(rows, m.errBox.String(), pane, m.menu.String())
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
