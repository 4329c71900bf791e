package app

import (
	"errors"
	"fmt"
	"strings"

	"codex-tui/commands"
	"codex-tui/log"
	"codex-tui/ui/overlay"

	tea "github.com/charmbracelet/bubbletea"
)

// showHelp opens the help modal in the bottom pane.
func (m *home) showHelp() {
	m.pane.PushView(overlay.NewHelpModalView(m.registry, m.theme))
	m.syncMenu()
}

// showStatus opens a text overlay describing the session settings.
func (m *home) showStatus() {
	program := m.cfg.Program
	if program == "" {
		program = "(none, prompts are only recorded)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "program:  %s\n", program)
	fmt.Fprintf(&b, "history:  %d of %d prompts\n", m.history.Len(), m.cfg.HistoryLimit)
	fmt.Fprintf(&b, "messages: %d\n", len(m.transcript.Messages()))
	fmt.Fprintf(&b, "logs:     %s\n", log.FileName())
	b.WriteString("\npress any key to close")

	m.pane.PushView(overlay.NewTextOverlay(b.String()))
	m.syncMenu()
}

func (m *home) handleSlashCommand(name, args string) (tea.Model, tea.Cmd) {
	cmd, ok := m.registry.Lookup(name)
	if !ok {
		return m.showErrorMessageForShortTime(fmt.Errorf("unknown command /%s", name))
	}
	log.Component("app").Debug().Str("command", cmd.Name()).Str("args", args).Msg("slash command")

	switch strings.TrimPrefix(cmd.Name(), "/") {
	case commands.CmdHelp:
		m.showHelp()
	case commands.CmdStatus:
		m.showStatus()
	case commands.CmdNew:
		m.interrupt()
		m.transcript.Clear()
		m.pane.ResetComposer()
		m.errBox.SetInfo("started a new chat")
	case commands.CmdClear:
		m.transcript.Clear()
	case commands.CmdCopy:
		reply, ok := m.transcript.LastReply()
		if !ok {
			return m.showErrorMessageForShortTime(errors.New("nothing to copy yet"))
		}
		if err := m.copyToClipboard(reply); err != nil {
			return m.showErrorMessageForShortTime(fmt.Errorf("failed to copy to clipboard: %w", err))
		}
		m.errBox.SetInfo("copied last reply to the clipboard")
	case commands.CmdQuit:
		return m.handleQuit()
	}
	return m, nil
}
