package keys

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyName int

const (
	KeySubmit KeyName = iota
	KeyNewline
	KeyHistoryUp
	KeyHistoryDown
	KeyHistory
	KeyInterrupt
	KeyQuit
	KeyCloseModal
	KeyHelp
)

// GlobalkeyBindings is a global, immutable map of KeyName to keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeySubmit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "send message"),
	),
	KeyNewline: key.NewBinding(
		key.WithKeys("ctrl+j"),
		key.WithHelp("Ctrl+J", "insert newline"),
	),
	KeyHistoryUp: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous prompt"),
	),
	KeyHistoryDown: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next prompt"),
	),
	// KeyHistory only exists for help text; matching uses the up/down bindings.
	KeyHistory: key.NewBinding(
		key.WithKeys("up", "down"),
		key.WithHelp("Up/Down", "scroll prompt history"),
	),
	KeyInterrupt: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc(✕2)", "interrupt current action"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("Ctrl+C", "quit Codex"),
	),
	KeyCloseModal: key.NewBinding(
		key.WithKeys("esc", "q", "Q", "alt+q", "alt+Q", "ctrl+q"),
		key.WithHelp("esc/q", "close"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("F1", "help"),
	),
}

// ShortcutKeys is the ordered list of bindings shown in the help modal's
// keyboard shortcut section.
var ShortcutKeys = []KeyName{KeySubmit, KeyNewline, KeyHistory, KeyInterrupt, KeyQuit}

// Matches reports whether msg triggers the named binding.
func Matches(msg tea.KeyMsg, name KeyName) bool {
	return key.Matches(msg, GlobalkeyBindings[name])
}
