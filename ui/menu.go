package ui

import (
	"strings"

	"codex-tui/keys"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

var keyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#655F5F",
	Dark:  "#7F7A7A",
})

var descStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#7A7474",
	Dark:  "#9C9494",
})

var sepStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#DDDADA",
	Dark:  "#3C3C3C",
})

var separator = " • "

// MenuState represents different states the menu can be in
type MenuState int

const (
	StateDefault MenuState = iota
	// StateModal is shown while a modal view owns the bottom pane.
	StateModal
	// StateRunning is shown while the agent program is working.
	StateRunning
)

// Menu is the one-line key hint under the bottom pane.
type Menu struct {
	options []keys.KeyName
	width   int
	state   MenuState
}

var defaultMenuOptions = []keys.KeyName{keys.KeySubmit, keys.KeyNewline, keys.KeyHistory, keys.KeyHelp, keys.KeyQuit}
var modalMenuOptions = []keys.KeyName{keys.KeyCloseModal}
var runningMenuOptions = []keys.KeyName{keys.KeyInterrupt, keys.KeyQuit}

func NewMenu() *Menu {
	return &Menu{
		options: defaultMenuOptions,
		state:   StateDefault,
	}
}

// SetState updates the menu state and options accordingly
func (m *Menu) SetState(state MenuState) {
	m.state = state
	switch state {
	case StateModal:
		m.options = modalMenuOptions
	case StateRunning:
		m.options = runningMenuOptions
	default:
		m.options = defaultMenuOptions
	}
}

func (m *Menu) State() MenuState {
	return m.state
}

func (m *Menu) SetWidth(width int) {
	m.width = width
}

func (m *Menu) String() string {
	var s strings.Builder
	for i, k := range m.options {
		help := keys.GlobalkeyBindings[k].Help()
		s.WriteString(keyStyle.Render(help.Key))
		s.WriteString(" ")
		s.WriteString(descStyle.Render(help.Desc))
		if i != len(m.options)-1 {
			s.WriteString(sepStyle.Render(separator))
		}
	}
	line := s.String()
	if m.width > 3 {
		line = truncate.StringWithTail(line, uint(m.width), "...")
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Left, line)
}
