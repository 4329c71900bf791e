package keys

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestShortcutKeysHaveHelp(t *testing.T) {
	want := []struct{ key, desc string }{
		{"Enter", "send message"},
		{"Ctrl+J", "insert newline"},
		{"Up/Down", "scroll prompt history"},
		{"Esc(✕2)", "interrupt current action"},
		{"Ctrl+C", "quit Codex"},
	}

	assert.Len(t, ShortcutKeys, len(want))
	for i, name := range ShortcutKeys {
		h := GlobalkeyBindings[name].Help()
		assert.Equal(t, want[i].key, h.Key)
		assert.Equal(t, want[i].desc, h.Desc)
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		key  KeyName
		want bool
	}{
		{"esc closes modal", tea.KeyMsg{Type: tea.KeyEsc}, KeyCloseModal, true},
		{"q closes modal", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, KeyCloseModal, true},
		{"Q closes modal", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Q")}, KeyCloseModal, true},
		{"ctrl+q closes modal", tea.KeyMsg{Type: tea.KeyCtrlQ}, KeyCloseModal, true},
		{"alt+q closes modal", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q"), Alt: true}, KeyCloseModal, true},
		{"x does not close modal", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, KeyCloseModal, false},
		{"tab does not close modal", tea.KeyMsg{Type: tea.KeyTab}, KeyCloseModal, false},
		{"enter submits", tea.KeyMsg{Type: tea.KeyEnter}, KeySubmit, true},
		{"ctrl+j inserts newline", tea.KeyMsg{Type: tea.KeyCtrlJ}, KeyNewline, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, KeyQuit, true},
		{"up walks history", tea.KeyMsg{Type: tea.KeyUp}, KeyHistoryUp, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.msg, tt.key))
		})
	}
}
