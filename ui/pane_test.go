package ui

import (
	"os"
	"strings"
	"testing"

	"codex-tui/commands"
	"codex-tui/ui/overlay"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(p *BottomPane, s string) {
	for _, r := range s {
		p.HandleKey(runes(string(r)))
	}
}

func newTestPane() *BottomPane {
	p := NewBottomPane(NewHistory(10, nil))
	p.SetWidth(60)
	return p
}

func TestBottomPane_HelpViewOwnsKeysUntilClosed(t *testing.T) {
	p := newTestPane()
	reg := commands.BuiltIn()
	p.PushView(overlay.NewHelpModalView(reg, overlay.DefaultTheme))

	require.True(t, p.HasActiveView())
	assert.Equal(t, reg.Len()+4, p.RequiredHeight())

	view := p.View()
	assert.Len(t, strings.Split(view, "\n"), reg.Len()+4)
	assert.Contains(t, view, "Press esc or q to close")

	// Keys go to the modal, not the composer.
	res, _ := p.HandleKey(runes("x"))
	assert.False(t, res.Submitted)
	assert.True(t, p.HasActiveView())
	assert.Empty(t, p.Value())

	p.HandleKey(tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, p.HasActiveView())

	p.HandleKey(runes("q"))
	assert.False(t, p.HasActiveView())
	assert.Nil(t, p.ActiveView())
	assert.Equal(t, 3, p.RequiredHeight())
}

func TestBottomPane_StackedViews(t *testing.T) {
	p := newTestPane()
	help := overlay.NewHelpModalView(commands.BuiltIn(), overlay.DefaultTheme)
	text := overlay.NewTextOverlay("status")

	p.PushView(help)
	p.PushView(text)
	assert.Same(t, text, p.ActiveView())

	p.HandleKey(runes("x"))
	assert.Same(t, help, p.ActiveView())

	p.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, p.HasActiveView())
}

func TestBottomPane_SubmitAndHistory(t *testing.T) {
	p := newTestPane()

	res, _ := p.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, res.Submitted, "empty composer does not submit")

	typeText(p, "hello")
	assert.Equal(t, "hello", p.Value())

	res, _ = p.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, res.Submitted)
	assert.Equal(t, "hello", res.Text)
	assert.Empty(t, p.Value())

	typeText(p, "draft")
	p.HandleKey(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "hello", p.Value())

	p.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "draft", p.Value())
}

func TestBottomPane_CtrlJInsertsNewline(t *testing.T) {
	p := newTestPane()

	typeText(p, "a")
	p.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlJ})
	typeText(p, "b")

	assert.Equal(t, "a\nb", p.Value())
	assert.Equal(t, 4, p.RequiredHeight())

	res, _ := p.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, res.Submitted)
	assert.Equal(t, "a\nb", res.Text)
	assert.Equal(t, 3, p.RequiredHeight())
}

func TestBottomPane_ResetComposer(t *testing.T) {
	p := newTestPane()
	typeText(p, "something")
	p.ResetComposer()
	assert.Empty(t, p.Value())
}

func TestBottomPane_MaxHeightClipsModal(t *testing.T) {
	p := newTestPane()
	p.SetMaxHeight(6)
	p.PushView(overlay.NewHelpModalView(commands.BuiltIn(), overlay.DefaultTheme))

	// The modal still asks for its full height but draws within the cap.
	assert.Equal(t, commands.BuiltIn().Len()+4, p.RequiredHeight())

	rows := strings.Split(p.View(), "\n")
	require.Len(t, rows, 6)
	assert.True(t, strings.HasPrefix(rows[0], "╭Press esc or q to close"))
	assert.True(t, strings.HasPrefix(rows[5], "╰"))
}

func TestBottomPane_MaxHeightLimitsComposer(t *testing.T) {
	p := newTestPane()
	p.SetMaxHeight(4)

	typeText(p, "a")
	for _, line := range []string{"b", "c", "d"} {
		p.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlJ})
		typeText(p, line)
	}

	assert.Equal(t, "a\nb\nc\nd", p.Value())
	assert.Equal(t, 4, p.RequiredHeight())
	assert.Len(t, strings.Split(p.View(), "\n"), 4)

	p.SetMaxHeight(0)
	assert.Equal(t, 6, p.RequiredHeight())
}
