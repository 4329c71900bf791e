package overlay

import (
	"fmt"
	"sort"
	"strings"

	"codex-tui/commands"
	"codex-tui/keys"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const helpModalTitle = "Press esc or q to close"

// rowText keeps a body row on a single line so its measured width matches
// what gets drawn between the borders.
var rowText = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ", "\t", "    ")

// CommandSource supplies the slash commands listed by the help modal.
type CommandSource interface {
	Commands() map[string]commands.SlashCommand
}

// Theme is the colour pair applied to a modal's border, title and body.
type Theme struct {
	Background lipgloss.TerminalColor
	Foreground lipgloss.TerminalColor
}

// DefaultTheme is white text on blue.
var DefaultTheme = Theme{
	Background: lipgloss.Color("4"),
	Foreground: lipgloss.Color("15"),
}

// HelpModalView lists the slash commands and keyboard shortcuts inside the
// bottom pane. It closes on esc, q or Q.
type HelpModalView struct {
	source   CommandSource
	theme    Theme
	complete bool
}

// NewHelpModalView creates an active help modal reading its commands from
// source on every render.
func NewHelpModalView(source CommandSource, theme Theme) *HelpModalView {
	return &HelpModalView{
		source: source,
		theme:  theme,
	}
}

func (h *HelpModalView) HandleKeyEvent(msg tea.KeyMsg) {
	if keys.Matches(msg, keys.KeyCloseModal) {
		h.complete = true
	}
}

func (h *HelpModalView) IsComplete() bool {
	return h.complete
}

// CalculateRequiredHeight counts the commands plus the title, the blank line,
// the slash-command heading and one extra row. The shortcut block is not
// counted and gets clipped when the pane allocates exactly this height.
func (h *HelpModalView) CalculateRequiredHeight(_ Rect) int {
	return len(h.source.Commands()) + 4
}

// helpLine is one row of the modal body.
type helpLine struct {
	text    string
	heading bool
}

func (h *HelpModalView) lines() []helpLine {
	lines := []helpLine{
		{text: "Available commands", heading: true},
		{},
		{text: "Slash-commands", heading: true},
	}

	cmds := h.source.Commands()
	entries := make([][2]string, 0, len(cmds))
	for _, c := range cmds {
		entries = append(entries, [2]string{"/" + strings.TrimPrefix(c.Name(), "/"), c.Description()})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i][0] != entries[j][0] {
			return entries[i][0] < entries[j][0]
		}
		return entries[i][1] < entries[j][1]
	})
	for _, e := range entries {
		lines = append(lines, helpLine{text: fmt.Sprintf("%s – %s", e[0], e[1])})
	}

	lines = append(lines, helpLine{}, helpLine{text: "Keyboard shortcuts", heading: true})
	for _, name := range keys.ShortcutKeys {
		help := keys.GlobalkeyBindings[name].Help()
		lines = append(lines, helpLine{text: fmt.Sprintf("%s – %s", help.Key, help.Desc)})
	}
	return lines
}

func (h *HelpModalView) Render(area Rect) string {
	if area.Empty() {
		return ""
	}

	style := lipgloss.NewStyle().
		Background(h.theme.Background).
		Foreground(h.theme.Foreground)
	bold := style.Bold(true)

	border := lipgloss.RoundedBorder()
	inner := max(area.Width-2, 0)

	title := runewidth.Truncate(helpModalTitle, inner, "")
	rows := make([]string, 0, area.Height)
	rows = append(rows, style.Render(
		border.TopLeft+title+strings.Repeat(border.Top, inner-runewidth.StringWidth(title))+border.TopRight,
	))

	body := h.lines()
	for i := 0; i < area.Height-2; i++ {
		var l helpLine
		if i < len(body) {
			l = body[i]
		}
		text := runewidth.Truncate(rowText.Replace(l.text), inner, "")
		pad := strings.Repeat(" ", inner-runewidth.StringWidth(text))
		if l.heading {
			rows = append(rows, style.Render(border.Left)+bold.Render(text)+style.Render(pad+border.Right))
		} else {
			rows = append(rows, style.Render(border.Left+text+pad+border.Right))
		}
	}

	if area.Height > 1 {
		rows = append(rows, style.Render(
			border.BottomLeft+strings.Repeat(border.Bottom, inner)+border.BottomRight,
		))
	}

	return Fit(strings.Join(rows, "\n"), area)
}
