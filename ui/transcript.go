package ui

import (
	"strings"

	"codex-tui/ui/overlay"

	"github.com/charmbracelet/lipgloss"
)

const fallBackText = `No messages yet.
Type a prompt and press Enter, or /help to see what you can do.`

var (
	transcriptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"})
	userLabelStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#36CFC9"))
	agentLabelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	systemLabelStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#7F7A7A"))
)

type Role int

const (
	RoleUser Role = iota
	RoleAgent
	RoleSystem
)

func (r Role) label() string {
	switch r {
	case RoleUser:
		return userLabelStyle.Render("you")
	case RoleAgent:
		return agentLabelStyle.Render("codex")
	default:
		return systemLabelStyle.Render("system")
	}
}

// Message is one entry in the conversation.
type Message struct {
	Role Role
	Text string
}

// TranscriptPane shows the conversation above the bottom pane. The newest
// lines stay at the bottom; older lines scroll off the top.
type TranscriptPane struct {
	width  int
	height int

	messages []Message
}

func NewTranscriptPane() *TranscriptPane {
	return &TranscriptPane{}
}

func (t *TranscriptPane) SetSize(width, height int) {
	t.width = width
	t.height = height
}

func (t *TranscriptPane) Append(m Message) {
	t.messages = append(t.messages, m)
}

func (t *TranscriptPane) Clear() {
	t.messages = nil
}

func (t *TranscriptPane) Messages() []Message {
	return append([]Message(nil), t.messages...)
}

// LastReply returns the text of the newest agent message.
func (t *TranscriptPane) LastReply() (string, bool) {
	for i := len(t.messages) - 1; i >= 0; i-- {
		if t.messages[i].Role == RoleAgent {
			return t.messages[i].Text, true
		}
	}
	return "", false
}

// String renders the transcript as exactly height rows.
func (t *TranscriptPane) String() string {
	if t.width <= 0 || t.height <= 0 {
		return strings.Repeat("\n", max(t.height-1, 0))
	}
	if len(t.messages) == 0 {
		style := transcriptStyle.Align(lipgloss.Center)
		if lipgloss.Width(fallBackText) > t.width {
			style = style.Width(t.width)
		}
		banner := lipgloss.Place(t.width, t.height, lipgloss.Center, lipgloss.Center, style.Render(fallBackText))
		return overlay.Fit(banner, overlay.Rect{Width: t.width, Height: t.height})
	}

	var lines []string
	for i, m := range t.messages {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, m.Role.label())
		body := transcriptStyle.Width(t.width).Render(m.Text)
		lines = append(lines, strings.Split(body, "\n")...)
	}

	if len(lines) > t.height {
		lines = lines[len(lines)-t.height:]
	} else {
		lines = append(make([]string, t.height-len(lines)), lines...)
	}
	return strings.Join(lines, "\n")
}
