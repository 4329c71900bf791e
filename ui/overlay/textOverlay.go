package overlay

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextOverlay shows a block of text in the bottom pane until any key is
// pressed.
type TextOverlay struct {
	// Whether the overlay has been dismissed
	Dismissed bool
	// Callback function to be called when the overlay is dismissed
	OnDismiss func()
	// Content to display in the overlay
	content string
}

// NewTextOverlay creates a new text overlay with the given content
func NewTextOverlay(content string) *TextOverlay {
	return &TextOverlay{
		Dismissed: false,
		content:   content,
	}
}

func (t *TextOverlay) HandleKeyEvent(msg tea.KeyMsg) {
	if t.Dismissed {
		return
	}
	// Close on any key
	t.Dismissed = true
	if t.OnDismiss != nil {
		t.OnDismiss()
	}
}

func (t *TextOverlay) IsComplete() bool {
	return t.Dismissed
}

func (t *TextOverlay) CalculateRequiredHeight(area Rect) int {
	return lipgloss.Height(t.render(area.Width))
}

func (t *TextOverlay) Render(area Rect) string {
	if area.Empty() {
		return ""
	}
	return Fit(t.render(area.Width), area)
}

func (t *TextOverlay) render(width int) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1)
	// Width excludes the border.
	if width > 2 {
		style = style.Width(width - 2)
	}
	return style.Render(t.content)
}
