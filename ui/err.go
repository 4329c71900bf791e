package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// ErrBox is the one-line status shown between the transcript and the bottom
// pane. It holds either an error or an informational message.
type ErrBox struct {
	width       int
	err         error
	infoMessage string
}

var errStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#FF0000",
	Dark:  "#FF0000",
})

var infoStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#008000",
	Dark:  "#00FF00",
})

func NewErrBox() *ErrBox {
	return &ErrBox{}
}

func (e *ErrBox) SetError(err error) {
	e.err = err
	e.infoMessage = ""
}

func (e *ErrBox) SetInfo(message string) {
	e.infoMessage = message
	e.err = nil
}

func (e *ErrBox) Clear() {
	e.err = nil
	e.infoMessage = ""
}

func (e *ErrBox) SetWidth(width int) {
	e.width = width
}

func (e *ErrBox) String() string {
	var text string
	style := infoStyle
	switch {
	case e.err != nil:
		text = e.err.Error()
		style = errStyle
	case e.infoMessage != "":
		text = e.infoMessage
	}

	text = strings.Join(strings.Split(text, "\n"), "//")
	if e.width > 3 {
		text = truncate.StringWithTail(text, uint(e.width), "...")
	}
	return lipgloss.PlaceHorizontal(e.width, lipgloss.Center, style.Render(text))
}
