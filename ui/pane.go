package ui

import (
	"strings"

	"codex-tui/keys"
	"codex-tui/ui/overlay"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// maxComposerRows caps how tall the composer grows with multi-line input.
const maxComposerRows = 6

var composerStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("62"))

// InputResult is what the bottom pane reports back after a key press.
type InputResult struct {
	// Submitted is true when the user sent the composer's text.
	Submitted bool
	Text      string
}

// BottomPane is the input area at the bottom of the screen. It shows the
// composer, or the topmost modal view when one is open. Modal views receive
// every key press until they report completion, then they are dropped.
type BottomPane struct {
	composer textarea.Model
	views    []overlay.ModalView
	history  *History

	width int
	// maxHeight caps the rows the pane may draw; zero means no cap.
	maxHeight int
}

func NewBottomPane(history *History) *BottomPane {
	ta := textarea.New()
	ta.Placeholder = "Ask anything, or type /help"
	ta.ShowLineNumbers = false
	ta.Prompt = "› "
	ta.CharLimit = 0
	ta.KeyMap.InsertNewline = keys.GlobalkeyBindings[keys.KeyNewline]
	ta.Focus()

	p := &BottomPane{
		composer: ta,
		history:  history,
	}
	p.resizeComposer()
	return p
}

// PushView opens v on top of any views already open.
func (p *BottomPane) PushView(v overlay.ModalView) {
	p.views = append(p.views, v)
}

// ActiveView returns the view receiving keys, or nil.
func (p *BottomPane) ActiveView() overlay.ModalView {
	if len(p.views) == 0 {
		return nil
	}
	return p.views[len(p.views)-1]
}

func (p *BottomPane) HasActiveView() bool {
	return len(p.views) > 0
}

// dropCompleted removes finished views from the top of the stack.
func (p *BottomPane) dropCompleted() {
	for len(p.views) > 0 && p.views[len(p.views)-1].IsComplete() {
		p.views[len(p.views)-1] = nil
		p.views = p.views[:len(p.views)-1]
	}
}

func (p *BottomPane) SetWidth(width int) {
	p.width = width
	p.resizeComposer()
}

// SetMaxHeight limits the pane to the rows left over by the rest of the
// screen.
func (p *BottomPane) SetMaxHeight(height int) {
	p.maxHeight = max(height, 0)
	p.resizeComposer()
}

func (p *BottomPane) resizeComposer() {
	if p.width > 2 {
		p.composer.SetWidth(p.width - 2)
	}
	limit := maxComposerRows
	if p.maxHeight > 0 {
		limit = min(limit, p.maxHeight-2)
	}
	rows := min(max(p.composer.LineCount(), 1), max(limit, 1))
	p.composer.SetHeight(rows)
}

// RequiredHeight is the number of rows the pane asks for. View draws at most
// the max height set with SetMaxHeight.
func (p *BottomPane) RequiredHeight() int {
	if v := p.ActiveView(); v != nil {
		return v.CalculateRequiredHeight(overlay.Rect{Width: p.width})
	}
	return p.composer.Height() + 2
}

// HandleKey routes a key press to the active view, or to the composer when no
// view is open.
func (p *BottomPane) HandleKey(msg tea.KeyMsg) (InputResult, tea.Cmd) {
	if v := p.ActiveView(); v != nil {
		v.HandleKeyEvent(msg)
		p.dropCompleted()
		return InputResult{}, nil
	}

	switch {
	case keys.Matches(msg, keys.KeySubmit):
		text := strings.TrimSpace(p.composer.Value())
		if text == "" {
			return InputResult{}, nil
		}
		p.history.Add(text)
		p.composer.Reset()
		p.resizeComposer()
		return InputResult{Submitted: true, Text: text}, nil
	case keys.Matches(msg, keys.KeyHistoryUp) && p.composer.Line() == 0:
		if entry, ok := p.history.Prev(p.composer.Value()); ok {
			p.setComposer(entry)
		}
		return InputResult{}, nil
	case keys.Matches(msg, keys.KeyHistoryDown) && p.history.Browsing() &&
		p.composer.Line() == p.composer.LineCount()-1:
		if entry, ok := p.history.Next(); ok {
			p.setComposer(entry)
		}
		return InputResult{}, nil
	}

	var cmd tea.Cmd
	p.composer, cmd = p.composer.Update(msg)
	p.resizeComposer()
	return InputResult{}, cmd
}

func (p *BottomPane) setComposer(text string) {
	p.composer.SetValue(text)
	p.composer.CursorEnd()
	p.resizeComposer()
}

// Value returns the composer's current text.
func (p *BottomPane) Value() string {
	return p.composer.Value()
}

// ResetComposer clears the composer and stops history browsing.
func (p *BottomPane) ResetComposer() {
	p.composer.Reset()
	p.history.Reset()
	p.resizeComposer()
}

func (p *BottomPane) View() string {
	height := p.RequiredHeight()
	if p.maxHeight > 0 {
		height = min(height, p.maxHeight)
	}
	area := overlay.Rect{Width: p.width, Height: height}

	if v := p.ActiveView(); v != nil {
		return overlay.Fit(v.Render(area), area)
	}
	style := composerStyle
	if p.width > 2 {
		style = style.Width(p.width - 2)
	}
	out := style.Render(p.composer.View())
	if !area.Empty() && lipgloss.Height(out) > area.Height {
		out = overlay.Fit(out, area)
	}
	return out
}

// Update forwards non-key messages, such as cursor blinks, to the composer.
func (p *BottomPane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.composer, cmd = p.composer.Update(msg)
	return cmd
}
