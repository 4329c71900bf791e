package overlay

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Rect is a region of the terminal measured in cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether nothing can be drawn in r.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// ModalView is an overlay that owns the keyboard and a region of the bottom
// pane until it reports completion. The pane asks for the required height,
// renders the view into a region of that size every frame, and forwards key
// presses. Once IsComplete returns true the pane drops the view.
type ModalView interface {
	// HandleKeyEvent consumes a key press. It never fails.
	HandleKeyEvent(msg tea.KeyMsg)
	// IsComplete reports whether the view should be removed.
	IsComplete() bool
	// CalculateRequiredHeight returns the number of rows the view wants.
	CalculateRequiredHeight(area Rect) int
	// Render draws the view into area. It must not change the view's state.
	Render(area Rect) string
}
