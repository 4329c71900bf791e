package overlay

import (
	"strings"

	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"
)

// Split a string into lines, additionally returning the size of the widest
// line.
func getLines(s string) (lines []string, widest int) {
	lines = strings.Split(s, "\n")

	for _, l := range lines {
		w := ansi.PrintableRuneWidth(l)
		if widest < w {
			widest = w
		}
	}

	return lines, widest
}

// Fit clips a rendered block to area. The result is exactly area.Height rows,
// each exactly area.Width printable cells wide. Rows past the bottom are
// dropped, over-long rows are truncated (ANSI aware) and short rows are padded
// with spaces. An empty area yields the empty string.
func Fit(s string, area Rect) string {
	if area.Empty() {
		return ""
	}

	lines, widest := getLines(s)
	if len(lines) > area.Height {
		lines = lines[:area.Height]
	}
	for len(lines) < area.Height {
		lines = append(lines, "")
	}

	for i, l := range lines {
		if widest > area.Width {
			l = truncate.String(l, uint(area.Width))
		}
		if w := ansi.PrintableRuneWidth(l); w < area.Width {
			l += strings.Repeat(" ", area.Width-w)
		}
		lines[i] = l
	}

	return strings.Join(lines, "\n")
}
