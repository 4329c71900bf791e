package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscriptPane_Fallback(t *testing.T) {
	tp := NewTranscriptPane()
	tp.SetSize(80, 10)

	out := tp.String()
	assert.Len(t, strings.Split(out, "\n"), 10)
	assert.Contains(t, out, "No messages yet.")
}

func TestTranscriptPane_BottomAligned(t *testing.T) {
	tp := NewTranscriptPane()
	tp.SetSize(40, 6)
	tp.Append(Message{Role: RoleUser, Text: "hi"})

	rows := strings.Split(tp.String(), "\n")
	require.Len(t, rows, 6)
	assert.Equal(t, "you", strings.TrimSpace(rows[4]))
	assert.Equal(t, "hi", strings.TrimSpace(rows[5]))
	assert.Empty(t, rows[0])
}

func TestTranscriptPane_OldLinesScrollOff(t *testing.T) {
	tp := NewTranscriptPane()
	tp.SetSize(40, 3)
	tp.Append(Message{Role: RoleUser, Text: "first"})
	tp.Append(Message{Role: RoleAgent, Text: "second"})

	out := tp.String()
	assert.Len(t, strings.Split(out, "\n"), 3)
	assert.NotContains(t, out, "first")
	assert.Contains(t, out, "second")
}

func TestTranscriptPane_LastReply(t *testing.T) {
	tp := NewTranscriptPane()
	_, ok := tp.LastReply()
	assert.False(t, ok)

	tp.Append(Message{Role: RoleAgent, Text: "one"})
	tp.Append(Message{Role: RoleUser, Text: "two"})
	tp.Append(Message{Role: RoleSystem, Text: "three"})

	got, ok := tp.LastReply()
	assert.True(t, ok)
	assert.Equal(t, "one", got)

	tp.Clear()
	assert.Empty(t, tp.Messages())
}

func TestTranscriptPane_FallbackFitsNarrowWidth(t *testing.T) {
	tp := NewTranscriptPane()
	tp.SetSize(40, 10)

	rows := strings.Split(tp.String(), "\n")
	require.Len(t, rows, 10)
	for _, r := range rows {
		assert.LessOrEqual(t, lipgloss.Width(r), 40, "%q", r)
	}
	assert.Contains(t, tp.String(), "No messages yet.")
}
