package app

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

var errInterrupted = errors.New("interrupted")

// agentReplyMsg carries the output of one finished program run.
type agentReplyMsg struct {
	runID  int
	output string
	err    error
}

// runAgent runs program with the prompt appended as its last argument.
// Cancelling ctx kills the process.
func runAgent(ctx context.Context, runID int, program, prompt string) tea.Cmd {
	return func() tea.Msg {
		fields := strings.Fields(program)
		if len(fields) == 0 {
			return agentReplyMsg{runID: runID, err: errors.New("no program configured")}
		}

		cmd := exec.CommandContext(ctx, fields[0], append(fields[1:], prompt)...)
		out, err := cmd.CombinedOutput()
		if ctx.Err() != nil {
			err = errInterrupted
		}
		return agentReplyMsg{
			runID:  runID,
			output: strings.TrimRight(string(out), "\n"),
			err:    err,
		}
	}
}
