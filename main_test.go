package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codex-tui/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintCommands(t *testing.T) {
	var buf bytes.Buffer
	r := commands.NewRegistry(commands.New("help", "Show help"), commands.New("/clear", "Clear screen"))

	require.NoError(t, printCommands(&buf, r))
	assert.Equal(t, "/clear – Clear screen\n/help – Show help\n", buf.String())
}

func TestCommandsSubcommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"commands"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, commands.BuiltIn().Len())
	assert.Equal(t, "/clear – Clear the transcript", lines[0])
}

func TestLoadSettings_ConfigFlagAndProgramOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("program: cat\n"), 0644))

	configFlag = path
	defer func() { configFlag = "" }()

	cfg, state, err := loadSettings(rootCmd)
	require.NoError(t, err)
	assert.Equal(t, "cat", cfg.Program)
	assert.NotNil(t, state)

	require.NoError(t, rootCmd.Flags().Set("program", "echo hi"))
	cfg, _, err = loadSettings(rootCmd)
	require.NoError(t, err)
	assert.Equal(t, "echo hi", cfg.Program)

	_, err = os.Stat(filepath.Join(dir, "state.json"))
	assert.NoError(t, err)
}

func TestLoadSettings_InvalidConfigLeavesStateAlone(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("history_limit: -1\n"), 0644))

	configFlag = path
	defer func() { configFlag = "" }()

	cfg, state, err := loadSettings(rootCmd)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Nil(t, state)

	_, err = os.Stat(filepath.Join(dir, "state.json"))
	assert.True(t, os.IsNotExist(err))
}
