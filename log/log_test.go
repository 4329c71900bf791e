package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeWritesComponentLogs(t *testing.T) {
	old := logFileName
	logFileName = filepath.Join(t.TempDir(), "test.log")
	defer func() { logFileName = old }()

	Initialize(true)
	Component("pane").Debug().Str("view", "help").Msg("pushed view")
	Close()

	data, err := os.ReadFile(logFileName)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"cmp":"pane"`)
	assert.Contains(t, string(data), `"message":"pushed view"`)
}

func TestComponentBeforeInitializeIsSilent(t *testing.T) {
	// Must not panic or write anywhere.
	Component("test").Info().Msg("dropped")
}
