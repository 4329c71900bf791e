package log

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

var logFileName = filepath.Join(os.TempDir(), "codex-tui.log")

var globalLogFile *os.File

func init() {
	// Nothing is written until Initialize is called; the TUI owns the terminal.
	zlog.Logger = zerolog.Nop()
}

// Initialize should be called once at the beginning of the program to set up logging.
// defer Close() after calling this function. Logs go to a file in the os temp
// directory.
func Initialize(debug bool) {
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		panic(fmt.Sprintf("could not open log file: %s", err))
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zlog.Logger = zerolog.New(f).Level(level).With().Timestamp().Caller().Logger()

	globalLogFile = f
}

// Component creates a new logger with a component identifier.
// Uses the "cmp" key for consistency with zerolog conventions.
func Component(name string) *zerolog.Logger {
	l := zlog.With().Str("cmp", name).Logger()
	return &l
}

// FileName is where Initialize writes logs.
func FileName() string {
	return logFileName
}

func Close() {
	if globalLogFile == nil {
		return
	}
	_ = globalLogFile.Close()
	globalLogFile = nil
	zlog.Logger = zerolog.Nop()
	fmt.Println("wrote logs to " + logFileName)
}
