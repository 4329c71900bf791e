package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"codex-tui/log"
)

const StateFileName = "state.json"

// Help screens tracked in State.HelpScreensSeen.
const (
	HelpScreenWelcome uint32 = 1 << iota
)

// HistoryStorage persists prompt history between sessions
type HistoryStorage interface {
	// SavePromptHistory replaces the stored prompts
	SavePromptHistory(prompts []string) error
	// GetPromptHistory returns the stored prompts, oldest first
	GetPromptHistory() []string
}

// AppState handles application-level state
type AppState interface {
	// GetHelpScreensSeen returns the bitmask of seen help screens
	GetHelpScreensSeen() uint32
	// SetHelpScreensSeen updates the bitmask of seen help screens
	SetHelpScreensSeen(seen uint32) error
}

// StateManager combines history storage and app state management
type StateManager interface {
	HistoryStorage
	AppState
}

// State represents the application state that persists between sessions
type State struct {
	// HelpScreensSeen is a bitmask tracking which help screens have been shown
	HelpScreensSeen uint32 `json:"help_screens_seen"`
	// PromptHistory holds the prompts sent from the composer
	PromptHistory []string `json:"prompt_history"`

	path string
}

// DefaultState returns the default state
func DefaultState() *State {
	return &State{
		HelpScreensSeen: 0,
		PromptHistory:   []string{},
	}
}

// LoadState loads the state from the config directory. If it cannot be done,
// we return the default state.
func LoadState() *State {
	configDir, err := GetConfigDir()
	if err != nil {
		log.Component("state").Error().Err(err).Msg("failed to get config directory")
		return DefaultState()
	}
	return LoadStateFrom(filepath.Join(configDir, StateFileName))
}

// LoadStateFrom loads the state stored at path. Later saves go to the same
// file.
func LoadStateFrom(path string) *State {
	logger := log.Component("state")

	data, err := os.ReadFile(path)
	if err != nil {
		state := DefaultState()
		state.path = path
		if errors.Is(err, os.ErrNotExist) {
			// Create and save default state if file doesn't exist
			if saveErr := state.save(); saveErr != nil {
				logger.Warn().Err(saveErr).Msg("failed to save default state")
			}
			return state
		}

		logger.Warn().Err(err).Msg("failed to read state file")
		return state
	}

	state := DefaultState()
	if err := json.Unmarshal(data, state); err != nil {
		logger.Error().Err(err).Msg("failed to parse state file")
		state = DefaultState()
	}
	state.path = path
	return state
}

func (s *State) save() error {
	if s.path == "" {
		return errors.New("state has no file path")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	return os.WriteFile(s.path, data, 0644)
}

// SavePromptHistory saves the prompt history
func (s *State) SavePromptHistory(prompts []string) error {
	s.PromptHistory = append([]string{}, prompts...)
	return s.save()
}

// GetPromptHistory returns the prompt history
func (s *State) GetPromptHistory() []string {
	return append([]string(nil), s.PromptHistory...)
}

// GetHelpScreensSeen returns the bitmask of seen help screens
func (s *State) GetHelpScreensSeen() uint32 {
	return s.HelpScreensSeen
}

// SetHelpScreensSeen updates the bitmask of seen help screens
func (s *State) SetHelpScreensSeen(seen uint32) error {
	s.HelpScreensSeen = seen
	return s.save()
}
