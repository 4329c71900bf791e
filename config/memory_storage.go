package config

import (
	"sync"
)

// MemoryStorage implements StateManager in memory for testing
type MemoryStorage struct {
	mu              sync.Mutex
	promptHistory   []string
	helpScreensSeen uint32
}

// SavePromptHistory saves the prompt history
func (m *MemoryStorage) SavePromptHistory(prompts []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.promptHistory = append([]string{}, prompts...)
	return nil
}

// GetPromptHistory returns the prompt history
func (m *MemoryStorage) GetPromptHistory() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.promptHistory...)
}

// GetHelpScreensSeen returns the bitmask of seen help screens
func (m *MemoryStorage) GetHelpScreensSeen() uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.helpScreensSeen
}

// SetHelpScreensSeen updates the bitmask of seen help screens
func (m *MemoryStorage) SetHelpScreensSeen(seen uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.helpScreensSeen = seen
	return nil
}
