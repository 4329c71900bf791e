package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"codex-tui/log"

	"gopkg.in/yaml.v3"
)

const (
	ConfigFileName = "config.yaml"
	configDirName  = ".codex-tui"
)

// Config represents the application configuration
type Config struct {
	// Program is run with the prompt as its last argument. Empty means
	// prompts are only recorded in the transcript.
	Program string `yaml:"program"`
	// HistoryLimit caps the number of prompts kept between sessions.
	HistoryLimit int `yaml:"history_limit"`
	// Theme colours the modal views in the bottom pane.
	Theme Theme `yaml:"theme"`
}

// Theme holds lipgloss colour strings (ANSI numbers or hex).
type Theme struct {
	ModalBackground string `yaml:"modal_background"`
	ModalForeground string `yaml:"modal_foreground"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Program:      "",
		HistoryLimit: 500,
		Theme: Theme{
			ModalBackground: "4",
			ModalForeground: "15",
		},
	}
}

// GetConfigDir returns the directory holding the config and state files.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, configDirName), nil
}

// DefaultConfigPath returns the config file location inside GetConfigDir.
func DefaultConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// LoadConfig loads the configuration from the default location, writing the
// defaults there if the file does not exist yet.
func LoadConfig() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return DefaultConfig(), err
	}
	return LoadConfigFrom(path)
}

// LoadConfigFrom loads the configuration from path. Fields missing from the
// file keep their default values.
func LoadConfigFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			defaultCfg := DefaultConfig()
			if saveErr := SaveConfigTo(path, defaultCfg); saveErr != nil {
				log.Component("config").Warn().Err(saveErr).Msg("failed to save default config")
			}
			return defaultCfg, nil
		}
		return DefaultConfig(), fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return DefaultConfig(), err
	}

	return config, nil
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	if c.HistoryLimit < 0 {
		return fmt.Errorf("history_limit must not be negative, got %d", c.HistoryLimit)
	}
	return nil
}

// SaveConfigTo writes the configuration to path, creating its directory.
func SaveConfigTo(path string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}
