// Package app provides application-level configuration and initialization.
package app

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/vocablab/vocabmaster/internal/model"
)

// Config holds the application configuration. The card collection and theme
// preference live in the data store, not here; this file covers settings
// that don't belong to the study data itself.
type Config struct {
	// DataDir overrides where the card collection is persisted.
	DataDir string `json:"data_dir,omitempty"`
	// QuizFeedbackMs overrides how long answer feedback stays visible,
	// in milliseconds. Zero means the built-in default.
	QuizFeedbackMs int `json:"quiz_feedback_ms,omitempty"`
	// Notifications configures quiz-completion notifications.
	Notifications model.NotificationConfig `json:"notifications"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// ConfigPath returns the path to the config file.
func ConfigPath(configDir string) string {
	return filepath.Join(configDir, "config.json")
}

// LoadConfig loads the configuration from disk. A missing file yields the
// defaults without error.
func LoadConfig(configDir string) (*Config, error) {
	path := ConfigPath(configDir)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig saves the configuration to disk.
func SaveConfig(configDir string, config *Config) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(ConfigPath(configDir), data, 0644)
}
