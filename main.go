// VocabMaster - bilingual flashcard trainer for the terminal.
// Study, list, quiz, and manage an English/Japanese card deck.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vocablab/vocabmaster/internal/app"
	"github.com/vocablab/vocabmaster/internal/engine"
	"github.com/vocablab/vocabmaster/internal/model"
	"github.com/vocablab/vocabmaster/internal/store"
	"github.com/vocablab/vocabmaster/internal/ui"
)

func main() {
	configDir, err := getConfigDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting config directory: %v\n", err)
		os.Exit(1)
	}

	config, err := app.LoadConfig(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Write the config file on first run so the settings are discoverable
	// and editable.
	if _, err := os.Stat(app.ConfigPath(configDir)); os.IsNotExist(err) {
		if err := app.SaveConfig(configDir, config); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not write config file: %v\n", err)
		}
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = configDir
	}

	// Fall back to in-memory storage when the data directory is not
	// writable, so the app still runs (without persistence).
	var kv store.KV
	fileKV, err := store.NewFileKV(dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s is not writable, changes will not be saved: %v\n", dataDir, err)
		kv = store.NewMemoryKV()
	} else {
		kv = fileKV
	}

	cards, err := store.NewCardStore(kv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing card store: %v\n", err)
		os.Exit(1)
	}
	if warn := cards.LoadWarning(); warn != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; restored the default deck\n", warn)
	}

	application := ui.NewApp(config, cards, resolveTheme(cards), engine.NewRand())

	p := tea.NewProgram(
		application,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

// resolveTheme returns the persisted theme preference, falling back to the
// terminal's background color.
func resolveTheme(cards *store.CardStore) model.Theme {
	if theme, ok := cards.LoadTheme(); ok {
		return theme
	}
	if lipgloss.HasDarkBackground() {
		return model.ThemeDark
	}
	return model.ThemeLight
}

// getConfigDir returns the VocabMaster configuration directory.
func getConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, "vocabmaster"), nil
}
