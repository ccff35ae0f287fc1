// Package keys defines keyboard shortcuts for the VocabMaster TUI.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Actions
	Enter    key.Binding
	Back     key.Binding
	Add      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Favorite key.Binding
	Search   key.Binding
	Help     key.Binding
	Quit     key.Binding

	// Modes
	StudyMode  key.Binding
	ListMode   key.Binding
	QuizMode   key.Binding
	ManageMode key.Binding

	// Study
	Flip      key.Binding
	Reverse   key.Binding
	Shuffle   key.Binding
	Favorites key.Binding

	// List / red sheet
	RedText  key.Binding
	RedSheet key.Binding
	Target   key.Binding
	Reveal   key.Binding
	Range    key.Binding

	// Theme
	Theme key.Binding
}

// DefaultKeyMap returns the default keyboard shortcuts.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add card"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "favorite"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		StudyMode: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "study"),
		),
		ListMode: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "list"),
		),
		QuizMode: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "quiz"),
		),
		ManageMode: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "manage"),
		),
		Flip: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "flip"),
		),
		Reverse: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reverse sides"),
		),
		Shuffle: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "shuffle"),
		),
		Favorites: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "favorites only"),
		),
		RedText: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "red text"),
		),
		RedSheet: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "red sheet"),
		),
		Target: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "switch side"),
		),
		Reveal: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "peek"),
		),
		Range: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "range"),
		),
		Theme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "theme"),
		),
	}
}

// ShortHelp returns short help text for the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.StudyMode,
		k.ListMode,
		k.QuizMode,
		k.ManageMode,
		k.Help,
		k.Quit,
	}
}

// FullHelp returns complete help text.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Flip, k.Reverse, k.Shuffle, k.Favorites},
		{k.Add, k.Edit, k.Delete, k.Favorite, k.Search},
		{k.RedText, k.RedSheet, k.Target, k.Reveal, k.Range},
		{k.Theme, k.Help, k.Quit},
	}
}
