// Package styles defines the visual appearance for the VocabMaster TUI.
// Two Catppuccin palettes back the theme toggle: Mocha for dark, Latte
// for light.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vocablab/vocabmaster/internal/model"
)

// Palette holds the colors one theme draws from.
type Palette struct {
	Rosewater lipgloss.Color
	Mauve     lipgloss.Color
	Red       lipgloss.Color
	Peach     lipgloss.Color
	Yellow    lipgloss.Color
	Green     lipgloss.Color
	Sapphire  lipgloss.Color
	Blue      lipgloss.Color
	Lavender  lipgloss.Color

	Text     lipgloss.Color
	Subtext  lipgloss.Color
	Overlay  lipgloss.Color
	Surface1 lipgloss.Color
	Surface0 lipgloss.Color
	Base     lipgloss.Color
	Mantle   lipgloss.Color
}

// Mocha is the dark palette (Catppuccin Mocha).
var Mocha = Palette{
	Rosewater: lipgloss.Color("#F5E0DC"),
	Mauve:     lipgloss.Color("#CBA6F7"),
	Red:       lipgloss.Color("#F38BA8"),
	Peach:     lipgloss.Color("#FAB387"),
	Yellow:    lipgloss.Color("#F9E2AF"),
	Green:     lipgloss.Color("#A6E3A1"),
	Sapphire:  lipgloss.Color("#74C7EC"),
	Blue:      lipgloss.Color("#89B4FA"),
	Lavender:  lipgloss.Color("#B4BEFE"),

	Text:     lipgloss.Color("#CDD6F4"),
	Subtext:  lipgloss.Color("#A6ADC8"),
	Overlay:  lipgloss.Color("#6C7086"),
	Surface1: lipgloss.Color("#45475A"),
	Surface0: lipgloss.Color("#313244"),
	Base:     lipgloss.Color("#1E1E2E"),
	Mantle:   lipgloss.Color("#181825"),
}

// Latte is the light palette (Catppuccin Latte).
var Latte = Palette{
	Rosewater: lipgloss.Color("#DC8A78"),
	Mauve:     lipgloss.Color("#8839EF"),
	Red:       lipgloss.Color("#D20F39"),
	Peach:     lipgloss.Color("#FE640B"),
	Yellow:    lipgloss.Color("#DF8E1D"),
	Green:     lipgloss.Color("#40A02B"),
	Sapphire:  lipgloss.Color("#209FB5"),
	Blue:      lipgloss.Color("#1E66F5"),
	Lavender:  lipgloss.Color("#7287FD"),

	Text:     lipgloss.Color("#4C4F69"),
	Subtext:  lipgloss.Color("#6C6F85"),
	Overlay:  lipgloss.Color("#9CA0B0"),
	Surface1: lipgloss.Color("#BCC0CC"),
	Surface0: lipgloss.Color("#CCD0DA"),
	Base:     lipgloss.Color("#EFF1F5"),
	Mantle:   lipgloss.Color("#E6E9EF"),
}

// PaletteFor returns the palette for a theme.
func PaletteFor(theme model.Theme) Palette {
	if theme == model.ThemeLight {
		return Latte
	}
	return Mocha
}

// Styles bundles every lipgloss style the UI renders with, built from one
// palette so a theme switch is a single rebuild.
type Styles struct {
	Palette Palette

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style

	Card        lipgloss.Style
	CardReveal  lipgloss.Style
	CardPrompt  lipgloss.Style
	CardAnswer  lipgloss.Style
	CardCounter lipgloss.Style

	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style
	ListItemDim      lipgloss.Style
	RedInk           lipgloss.Style
	MaskedText       lipgloss.Style
	Favorite         lipgloss.Style

	OptionNormal    lipgloss.Style
	OptionSelected  lipgloss.Style
	OptionCorrect   lipgloss.Style
	OptionIncorrect lipgloss.Style
	TokenUnused     lipgloss.Style
	TokenConsumed   lipgloss.Style
	TokenAssembled  lipgloss.Style

	StatusBar    lipgloss.Style
	StatusKey    lipgloss.Style
	StatusDesc   lipgloss.Style
	StatusSep    lipgloss.Style
	StatusBrand  lipgloss.Style
	ModeActive   lipgloss.Style
	ModeInactive lipgloss.Style

	DialogBox   lipgloss.Style
	DialogTitle lipgloss.Style
	InputLabel  lipgloss.Style
}

// New builds the style set for a theme.
func New(theme model.Theme) Styles {
	p := PaletteFor(theme)

	return Styles{
		Palette: p,

		Title:    lipgloss.NewStyle().Bold(true).Foreground(p.Mauve),
		Subtitle: lipgloss.NewStyle().Foreground(p.Subtext),
		Muted:    lipgloss.NewStyle().Foreground(p.Overlay),
		Error:    lipgloss.NewStyle().Foreground(p.Red).Bold(true),
		Warning:  lipgloss.NewStyle().Foreground(p.Peach),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Surface1).
			Padding(1, 4).
			Align(lipgloss.Center),
		CardReveal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Mauve).
			Padding(1, 4).
			Align(lipgloss.Center),
		CardPrompt:  lipgloss.NewStyle().Bold(true).Foreground(p.Text),
		CardAnswer:  lipgloss.NewStyle().Foreground(p.Sapphire),
		CardCounter: lipgloss.NewStyle().Foreground(p.Overlay),

		ListItem:         lipgloss.NewStyle().Foreground(p.Text).Padding(0, 1),
		ListItemSelected: lipgloss.NewStyle().Foreground(p.Text).Background(p.Surface0).Bold(true).Padding(0, 1),
		ListItemDim:      lipgloss.NewStyle().Foreground(p.Subtext).Padding(0, 1),
		RedInk:           lipgloss.NewStyle().Foreground(p.Red),
		MaskedText:       lipgloss.NewStyle().Foreground(p.Red).Background(p.Red),
		Favorite:         lipgloss.NewStyle().Foreground(p.Yellow),

		OptionNormal:    lipgloss.NewStyle().Foreground(p.Text).Padding(0, 1),
		OptionSelected:  lipgloss.NewStyle().Foreground(p.Text).Background(p.Surface0).Bold(true).Padding(0, 1),
		OptionCorrect:   lipgloss.NewStyle().Foreground(p.Green).Bold(true).Padding(0, 1),
		OptionIncorrect: lipgloss.NewStyle().Foreground(p.Red).Bold(true).Padding(0, 1),
		TokenUnused:     lipgloss.NewStyle().Foreground(p.Text).Background(p.Surface0).Padding(0, 1).MarginRight(1),
		TokenConsumed:   lipgloss.NewStyle().Foreground(p.Overlay).Padding(0, 1).MarginRight(1),
		TokenAssembled:  lipgloss.NewStyle().Foreground(p.Base).Background(p.Blue).Padding(0, 1).MarginRight(1),

		StatusBar:   lipgloss.NewStyle().Foreground(p.Subtext).Background(p.Mantle).Padding(0, 1),
		StatusKey:   lipgloss.NewStyle().Foreground(p.Sapphire).Bold(true),
		StatusDesc:  lipgloss.NewStyle().Foreground(p.Subtext),
		StatusSep:   lipgloss.NewStyle().Foreground(p.Overlay).SetString(" │ "),
		StatusBrand: lipgloss.NewStyle().Foreground(p.Mauve).Bold(true),
		ModeActive:  lipgloss.NewStyle().Foreground(p.Base).Background(p.Mauve).Bold(true).Padding(0, 1),
		ModeInactive: lipgloss.NewStyle().
			Foreground(p.Subtext).
			Padding(0, 1),

		DialogBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Mauve).
			Padding(1, 2),
		DialogTitle: lipgloss.NewStyle().Bold(true).Foreground(p.Text).MarginBottom(1),
		InputLabel:  lipgloss.NewStyle().Foreground(p.Subtext),
	}
}

// Icons
var (
	IconStar      = "★"
	IconStarEmpty = "☆"
	IconCorrect   = "✓"
	IconWrong     = "✗"
	IconShuffle   = "⤨"
)

// TruncateWithEllipsis truncates a string to maxLen with ellipsis.
func TruncateWithEllipsis(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
