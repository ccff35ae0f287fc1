// Package statusbar provides the status bar UI component.
package statusbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vocablab/vocabmaster/internal/ui/styles"
)

// Hint is one key/description pair shown in the help area.
type Hint struct {
	Key  string
	Desc string
}

// Model is the status bar component.
type Model struct {
	width   int
	message string
	isError bool
	mode    string
	hints   []Hint
	st      styles.Styles
}

// New creates a status bar component.
func New(st styles.Styles) Model {
	return Model{st: st}
}

// SetStyles swaps the style set after a theme change.
func (m *Model) SetStyles(st styles.Styles) {
	m.st = st
}

// SetWidth updates the status bar width.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// SetMessage sets a temporary message.
func (m *Model) SetMessage(msg string, isError bool) {
	m.message = msg
	m.isError = isError
}

// ClearMessage clears the temporary message.
func (m *Model) ClearMessage() {
	m.message = ""
	m.isError = false
}

// SetMode sets the current mode label.
func (m *Model) SetMode(mode string) {
	m.mode = strings.ToUpper(strings.TrimSpace(mode))
}

// SetHints replaces the contextual key hints.
func (m *Model) SetHints(hints []Hint) {
	m.hints = hints
}

// View renders the status bar.
func (m Model) View() string {
	brand := m.st.StatusBrand.Render(" VocabMaster ")

	modeBadge := ""
	if m.mode != "" {
		modeBadge = m.st.ModeActive.Render(m.mode)
	}

	helpItems := make([]string, 0, len(m.hints))
	for _, h := range m.hints {
		helpItems = append(helpItems, m.st.StatusKey.Render(h.Key)+m.st.StatusDesc.Render(":"+h.Desc))
	}
	help := strings.Join(helpItems, " ")

	var msgArea string
	if m.message != "" {
		msgStyle := m.st.StatusDesc
		if m.isError {
			msgStyle = m.st.Error
		}
		msgArea = msgStyle.Render(" " + m.message + " ")
	}

	left := brand + modeBadge
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(help)
	middleWidth := lipgloss.Width(msgArea)

	padding := m.width - leftWidth - rightWidth - middleWidth
	if padding < 0 {
		padding = 0
	}
	leftPad := padding / 2
	rightPad := padding - leftPad

	content := left +
		strings.Repeat(" ", leftPad) +
		msgArea +
		strings.Repeat(" ", rightPad) +
		help

	return lipgloss.NewStyle().
		Background(m.st.Palette.Mantle).
		Foreground(m.st.Palette.Subtext).
		Width(m.width).
		Render(content)
}
