// Package cardform provides the modal card add/edit form.
package cardform

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vocablab/vocabmaster/internal/ui/styles"
)

// Field indexes into the form's inputs.
const (
	FieldFront = iota
	FieldBack
	FieldCategory
	fieldCount
)

// Model is a modal form for creating or editing a card.
type Model struct {
	title      string
	cardID     string
	inputs     []textinput.Model
	labels     []string
	focusIndex int
	width      int
	height     int
	submitted  bool
	cancelled  bool
	st         styles.Styles

	// Category suggestions, cycled with tab while the category field
	// is focused.
	categories      []string
	suggestions     []string
	suggestionIndex int
	showSuggestions bool
}

// New creates a blank form. For edits, pass the card's current values and
// its ID; a returned empty CardID means the submission creates a new card.
func New(st styles.Styles, title, cardID, front, back, category string, categories []string) Model {
	labels := []string{"Front (English)", "Back (Japanese)", "Category"}
	values := []string{front, back, category}
	placeholders := []string{"Hello", "こんにちは", "General"}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.SetValue(values[i])
		ti.CharLimit = 256
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		inputs[i] = ti
	}

	return Model{
		title:      title,
		cardID:     cardID,
		inputs:     inputs,
		labels:     labels,
		st:         st,
		categories: categories,
	}
}

// SetSize updates the dialog dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// CardID returns the ID of the card being edited, empty for a new card.
func (m Model) CardID() string { return m.cardID }

// IsSubmitted reports whether the user confirmed the form.
func (m Model) IsSubmitted() bool { return m.submitted }

// IsCancelled reports whether the user dismissed the form.
func (m Model) IsCancelled() bool { return m.cancelled }

// ResetOutcome reopens the form after a rejected submission.
func (m *Model) ResetOutcome() {
	m.submitted = false
	m.cancelled = false
}

// Values returns the front, back, and category field values.
func (m Model) Values() (front, back, category string) {
	return m.inputs[FieldFront].Value(), m.inputs[FieldBack].Value(), m.inputs[FieldCategory].Value()
}

// Update handles form input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			if m.showSuggestions && len(m.suggestions) > 0 {
				m.suggestionIndex = (m.suggestionIndex + 1) % len(m.suggestions)
				m.inputs[m.focusIndex].SetValue(m.suggestions[m.suggestionIndex])
				m.inputs[m.focusIndex].CursorEnd()
				return m, nil
			}
			return m.moveFocus(1)

		case "shift+tab":
			if m.showSuggestions && len(m.suggestions) > 0 {
				m.suggestionIndex--
				if m.suggestionIndex < 0 {
					m.suggestionIndex = len(m.suggestions) - 1
				}
				m.inputs[m.focusIndex].SetValue(m.suggestions[m.suggestionIndex])
				m.inputs[m.focusIndex].CursorEnd()
				return m, nil
			}
			return m.moveFocus(-1)

		case "down":
			return m.moveFocus(1)

		case "up":
			return m.moveFocus(-1)

		case "enter":
			m.submitted = true
			return m, nil

		case "esc":
			if m.showSuggestions {
				m.showSuggestions = false
				m.suggestions = nil
				return m, nil
			}
			m.cancelled = true
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)

	if m.focusIndex == FieldCategory {
		m.suggestions = m.matchCategories(m.inputs[FieldCategory].Value())
		m.suggestionIndex = 0
		m.showSuggestions = len(m.suggestions) > 0
	}

	return m, cmd
}

func (m Model) moveFocus(delta int) (Model, tea.Cmd) {
	m.focusIndex += delta
	if m.focusIndex >= len(m.inputs) {
		m.focusIndex = 0
	}
	if m.focusIndex < 0 {
		m.focusIndex = len(m.inputs) - 1
	}
	m.showSuggestions = false
	m.suggestions = nil

	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		if i == m.focusIndex {
			cmds[i] = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) matchCategories(input string) []string {
	if len(m.categories) == 0 {
		return nil
	}
	if input == "" {
		return m.categories
	}
	lower := strings.ToLower(input)
	var matches []string
	for _, c := range m.categories {
		if strings.HasPrefix(strings.ToLower(c), lower) {
			matches = append(matches, c)
		}
	}
	if len(matches) > 8 {
		matches = matches[:8]
	}
	return matches
}

// View renders the form centered in the available space.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.st.DialogTitle.Render(m.title))
	b.WriteString("\n\n")

	for i, input := range m.inputs {
		label := m.st.InputLabel
		if i == m.focusIndex {
			label = m.st.Title
		}
		b.WriteString(label.Render(m.labels[i]))
		b.WriteString("\n")
		b.WriteString(input.View())
		b.WriteString("\n")

		if i == m.focusIndex && m.showSuggestions {
			for j, s := range m.suggestions {
				if j == m.suggestionIndex {
					b.WriteString(m.st.Title.Render("  → " + s))
				} else {
					b.WriteString(m.st.Muted.Render("    " + s))
				}
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(m.st.Muted.Render("Enter: save • Esc: cancel • Tab: next field"))

	content := m.st.DialogBox.Render(b.String())

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}
