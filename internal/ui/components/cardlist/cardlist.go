// Package cardlist provides the scrollable card list UI component.
package cardlist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vocablab/vocabmaster/internal/engine"
	"github.com/vocablab/vocabmaster/internal/model"
	"github.com/vocablab/vocabmaster/internal/ui/styles"
	"github.com/vocablab/vocabmaster/pkg/textutil"
)

// Item is one row of the list with its derived text states.
type Item struct {
	Card       model.Card
	FrontState engine.TextState
	BackState  engine.TextState
}

// Model is the card list component.
type Model struct {
	items  []Item
	cursor int
	offset int
	width  int
	height int
	st     styles.Styles
}

// New creates a card list component.
func New(st styles.Styles) Model {
	return Model{st: st}
}

// SetStyles swaps the style set after a theme change.
func (m *Model) SetStyles(st styles.Styles) {
	m.st = st
}

// SetSize updates the component dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureVisible()
}

// SetItems replaces the list contents, keeping the cursor in bounds.
func (m *Model) SetItems(items []Item) {
	m.items = items
	if m.cursor >= len(items) {
		m.cursor = len(items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureVisible()
}

// Selected returns the card under the cursor.
func (m Model) Selected() (model.Card, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return model.Card{}, false
	}
	return m.items[m.cursor].Card, true
}

// Count returns the number of rows.
func (m Model) Count() int { return len(m.items) }

// CursorUp moves the cursor up.
func (m *Model) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
		m.ensureVisible()
	}
}

// CursorDown moves the cursor down.
func (m *Model) CursorDown() {
	if m.cursor < len(m.items)-1 {
		m.cursor++
		m.ensureVisible()
	}
}

// CursorHome jumps to the first row.
func (m *Model) CursorHome() {
	m.cursor = 0
	m.offset = 0
}

// CursorEnd jumps to the last row.
func (m *Model) CursorEnd() {
	m.cursor = len(m.items) - 1
	m.ensureVisible()
}

// HandleKey processes a navigation key. Returns false for keys it ignores.
func (m *Model) HandleKey(key string) bool {
	switch key {
	case "up", "k":
		m.CursorUp()
		return true
	case "down", "j":
		m.CursorDown()
		return true
	case "home":
		m.CursorHome()
		return true
	case "end", "G":
		m.CursorEnd()
		return true
	}
	return false
}

// ensureVisible adjusts the scroll offset to keep the cursor on screen.
func (m *Model) ensureVisible() {
	visibleRows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visibleRows {
		m.offset = m.cursor - visibleRows + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m Model) visibleRows() int {
	rows := m.height - 2
	if rows < 1 {
		rows = 1
	}
	return rows
}

// View renders the list.
func (m Model) View() string {
	if len(m.items) == 0 {
		empty := m.st.Muted.Render("No cards to show")
		hint := m.st.Muted.Render("Press 'a' to add one, or adjust the filters")
		return lipgloss.JoinVertical(lipgloss.Left, "", empty, hint)
	}

	visibleRows := m.visibleRows()
	endIdx := m.offset + visibleRows
	if endIdx > len(m.items) {
		endIdx = len(m.items)
	}

	var rows []string
	for i := m.offset; i < endIdx; i++ {
		rows = append(rows, m.renderItem(m.items[i], i == m.cursor))
	}

	if len(m.items) > visibleRows {
		rows = append(rows, m.st.Muted.Render(fmt.Sprintf(" %d/%d ", m.cursor+1, len(m.items))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderItem renders one row: favorite marker, front, back, category.
func (m Model) renderItem(item Item, selected bool) string {
	star := styles.IconStarEmpty
	starStyle := m.st.Muted
	if item.Card.IsFavorite {
		star = styles.IconStar
		starStyle = m.st.Favorite
	}

	colWidth := (m.width - 16) / 2
	if colWidth < 8 {
		colWidth = 8
	}

	front := m.renderSide(textutil.DisplayText(item.Card.FrontText), item.FrontState, colWidth)
	back := m.renderSide(textutil.DisplayText(item.Card.BackText), item.BackState, colWidth)
	category := m.st.Muted.Render(styles.TruncateWithEllipsis(item.Card.Category, 12))

	marker := "  "
	rowStyle := m.st.ListItem
	if selected {
		marker = "› "
		rowStyle = m.st.ListItemSelected
	}

	return rowStyle.Render(marker + starStyle.Render(star) + " " + front + "  " + back + "  " + category)
}

// renderSide applies the red-sheet text state to one card side.
func (m Model) renderSide(text string, state engine.TextState, width int) string {
	text = styles.TruncateWithEllipsis(text, width)
	pad := width - lipgloss.Width(text)
	if pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	switch state {
	case engine.TextMasked:
		return m.st.MaskedText.Render(text)
	case engine.TextRed:
		return m.st.RedInk.Render(text)
	default:
		return text
	}
}
