package model

import (
	"strings"

	"github.com/google/uuid"
)

// Card represents a single bilingual vocabulary card.
type Card struct {
	// ID is the unique identifier for this card. Immutable once assigned.
	ID string `json:"id"`
	// FrontText is the prompt side (e.g. the English sentence).
	FrontText string `json:"english"`
	// BackText is the answer side (e.g. the Japanese translation).
	BackText string `json:"japanese"`
	// Category is a free-form label grouping related cards.
	Category string `json:"category"`
	// IsFavorite marks the card for filtered study/quiz passes.
	IsFavorite bool `json:"isFavorite"`
}

// NewCard creates a card with a generated UUID.
func NewCard(front, back, category string) *Card {
	return &Card{
		ID:        uuid.New().String(),
		FrontText: front,
		BackText:  back,
		Category:  category,
	}
}

// Side identifies one face of a card.
type Side string

const (
	SideFront Side = "front"
	SideBack  Side = "back"
)

// Text returns the text for the given side.
func (c Card) Text(side Side) string {
	if side == SideBack {
		return c.BackText
	}
	return c.FrontText
}

// Matches reports whether the card matches a search term. Front text and
// category match case-insensitively; back text matches as a raw substring
// since it is typically not in a cased script.
func (c Card) Matches(term string) bool {
	if term == "" {
		return true
	}
	lower := strings.ToLower(term)
	return strings.Contains(strings.ToLower(c.FrontText), lower) ||
		strings.Contains(c.BackText, term) ||
		strings.Contains(strings.ToLower(c.Category), lower)
}
