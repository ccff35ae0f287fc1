package engine

import (
	"math/rand"

	"github.com/vocablab/vocabmaster/internal/model"
)

// StudySession is a sequential flip-reveal pass over a deck snapshot. The
// deck is captured at session start (or on explicit reshuffle) and does not
// follow store mutations, except that favorite toggles pass through so the
// star on the visible card stays accurate.
type StudySession struct {
	deck          []model.Card
	pos           int
	revealed      bool
	reversed      bool
	favoritesOnly bool
	rng           *rand.Rand
}

// NewStudySession snapshots a deck from the collection and starts at the
// first card.
func NewStudySession(cards []model.Card, favoritesOnly bool, rng *rand.Rand) *StudySession {
	return &StudySession{
		deck:          Filter(cards, favoritesOnly),
		favoritesOnly: favoritesOnly,
		rng:           rng,
	}
}

// FavoritesOnly reports whether the deck was built from favorites alone.
func (s *StudySession) FavoritesOnly() bool { return s.favoritesOnly }

// Len returns the deck length.
func (s *StudySession) Len() int { return len(s.deck) }

// Pos returns the current zero-based position.
func (s *StudySession) Pos() int { return s.pos }

// Current returns the card under the cursor.
func (s *StudySession) Current() (model.Card, bool) {
	if s.pos < 0 || s.pos >= len(s.deck) {
		return model.Card{}, false
	}
	return s.deck[s.pos], true
}

// IsRevealed reports whether the answer side is showing.
func (s *StudySession) IsRevealed() bool { return s.revealed }

// Reversed reports whether the drill direction is back-to-front.
func (s *StudySession) Reversed() bool { return s.reversed }

// Flip toggles between the prompt and answer sides.
func (s *StudySession) Flip() { s.revealed = !s.revealed }

// Reverse toggles the drill direction.
func (s *StudySession) Reverse() { s.reversed = !s.reversed }

// PromptSide returns the side shown before flipping.
func (s *StudySession) PromptSide() model.Side {
	if s.reversed {
		return model.SideBack
	}
	return model.SideFront
}

// AnswerSide returns the side shown after flipping.
func (s *StudySession) AnswerSide() model.Side {
	if s.reversed {
		return model.SideFront
	}
	return model.SideBack
}

// Next advances to the next card, unrevealed. No-op at the last card.
func (s *StudySession) Next() bool {
	if s.pos >= len(s.deck)-1 {
		return false
	}
	s.pos++
	s.revealed = false
	return true
}

// Prev steps back to the previous card, unrevealed. No-op at the first card.
func (s *StudySession) Prev() bool {
	if s.pos <= 0 {
		return false
	}
	s.pos--
	s.revealed = false
	return true
}

// Reshuffle permutes the deck snapshot and rewinds to the first card.
func (s *StudySession) Reshuffle() {
	s.deck = shuffleCards(s.rng, s.deck)
	s.pos = 0
	s.revealed = false
}

// SetFavorite updates the favorite flag on the in-deck copy of a card.
// Favoriting never removes a card from an in-progress deck.
func (s *StudySession) SetFavorite(id string, favorite bool) {
	for i := range s.deck {
		if s.deck[i].ID == id {
			s.deck[i].IsFavorite = favorite
			return
		}
	}
}
