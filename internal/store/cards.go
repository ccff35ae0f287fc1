package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/vocablab/vocabmaster/internal/model"
)

// CardStore is the authoritative ordered collection of cards. Every mutation
// is written through to the KV store under KeyCards; consumers re-derive
// views on demand (pull model), the store pushes no notifications.
type CardStore struct {
	mu    sync.RWMutex
	kv    KV
	cards []model.Card

	loadWarning error
}

// CardFields holds optional replacement values for Update. Nil fields are
// left untouched; the card ID is never replaceable.
type CardFields struct {
	FrontText *string
	BackText  *string
	Category  *string
}

// NewCardStore loads the collection from kv, falling back to the default
// seed set when the persisted value is missing or fails validation.
func NewCardStore(kv KV) (*CardStore, error) {
	s := &CardStore{kv: kv}

	data, err := kv.Get(KeyCards)
	switch {
	case errors.Is(err, ErrNotFound):
		s.cards = model.DefaultCards()
		if err := s.save(); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		cards, loadErr := decodeCards(data)
		if loadErr != nil {
			// Recoverable: discard and reseed rather than fail startup.
			s.loadWarning = loadErr
			s.cards = model.DefaultCards()
			if err := s.save(); err != nil {
				return nil, err
			}
		} else {
			s.cards = cards
		}
	}

	return s, nil
}

// decodeCards validates the persisted collection: it must be a non-empty
// array whose first card has non-blank front text.
func decodeCards(data []byte) ([]model.Card, error) {
	var cards []model.Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: empty collection", ErrCorruptData)
	}
	if strings.TrimSpace(cards[0].FrontText) == "" {
		return nil, fmt.Errorf("%w: first card has blank front text", ErrCorruptData)
	}
	return cards, nil
}

// LoadWarning reports the recoverable load failure, if any, that caused the
// store to fall back to the default seed set.
func (s *CardStore) LoadWarning() error {
	return s.loadWarning
}

// save writes the collection to the KV store. Caller must hold the lock.
func (s *CardStore) save() error {
	data, err := json.MarshalIndent(s.cards, "", "  ")
	if err != nil {
		return err
	}
	return s.kv.Set(KeyCards, data)
}

// List returns a copy of the collection in store order.
func (s *CardStore) List() []model.Card {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Card, len(s.cards))
	copy(result, s.cards)
	return result
}

// Len returns the number of cards in the collection.
func (s *CardStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cards)
}

// Get retrieves a card by ID.
func (s *CardStore) Get(id string) (*model.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.cards {
		if s.cards[i].ID == id {
			c := s.cards[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

// Add creates a new card and prepends it (most-recent-first).
func (s *CardStore) Add(front, back, category string) (*model.Card, error) {
	if strings.TrimSpace(front) == "" || strings.TrimSpace(back) == "" {
		return nil, fmt.Errorf("%w: front and back text are required", ErrValidation)
	}
	if strings.TrimSpace(category) == "" {
		category = "General"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	card := model.NewCard(front, back, category)
	s.cards = append([]model.Card{*card}, s.cards...)
	if err := s.save(); err != nil {
		return nil, err
	}
	return card, nil
}

// Update replaces the provided fields of an existing card.
func (s *CardStore) Update(id string, fields CardFields) error {
	if fields.FrontText != nil && strings.TrimSpace(*fields.FrontText) == "" {
		return fmt.Errorf("%w: front text is required", ErrValidation)
	}
	if fields.BackText != nil && strings.TrimSpace(*fields.BackText) == "" {
		return fmt.Errorf("%w: back text is required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cards {
		if s.cards[i].ID != id {
			continue
		}
		if fields.FrontText != nil {
			s.cards[i].FrontText = *fields.FrontText
		}
		if fields.BackText != nil {
			s.cards[i].BackText = *fields.BackText
		}
		if fields.Category != nil {
			s.cards[i].Category = *fields.Category
		}
		return s.save()
	}
	return ErrNotFound
}

// Remove deletes a card by ID.
func (s *CardStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cards {
		if s.cards[i].ID == id {
			s.cards = append(s.cards[:i], s.cards[i+1:]...)
			return s.save()
		}
	}
	return ErrNotFound
}

// ToggleFavorite flips the favorite flag of a card.
func (s *CardStore) ToggleFavorite(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cards {
		if s.cards[i].ID == id {
			s.cards[i].IsFavorite = !s.cards[i].IsFavorite
			return s.save()
		}
	}
	return ErrNotFound
}

// ResetToDefaults replaces the entire collection with the seed set.
func (s *CardStore) ResetToDefaults() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cards = model.DefaultCards()
	return s.save()
}

// LoadTheme returns the persisted theme preference, if present.
func (s *CardStore) LoadTheme() (model.Theme, bool) {
	data, err := s.kv.Get(KeyTheme)
	if err != nil {
		return "", false
	}
	switch t := model.Theme(strings.TrimSpace(string(data))); t {
	case model.ThemeDark, model.ThemeLight:
		return t, true
	}
	return "", false
}

// SaveTheme persists the theme preference.
func (s *CardStore) SaveTheme(t model.Theme) error {
	return s.kv.Set(KeyTheme, []byte(t))
}
