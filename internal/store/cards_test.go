package store

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/vocablab/vocabmaster/internal/model"
)

func newTestStore(t *testing.T) (*CardStore, *MemoryKV) {
	t.Helper()
	kv := NewMemoryKV()
	s, err := NewCardStore(kv)
	if err != nil {
		t.Fatal(err)
	}
	return s, kv
}

func persistedCards(t *testing.T, kv KV) []model.Card {
	t.Helper()
	data, err := kv.Get(KeyCards)
	if err != nil {
		t.Fatal(err)
	}
	var cards []model.Card
	if err := json.Unmarshal(data, &cards); err != nil {
		t.Fatal(err)
	}
	return cards
}

func TestNewCardStoreSeedsEmptyKV(t *testing.T) {
	s, kv := newTestStore(t)

	if s.Len() == 0 {
		t.Fatal("fresh store is empty, want seed data")
	}
	if s.LoadWarning() != nil {
		t.Errorf("seeding an empty KV is not a load failure: %v", s.LoadWarning())
	}
	if got := persistedCards(t, kv); len(got) != s.Len() {
		t.Errorf("persisted %d cards, store has %d", len(got), s.Len())
	}
}

func TestNewCardStoreLoadsPersisted(t *testing.T) {
	kv := NewMemoryKV()
	cards := []model.Card{
		{ID: "a", FrontText: "Hello", BackText: "こんにちは", Category: "Greetings"},
		{ID: "b", FrontText: "Thanks", BackText: "ありがとう", Category: "Greetings", IsFavorite: true},
	}
	data, _ := json.Marshal(cards)
	if err := kv.Set(KeyCards, data); err != nil {
		t.Fatal(err)
	}

	s, err := NewCardStore(kv)
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 2 {
		t.Fatalf("loaded %d cards, want 2", s.Len())
	}
	got, err := s.Get("b")
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsFavorite || got.BackText != "ありがとう" {
		t.Errorf("card b = %+v", got)
	}
}

func TestNewCardStoreCorruptDataFallsBack(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "{nope"},
		{"wrong shape", `{"cards": []}`},
		{"empty array", `[]`},
		{"blank first front", `[{"id":"x","english":"   ","japanese":"y","category":"z"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := NewMemoryKV()
			if err := kv.Set(KeyCards, []byte(tt.data)); err != nil {
				t.Fatal(err)
			}
			s, err := NewCardStore(kv)
			if err != nil {
				t.Fatalf("corrupt data should reseed, not fail: %v", err)
			}
			if !errors.Is(s.LoadWarning(), ErrCorruptData) {
				t.Errorf("LoadWarning = %v, want ErrCorruptData", s.LoadWarning())
			}
			if s.Len() == 0 {
				t.Error("store not reseeded")
			}
			// The reseeded collection overwrites the corrupt value.
			if got := persistedCards(t, kv); len(got) != s.Len() {
				t.Errorf("persisted %d cards after reseed, store has %d", len(got), s.Len())
			}
		})
	}
}

func TestAddPrependsAndPersists(t *testing.T) {
	s, kv := newTestStore(t)
	before := s.Len()

	card, err := s.Add("Good morning", "おはよう", "")
	if err != nil {
		t.Fatal(err)
	}
	if card.ID == "" {
		t.Error("new card has no ID")
	}
	if card.Category != "General" {
		t.Errorf("blank category = %q, want General", card.Category)
	}
	if s.Len() != before+1 {
		t.Errorf("len = %d, want %d", s.Len(), before+1)
	}
	if got := s.List(); got[0].ID != card.ID {
		t.Error("new card was not prepended")
	}
	if got := persistedCards(t, kv); got[0].ID != card.ID {
		t.Error("prepend not persisted")
	}
}

func TestAddValidation(t *testing.T) {
	s, _ := newTestStore(t)
	before := s.Len()

	if _, err := s.Add("  ", "back", "c"); !errors.Is(err, ErrValidation) {
		t.Errorf("blank front: err = %v, want ErrValidation", err)
	}
	if _, err := s.Add("front", "\t", "c"); !errors.Is(err, ErrValidation) {
		t.Errorf("blank back: err = %v, want ErrValidation", err)
	}
	if s.Len() != before {
		t.Error("rejected add mutated the store")
	}
}

func TestUpdatePartialFields(t *testing.T) {
	s, _ := newTestStore(t)
	card, err := s.Add("front", "back", "Verbs")
	if err != nil {
		t.Fatal(err)
	}

	newBack := "updated"
	if err := s.Update(card.ID, CardFields{BackText: &newBack}); err != nil {
		t.Fatal(err)
	}
	got, err := s.Get(card.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.BackText != "updated" || got.FrontText != "front" || got.Category != "Verbs" {
		t.Errorf("partial update touched other fields: %+v", got)
	}

	blank := " "
	if err := s.Update(card.ID, CardFields{FrontText: &blank}); !errors.Is(err, ErrValidation) {
		t.Errorf("blank front update: err = %v, want ErrValidation", err)
	}
	if err := s.Update("missing", CardFields{BackText: &newBack}); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown id: err = %v, want ErrNotFound", err)
	}
}

func TestRemove(t *testing.T) {
	s, _ := newTestStore(t)
	card, err := s.Add("front", "back", "")
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Remove(card.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get(card.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after remove: err = %v, want ErrNotFound", err)
	}
	if err := s.Remove(card.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("double remove: err = %v, want ErrNotFound", err)
	}
}

func TestToggleFavoriteIsSelfInverse(t *testing.T) {
	s, _ := newTestStore(t)
	id := s.List()[0].ID

	if err := s.ToggleFavorite(id); err != nil {
		t.Fatal(err)
	}
	got, _ := s.Get(id)
	if !got.IsFavorite {
		t.Fatal("first toggle did not favorite")
	}
	if err := s.ToggleFavorite(id); err != nil {
		t.Fatal(err)
	}
	got, _ = s.Get(id)
	if got.IsFavorite {
		t.Error("second toggle did not unfavorite")
	}
	if err := s.ToggleFavorite("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown id: err = %v, want ErrNotFound", err)
	}
}

func TestResetToDefaults(t *testing.T) {
	s, kv := newTestStore(t)
	seedLen := s.Len()

	if _, err := s.Add("extra", "card", ""); err != nil {
		t.Fatal(err)
	}
	if err := s.ToggleFavorite(s.List()[1].ID); err != nil {
		t.Fatal(err)
	}

	if err := s.ResetToDefaults(); err != nil {
		t.Fatal(err)
	}
	if s.Len() != seedLen {
		t.Errorf("len after reset = %d, want %d", s.Len(), seedLen)
	}
	for _, c := range s.List() {
		if c.IsFavorite {
			t.Fatal("favorites survived a reset")
		}
	}
	if got := persistedCards(t, kv); len(got) != seedLen {
		t.Error("reset not persisted")
	}
}

func TestListReturnsCopy(t *testing.T) {
	s, _ := newTestStore(t)

	list := s.List()
	list[0].FrontText = "mutated"
	got, _ := s.Get(list[0].ID)
	if got.FrontText == "mutated" {
		t.Error("List exposed internal state")
	}
}

func TestThemeRoundTrip(t *testing.T) {
	s, kv := newTestStore(t)

	if _, ok := s.LoadTheme(); ok {
		t.Fatal("theme present before any save")
	}
	if err := s.SaveTheme(model.ThemeLight); err != nil {
		t.Fatal(err)
	}
	got, ok := s.LoadTheme()
	if !ok || got != model.ThemeLight {
		t.Errorf("LoadTheme = %v,%v", got, ok)
	}

	// Unknown persisted value is treated as absent.
	if err := kv.Set(KeyTheme, []byte("sepia")); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.LoadTheme(); ok {
		t.Error("invalid theme value should read as absent")
	}
}

func TestFileKV(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := kv.Get("absent"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing key: err = %v, want ErrNotFound", err)
	}
	if err := kv.Set("k", []byte("v")); err != nil {
		t.Fatal(err)
	}
	got, err := kv.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "v" {
		t.Errorf("Get = %q, want v", got)
	}
}
