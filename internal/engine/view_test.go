package engine

import (
	"fmt"
	"testing"

	"github.com/vocablab/vocabmaster/internal/model"
)

// testCards builds n cards with stable IDs c1..cn.
func testCards(n int) []model.Card {
	cards := make([]model.Card, n)
	for i := range cards {
		cards[i] = model.Card{
			ID:        fmt.Sprintf("c%d", i+1),
			FrontText: fmt.Sprintf("front %d", i+1),
			BackText:  fmt.Sprintf("back %d", i+1),
			Category:  "Test",
		}
	}
	return cards
}

func TestDeriveViewIdentity(t *testing.T) {
	for _, n := range []int{1, 2, 5, 20} {
		cards := testCards(n)
		got := DeriveView(cards, ViewOptions{})
		if len(got) != n {
			t.Fatalf("n=%d: length = %d", n, len(got))
		}
		for i := range got {
			if got[i].ID != cards[i].ID {
				t.Fatalf("n=%d: order changed at %d: %s", n, i, got[i].ID)
			}
		}
	}
}

func TestDeriveViewEmpty(t *testing.T) {
	got := DeriveView(nil, ViewOptions{FavoritesOnly: true, RangeStart: 2, RangeEnd: 9, Order: []int{0}})
	if len(got) != 0 {
		t.Errorf("empty input yielded %d cards", len(got))
	}
}

func TestFilterFavorites(t *testing.T) {
	cards := testCards(4)
	cards[1].IsFavorite = true
	cards[3].IsFavorite = true

	got := Filter(cards, true)
	if len(got) != 2 || got[0].ID != "c2" || got[1].ID != "c4" {
		t.Errorf("Filter favorites = %v", got)
	}
}

func TestSliceRange(t *testing.T) {
	tests := []struct {
		name       string
		n          int
		start, end int
		wantLen    int
		wantFirst  string
	}{
		{"unset", 5, 0, 0, 5, "c1"},
		{"inner", 5, 2, 4, 3, "c2"},
		{"full", 5, 1, 5, 5, "c1"},
		{"end past len", 5, 3, 99, 3, "c3"},
		{"start past len", 5, 9, 12, 0, ""},
		{"start clamped to 1", 5, -3, 2, 2, "c1"},
		{"end clamped to start", 5, 3, 1, 1, "c3"},
		{"single", 5, 4, 4, 1, "c4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveView(testCards(tt.n), ViewOptions{RangeStart: tt.start, RangeEnd: tt.end})
			if len(got) != tt.wantLen {
				t.Fatalf("length = %d, want %d", len(got), tt.wantLen)
			}
			if tt.wantLen > 0 && got[0].ID != tt.wantFirst {
				t.Errorf("first = %s, want %s", got[0].ID, tt.wantFirst)
			}
		})
	}
}

func TestApplyOrderStalePermutationIgnored(t *testing.T) {
	cards := testCards(3)
	got := DeriveView(cards, ViewOptions{Order: []int{1, 0}}) // wrong length
	for i := range got {
		if got[i].ID != cards[i].ID {
			t.Fatalf("stale order was applied: %v", got)
		}
	}
}

func TestApplyOrder(t *testing.T) {
	cards := testCards(3)
	got := DeriveView(cards, ViewOptions{Order: []int{2, 0, 1}})
	want := []string{"c3", "c1", "c2"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("order applied wrong: got %s at %d, want %s", got[i].ID, i, id)
		}
	}
}

func TestRangeAppliesAfterOrder(t *testing.T) {
	cards := testCards(3)
	got := DeriveView(cards, ViewOptions{Order: []int{2, 0, 1}, RangeStart: 1, RangeEnd: 1})
	if len(got) != 1 || got[0].ID != "c3" {
		t.Fatalf("range over ordered view = %v", got)
	}
}
