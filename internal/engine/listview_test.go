package engine

import (
	"math/rand"
	"testing"

	"github.com/vocablab/vocabmaster/internal/model"
)

func TestListViewDefaults(t *testing.T) {
	v := NewListView(rand.New(rand.NewSource(1)))
	if v.OcclusionTarget() != model.SideBack {
		t.Errorf("default occlusion target = %s, want back", v.OcclusionTarget())
	}
	if v.RedTextEnabled() || v.RedSheetActive() || v.Shuffled() || v.FavoritesOnly() {
		t.Error("fresh view should have all toggles off")
	}
	if s, e := v.Range(); s != 0 || e != 0 {
		t.Errorf("default range = %d,%d", s, e)
	}
}

func TestListViewShuffleStability(t *testing.T) {
	v := NewListView(rand.New(rand.NewSource(2)))
	all := testCards(20)
	v.ToggleShuffle(all)
	if !v.Shuffled() {
		t.Fatal("shuffle not enabled")
	}

	first := v.Cards(all)
	second := v.Cards(all)
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatal("shuffled order changed between reads")
		}
	}

	v.ToggleShuffle(all)
	got := v.Cards(all)
	for i := range got {
		if got[i].ID != all[i].ID {
			t.Fatal("disabling shuffle did not restore store order")
		}
	}
}

func TestListViewRefreshRegeneratesOnSizeChange(t *testing.T) {
	v := NewListView(rand.New(rand.NewSource(3)))
	all := testCards(10)
	v.ToggleShuffle(all)

	// Same size: order stays put.
	before := v.Cards(all)
	v.Refresh(all)
	after := v.Cards(all)
	for i := range before {
		if before[i].ID != after[i].ID {
			t.Fatal("refresh with unchanged size regenerated the order")
		}
	}

	// A card was removed: the stale permutation must not survive.
	shrunk := all[:9]
	v.Refresh(shrunk)
	got := v.Cards(shrunk)
	if len(got) != 9 {
		t.Fatalf("view length = %d, want 9", len(got))
	}
}

func TestListViewRangeClamping(t *testing.T) {
	v := NewListView(rand.New(rand.NewSource(4)))

	v.SetRange(-2, 3)
	if s, e := v.Range(); s != 1 || e != 3 {
		t.Errorf("range = %d,%d, want 1,3", s, e)
	}
	v.SetRange(5, 2)
	if s, e := v.Range(); s != 5 || e != 5 {
		t.Errorf("range = %d,%d, want 5,5", s, e)
	}
	v.SetRange(0, 0)
	if s, e := v.Range(); s != 0 || e != 0 {
		t.Errorf("range = %d,%d, want unset", s, e)
	}
}

func TestListViewRevealRequiresRedSheet(t *testing.T) {
	v := NewListView(rand.New(rand.NewSource(5)))

	v.ToggleReveal("c1")
	if v.IsRevealed("c1") {
		t.Error("reveal with the sheet up should be a no-op")
	}

	v.SetRedSheet(true)
	v.ToggleReveal("c1")
	if !v.IsRevealed("c1") {
		t.Error("reveal with the sheet down did not register")
	}
	v.ToggleReveal("c1")
	if v.IsRevealed("c1") {
		t.Error("second toggle did not hide the card again")
	}
}

func TestListViewSheetDeactivationClearsReveals(t *testing.T) {
	v := NewListView(rand.New(rand.NewSource(6)))
	v.SetRedSheet(true)
	v.ToggleReveal("c1")
	v.ToggleReveal("c2")

	v.SetRedSheet(false)
	v.SetRedSheet(true)
	if v.IsRevealed("c1") || v.IsRevealed("c2") {
		t.Error("reveals survived a sheet deactivation")
	}
}

func TestListViewTextState(t *testing.T) {
	card := testCards(1)[0]
	tests := []struct {
		name     string
		redText  bool
		redSheet bool
		revealed bool
		side     model.Side
		want     TextState
	}{
		{"plain back", false, false, false, model.SideBack, TextNormal},
		{"front never occluded", true, true, false, model.SideFront, TextNormal},
		{"red ink only", true, false, false, model.SideBack, TextRed},
		{"sheet masks", true, true, false, model.SideBack, TextMasked},
		{"peeked shows red", true, true, true, model.SideBack, TextRed},
		{"sheet without red ink", false, true, false, model.SideBack, TextNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewListView(rand.New(rand.NewSource(7)))
			if tt.redText {
				v.ToggleRedText()
			}
			v.SetRedSheet(tt.redSheet)
			if tt.revealed {
				v.ToggleReveal(card.ID)
			}
			if got := v.TextState(card, tt.side); got != tt.want {
				t.Errorf("TextState = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestListViewOcclusionTargetSwitch(t *testing.T) {
	card := testCards(1)[0]
	v := NewListView(rand.New(rand.NewSource(8)))
	v.ToggleRedText()
	v.ToggleOcclusionTarget()

	if v.OcclusionTarget() != model.SideFront {
		t.Fatalf("target = %s, want front", v.OcclusionTarget())
	}
	if got := v.TextState(card, model.SideFront); got != TextRed {
		t.Errorf("front state = %v, want red", got)
	}
	if got := v.TextState(card, model.SideBack); got != TextNormal {
		t.Errorf("back state = %v, want normal", got)
	}
}

func TestListViewFavoritesFilterRegeneratesOrder(t *testing.T) {
	all := testCards(10)
	for i := 0; i < 4; i++ {
		all[i].IsFavorite = true
	}
	v := NewListView(rand.New(rand.NewSource(9)))
	v.ToggleShuffle(all)
	v.SetFavoritesOnly(true, all)

	got := v.Cards(all)
	if len(got) != 4 {
		t.Fatalf("view length = %d, want 4 favorites", len(got))
	}
	for _, c := range got {
		if !c.IsFavorite {
			t.Fatalf("non-favorite %s leaked into the filtered view", c.ID)
		}
	}
}
