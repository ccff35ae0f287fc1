package engine

import (
	"math/rand"

	"github.com/vocablab/vocabmaster/internal/model"
)

// TextState is the derived rendering policy for one card side in the list.
type TextState int

const (
	// TextNormal renders the side as ordinary text.
	TextNormal TextState = iota
	// TextRed renders the side in the red-sheet ink color.
	TextRed
	// TextMasked hides the side until it is revealed.
	TextMasked
)

// ListView tracks the list mode's filter, range, order, and red-sheet
// occlusion state. The shuffle permutation is generated once per
// shuffle-toggle or filter-change event so repeated reads are stable.
type ListView struct {
	favoritesOnly bool
	rangeStart    int
	rangeEnd      int
	shuffled      bool
	order         []int

	occlusionTarget model.Side
	redText         bool
	redSheet        bool
	revealed        map[string]struct{}

	rng *rand.Rand
}

// NewListView creates a list view that masks the back side by default.
func NewListView(rng *rand.Rand) *ListView {
	return &ListView{
		occlusionTarget: model.SideBack,
		revealed:        make(map[string]struct{}),
		rng:             rng,
	}
}

// Cards derives the current view of the collection.
func (v *ListView) Cards(all []model.Card) []model.Card {
	return DeriveView(all, ViewOptions{
		FavoritesOnly: v.favoritesOnly,
		Order:         v.order,
		RangeStart:    v.rangeStart,
		RangeEnd:      v.rangeEnd,
	})
}

// FavoritesOnly reports the favorites filter state.
func (v *ListView) FavoritesOnly() bool { return v.favoritesOnly }

// SetFavoritesOnly updates the filter and regenerates the shuffle order for
// the new filtered length.
func (v *ListView) SetFavoritesOnly(on bool, all []model.Card) {
	v.favoritesOnly = on
	v.regenOrder(all)
}

// Shuffled reports whether a shuffle order is applied.
func (v *ListView) Shuffled() bool { return v.shuffled }

// ToggleShuffle switches between store order and a fresh random order.
func (v *ListView) ToggleShuffle(all []model.Card) {
	v.shuffled = !v.shuffled
	v.regenOrder(all)
}

// Refresh regenerates the shuffle order after the underlying collection
// changed size (card added or removed).
func (v *ListView) Refresh(all []model.Card) {
	if v.shuffled && len(v.order) != len(Filter(all, v.favoritesOnly)) {
		v.regenOrder(all)
	}
}

func (v *ListView) regenOrder(all []model.Card) {
	if !v.shuffled {
		v.order = nil
		return
	}
	v.order = Permute(v.rng, len(Filter(all, v.favoritesOnly)))
}

// Range returns the configured 1-based inclusive slice bounds (0,0 = all).
func (v *ListView) Range() (int, int) { return v.rangeStart, v.rangeEnd }

// SetRange configures the slice bounds, clamped so start ≥ 1 and
// end ≥ start. Passing 0,0 disables slicing.
func (v *ListView) SetRange(start, end int) {
	if start <= 0 && end <= 0 {
		v.rangeStart, v.rangeEnd = 0, 0
		return
	}
	if start < 1 {
		start = 1
	}
	if end < start {
		end = start
	}
	v.rangeStart, v.rangeEnd = start, end
}

// OcclusionTarget returns which side the red sheet covers.
func (v *ListView) OcclusionTarget() model.Side { return v.occlusionTarget }

// SetOcclusionTarget selects which side the red sheet covers.
func (v *ListView) SetOcclusionTarget(side model.Side) { v.occlusionTarget = side }

// ToggleOcclusionTarget switches the covered side.
func (v *ListView) ToggleOcclusionTarget() {
	if v.occlusionTarget == model.SideBack {
		v.occlusionTarget = model.SideFront
	} else {
		v.occlusionTarget = model.SideBack
	}
}

// RedTextEnabled reports whether red-ink styling is on.
func (v *ListView) RedTextEnabled() bool { return v.redText }

// ToggleRedText flips red-ink styling for the occlusion target side.
func (v *ListView) ToggleRedText() { v.redText = !v.redText }

// RedSheetActive reports whether the red sheet is down.
func (v *ListView) RedSheetActive() bool { return v.redSheet }

// SetRedSheet activates or deactivates the red sheet. Deactivation clears
// all reveals so a later reactivation starts with nothing revealed.
func (v *ListView) SetRedSheet(active bool) {
	if v.redSheet == active {
		return
	}
	v.redSheet = active
	if !active {
		v.revealed = make(map[string]struct{})
	}
}

// ToggleRedSheet flips the red sheet.
func (v *ListView) ToggleRedSheet() { v.SetRedSheet(!v.redSheet) }

// ToggleReveal flips whether the card's masked side is peeked. No-op while
// the red sheet is inactive.
func (v *ListView) ToggleReveal(id string) {
	if !v.redSheet {
		return
	}
	if _, ok := v.revealed[id]; ok {
		delete(v.revealed, id)
	} else {
		v.revealed[id] = struct{}{}
	}
}

// IsRevealed reports whether the card has been peeked.
func (v *ListView) IsRevealed(id string) bool {
	_, ok := v.revealed[id]
	return ok
}

// TextState derives the rendering policy for one side of a card: normal
// unless the side is the occlusion target with red ink enabled; masked when
// the red sheet is additionally down and the card has not been peeked.
func (v *ListView) TextState(c model.Card, side model.Side) TextState {
	if side != v.occlusionTarget || !v.redText {
		return TextNormal
	}
	if v.redSheet && !v.IsRevealed(c.ID) {
		return TextMasked
	}
	return TextRed
}
