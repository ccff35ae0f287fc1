package engine

import "github.com/vocablab/vocabmaster/internal/model"

// ViewOptions configures DeriveView.
type ViewOptions struct {
	// FavoritesOnly keeps only favorited cards.
	FavoritesOnly bool
	// Order is a previously generated permutation applied to the filtered
	// sequence. Nil (or a stale permutation of the wrong length) keeps the
	// store order. Generated once per shuffle-toggle/filter-change event so
	// repeated reads are stable.
	Order []int
	// RangeStart and RangeEnd select a 1-based inclusive slice of the
	// (possibly shuffled) sequence. Zero values disable slicing.
	RangeStart int
	RangeEnd   int
}

// Filter returns a copy of cards, keeping only favorites when requested.
func Filter(cards []model.Card, favoritesOnly bool) []model.Card {
	out := make([]model.Card, 0, len(cards))
	for _, c := range cards {
		if favoritesOnly && !c.IsFavorite {
			continue
		}
		out = append(out, c)
	}
	return out
}

// DeriveView derives the filtered, ordered, range-sliced view of the
// collection for the Study and List modes. An empty input yields an empty
// view regardless of range or order; it never fails.
func DeriveView(cards []model.Card, opts ViewOptions) []model.Card {
	view := Filter(cards, opts.FavoritesOnly)
	view = applyOrder(view, opts.Order)
	return sliceRange(view, opts.RangeStart, opts.RangeEnd)
}

func applyOrder(cards []model.Card, order []int) []model.Card {
	if order == nil || len(order) != len(cards) {
		return cards
	}
	out := make([]model.Card, len(cards))
	for i, j := range order {
		out[i] = cards[j]
	}
	return out
}

// sliceRange returns the 1-based inclusive slice [start, end]. Bounds are
// clamped, never rejected: start is raised to 1, end is raised to start,
// and out-of-bounds indices yield a shorter or empty result.
func sliceRange(cards []model.Card, start, end int) []model.Card {
	if start == 0 && end == 0 {
		return cards
	}
	if start < 1 {
		start = 1
	}
	if end < start {
		end = start
	}
	if start > len(cards) {
		return cards[:0]
	}
	if end > len(cards) {
		end = len(cards)
	}
	return cards[start-1 : end]
}
