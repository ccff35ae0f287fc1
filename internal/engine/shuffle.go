// Package engine implements the deck session engine: deriving, filtering,
// ordering, and scoring views over the card collection for each mode,
// independent of how those views are rendered.
package engine

import (
	"math/rand"
	"time"

	"github.com/vocablab/vocabmaster/internal/model"
)

// NewRand returns a time-seeded random source for sessions. Tests inject a
// fixed-seed source instead.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Permute returns a uniformly random permutation of [0,n) using the
// Fisher-Yates shuffle. Every permutation of the n indices is equally
// likely given a uniform source; runs in O(n).
func Permute(r *rand.Rand, n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i >= 1; i-- {
		j := r.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	return p
}

// shuffleCards returns a new slice with the cards in freshly permuted order.
func shuffleCards(r *rand.Rand, cards []model.Card) []model.Card {
	perm := Permute(r, len(cards))
	out := make([]model.Card, len(cards))
	for i, j := range perm {
		out[i] = cards[j]
	}
	return out
}

// sampleCards returns up to k cards drawn without replacement
// (shuffle-then-take-k).
func sampleCards(r *rand.Rand, cards []model.Card, k int) []model.Card {
	shuffled := shuffleCards(r, cards)
	if len(shuffled) > k {
		shuffled = shuffled[:k]
	}
	return shuffled
}
