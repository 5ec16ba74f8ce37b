// Package hand implements five-card draw hand classification and the
// improvement comparison used by the replacement estimator.
//
// A Hand is always held in canonical order (ascending by rank, stable
// on suit ties) because every category test assumes it. Hands are
// values: mutation-style operations return a fresh, re-sorted Hand.
package hand

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pokertools/drawodds/internal/deck"
)

// Size is the only supported hand size.
const Size = 5

// Hand is an ordered five-card poker hand in canonical (ascending rank)
// order. Construct one with New; the zero value is not a legal hand.
type Hand [Size]deck.Card

// New builds a Hand from exactly five distinct cards. It is the only
// place the no-duplicate precondition is enforced; everything downstream
// assumes it holds.
func New(cards []deck.Card) (Hand, error) {
	if len(cards) != Size {
		return Hand{}, fmt.Errorf("hand must have exactly %d cards, got %d", Size, len(cards))
	}

	var seen deck.CardSet
	for _, c := range cards {
		if !c.Valid() {
			return Hand{}, fmt.Errorf("invalid card %s", c)
		}
		if seen.Contains(c) {
			return Hand{}, fmt.Errorf("duplicate card %s", c)
		}
		seen.Add(c)
	}

	var h Hand
	copy(h[:], cards)
	h.sortByRank()
	return h, nil
}

// MustNew builds a Hand and panics on error (for tests)
func MustNew(cards []deck.Card) Hand {
	h, err := New(cards)
	if err != nil {
		panic(err)
	}
	return h
}

// Parse parses a five-card hand line like "2D 2C 5H 2H 2S".
func Parse(line string) (Hand, error) {
	cards, err := deck.ParseCards(line)
	if err != nil {
		return Hand{}, err
	}
	return New(cards)
}

// Replace returns a new canonical Hand built from the four cards other
// than the one at pos plus the replacement card. The caller guarantees
// the replacement does not duplicate any of the kept cards.
func (h Hand) Replace(pos int, card deck.Card) Hand {
	out := h
	out[pos] = card
	out.sortByRank()
	return out
}

// CardSet returns the hand's cards as a bitset.
func (h Hand) CardSet() deck.CardSet {
	return deck.NewCardSet(h[:])
}

// String renders the hand in canonical order, space separated.
func (h Hand) String() string {
	parts := make([]string, Size)
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// sortByRank puts the hand in canonical order. The sort must be stable
// so suit ties retain their existing order.
func (h *Hand) sortByRank() {
	sort.SliceStable(h[:], func(i, j int) bool {
		return h[i].Rank < h[j].Rank
	})
}
