package hand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokertools/drawodds/internal/deck"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "legal hand", input: "2D 2C 5H 2H 2S"},
		{name: "too few cards", input: "2D 2C 5H 2H", wantErr: true},
		{name: "too many cards", input: "2D 2C 5H 2H 2S 3C", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards, err := deck.ParseCards(tt.input)
			require.NoError(t, err)

			_, err = New(cards)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	cards := []deck.Card{
		{Rank: deck.Two, Suit: deck.Diamonds},
		{Rank: deck.Two, Suit: deck.Diamonds},
		{Rank: deck.Five, Suit: deck.Hearts},
		{Rank: deck.Six, Suit: deck.Hearts},
		{Rank: deck.Seven, Suit: deck.Hearts},
	}
	_, err := New(cards)
	assert.Error(t, err)
}

func TestCanonicalOrder(t *testing.T) {
	h := MustNew(deck.MustParseCards("KD 2C AH 7S 5H"))
	assert.Equal(t, "2C 5H 7S KD AH", h.String())
}

func TestCanonicalOrderStable(t *testing.T) {
	// Equal ranks keep their input order: the stable sort must not
	// reorder suits within a rank.
	h := MustNew(deck.MustParseCards("2D 2C 5H 2H 2S"))
	assert.Equal(t, "2D 2C 2H 2S 5H", h.String())
}

func TestReplaceReturnsSortedCopy(t *testing.T) {
	h := MustNew(deck.MustParseCards("2C 5H 7S KD AH"))

	replaced := h.Replace(0, deck.Card{Rank: deck.Queen, Suit: deck.Clubs})
	assert.Equal(t, "5H 7S QC KD AH", replaced.String())

	// The original is untouched
	assert.Equal(t, "2C 5H 7S KD AH", h.String())
}

func TestCardSet(t *testing.T) {
	h := MustNew(deck.MustParseCards("2C 5H 7S KD AH"))
	set := h.CardSet()

	assert.True(t, set.Contains(deck.Card{Rank: deck.King, Suit: deck.Diamonds}))
	assert.False(t, set.Contains(deck.Card{Rank: deck.King, Suit: deck.Hearts}))
}
