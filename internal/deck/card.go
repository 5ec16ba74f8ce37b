package deck

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the single-character suit code used in the input format
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// Rank represents a card rank. Aces are high (14) everywhere except
// inside the low straight 2-3-4-5-A, which the classifier handles itself.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the single-character rank code. Ten is "0", matching
// the line-oriented input alphabet rather than the usual "T".
func (r Rank) String() string {
	switch r {
	case Ten:
		return "0"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		if r >= Two && r <= Nine {
			return fmt.Sprintf("%d", int(r))
		}
		return "?"
	}
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the two-character card code (e.g., "AS", "0H")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Valid reports whether the card has a legal rank and suit
func (c Card) Valid() bool {
	return c.Rank >= Two && c.Rank <= Ace && c.Suit >= Clubs && c.Suit <= Spades
}

// AllCards returns the full 52-card deck in suit-major order
func AllCards() []Card {
	cards := make([]Card, 0, 52)
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}
