package deck

import (
	"fmt"
	"strings"
)

// ParseCard parses a two-character card token like "2D" or "AS".
// Ten is written "0" in the classic input format; "T" is also accepted.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("card %q: must be exactly 2 characters", s)
	}

	rank, err := parseRank(s[0])
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", s, err)
	}

	suit, err := parseSuit(s[1])
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", s, err)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a whitespace-separated list of card tokens
// (e.g., "2D 2C 5H 2H 2S"). Duplicate cards are rejected.
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	var seen CardSet

	for _, field := range fields {
		card, err := ParseCard(field)
		if err != nil {
			return nil, err
		}
		if seen.Contains(card) {
			return nil, fmt.Errorf("duplicate card %s", card)
		}
		seen.Add(card)
		cards = append(cards, card)
	}

	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards %q: %v", s, err))
	}
	return cards
}

func parseRank(c byte) (Rank, error) {
	switch c {
	case 'A', 'a':
		return Ace, nil
	case 'K', 'k':
		return King, nil
	case 'Q', 'q':
		return Queen, nil
	case 'J', 'j':
		return Jack, nil
	case '0', 'T', 't':
		return Ten, nil
	case '9':
		return Nine, nil
	case '8':
		return Eight, nil
	case '7':
		return Seven, nil
	case '6':
		return Six, nil
	case '5':
		return Five, nil
	case '4':
		return Four, nil
	case '3':
		return Three, nil
	case '2':
		return Two, nil
	default:
		return 0, fmt.Errorf("unknown rank '%c'", c)
	}
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 'C', 'c':
		return Clubs, nil
	case 'D', 'd':
		return Diamonds, nil
	case 'H', 'h':
		return Hearts, nil
	case 'S', 's':
		return Spades, nil
	default:
		return 0, fmt.Errorf("unknown suit '%c'", c)
	}
}
