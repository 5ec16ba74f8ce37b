package hand

import "github.com/pokertools/drawodds/internal/deck"

// Category enumerates the nine hand categories ordered from weakest to
// strongest.
type Category int

const (
	HighCard Category = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns the display name of the category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Rank describes a classified hand: its category plus the tie-break
// keys needed to compare two hands of the same category.
//
//	HighCard      High = highest rank
//	OnePair       High = pair rank
//	TwoPair       High = higher pair rank, Low = lower pair rank
//	ThreeOfAKind  High = triple rank
//	Straight      High = top of the run (4 for the 2-3-4-5-A wheel)
//	Flush         High = sum of all five ranks
//	FullHouse     High = triple rank
//	FourOfAKind   High = quad rank
//	StraightFlush High = top of the run
//
// The flush key is a rank sum rather than highest-card-then-next. That
// is not how flushes compare in standard poker, but it is the historical
// behavior of this tool and is kept.
type Rank struct {
	Category Category
	High     int
	Low      int
}

// Classify maps a hand to its Rank. Category predicates overlap (a full
// house also contains a pair and a triple), so resolution runs strongest
// first and stops at the first match.
func Classify(h Hand) Rank {
	straight := straightHigh(h)
	flush := flushSum(h)

	if straight != 0 && flush != 0 {
		return Rank{Category: StraightFlush, High: straight}
	}
	if quad := kindRank(h, 4); quad != 0 {
		return Rank{Category: FourOfAKind, High: quad}
	}
	if boat := fullHouseRank(h); boat != 0 {
		return Rank{Category: FullHouse, High: boat}
	}
	if flush != 0 {
		return Rank{Category: Flush, High: flush}
	}
	if straight != 0 {
		return Rank{Category: Straight, High: straight}
	}
	if trips := kindRank(h, 3); trips != 0 {
		return Rank{Category: ThreeOfAKind, High: trips}
	}
	if high := twoPairHigh(h); high != 0 {
		// The pair scan runs low-to-high, so with two pairs present
		// kindRank(2) reports the lower pair.
		return Rank{Category: TwoPair, High: high, Low: kindRank(h, 2)}
	}
	if pair := kindRank(h, 2); pair != 0 {
		return Rank{Category: OnePair, High: pair}
	}
	return Rank{Category: HighCard, High: highCard(h)}
}

// flushSum returns the sum of all five ranks if every card shares a
// suit, else 0. The minimum possible sum (2+3+4+5+6) is well above 0,
// so 0 is a safe no-match sentinel.
func flushSum(h Hand) int {
	suit := h[0].Suit
	sum := 0
	for _, c := range h {
		if c.Suit != suit {
			return 0
		}
		sum += int(c.Rank)
	}
	return sum
}

// straightHigh returns the top rank of the run if the five ranks are
// contiguous, 4 for the special 2-3-4-5-A wheel, else 0.
func straightHigh(h Hand) int {
	wheel := [Size]deck.Rank{deck.Two, deck.Three, deck.Four, deck.Five, deck.Ace}
	isWheel := true
	for i, c := range h {
		if c.Rank != wheel[i] {
			isWheel = false
			break
		}
	}
	if isWheel {
		// The ace plays low here, and the wheel's tie-break is pinned
		// at 4 so any other straight outranks it.
		return int(deck.Four)
	}

	for i := 0; i < Size-1; i++ {
		if h[i].Rank+1 != h[i+1].Rank {
			return 0
		}
	}
	return int(h[Size-1].Rank)
}

// kindRank scans the sorted ranks for the first run of at least x equal
// adjacent ranks, low to high, and returns that rank (else 0). With two
// pairs present, x=2 therefore reports the lower pair, which the
// two-pair tie-break relies on.
func kindRank(h Hand, x int) int {
	run := 1
	for i := 0; i < Size-1; i++ {
		if h[i].Rank == h[i+1].Rank {
			run++
		} else {
			run = 1
		}
		if run == x {
			return int(h[i].Rank)
		}
	}
	return 0
}

// fullHouseRank returns the triple's rank when one rank appears three
// times and a different rank twice, else 0. In sorted order the hand is
// either AAABB or AABBB, so the triple sits at one end.
func fullHouseRank(h Hand) int {
	lowRun := 1
	for i := 0; i < Size-1 && h[i].Rank == h[i+1].Rank; i++ {
		lowRun++
	}
	highRun := 1
	for i := Size - 1; i > 0 && h[i].Rank == h[i-1].Rank; i-- {
		highRun++
	}

	switch {
	case lowRun == 3 && highRun == 2:
		return int(h[0].Rank)
	case lowRun == 2 && highRun == 3:
		return int(h[Size-1].Rank)
	default:
		return 0
	}
}

// twoPairHigh returns the higher pair's rank when exactly two distinct
// ranks each appear twice (the fifth card being a kicker), else 0.
func twoPairHigh(h Hand) int {
	var pairs []int
	for i := 0; i < Size-1; i++ {
		if h[i].Rank == h[i+1].Rank {
			if i+2 < Size && h[i+1].Rank == h[i+2].Rank {
				return 0 // three or more of a kind, not a pair
			}
			pairs = append(pairs, int(h[i].Rank))
			i++ // skip the second card of the pair
		}
	}
	if len(pairs) != 2 {
		return 0
	}
	// Ascending sort puts the higher pair last.
	return pairs[1]
}

// highCard returns the highest rank in the hand; always defined.
func highCard(h Hand) int {
	return int(h[Size-1].Rank)
}
