package hand

// Improves reports whether candidate strictly outranks the fixed
// reference rank.
//
// Categories form a total order, so a candidate can only beat the
// reference by reaching the reference's own category with a better
// tie-break, or by reaching any strictly stronger category. The scan
// therefore starts at the reference's category and walks upward;
// weaker categories are never tested. That pruning is a required
// invariant, not a shortcut: it bounds every comparison at
// (StraightFlush - ref.Category + 1) category tests.
func Improves(ref Rank, candidate Hand) bool {
	// Straight and flush results are reused by the straight-flush
	// check when the scan passes through them on the way up.
	straight := 0
	flush := 0

	for cat := ref.Category; cat <= StraightFlush; cat++ {
		switch cat {
		case HighCard:
			// Only reachable when the reference itself is a high-card
			// hand: a bigger top card alone is an improvement.
			if highCard(candidate) > ref.High {
				return true
			}
		case OnePair:
			if v := kindRank(candidate, 2); v != 0 {
				if OnePair > ref.Category || v > ref.High {
					return true
				}
			}
		case TwoPair:
			if v := twoPairHigh(candidate); v != 0 {
				switch {
				case TwoPair > ref.Category:
					return true
				case v > ref.High:
					return true
				case v == ref.High && kindRank(candidate, 2) > ref.Low:
					// Higher pairs tie; the lower pair decides.
					return true
				}
			}
		case ThreeOfAKind:
			if v := kindRank(candidate, 3); v != 0 {
				if ThreeOfAKind > ref.Category || v > ref.High {
					return true
				}
			}
		case Straight:
			if straight = straightHigh(candidate); straight != 0 {
				if Straight > ref.Category || straight > ref.High {
					return true
				}
			}
		case Flush:
			if flush = flushSum(candidate); flush != 0 {
				if Flush > ref.Category || flush > ref.High {
					return true
				}
			}
		case FullHouse:
			if v := fullHouseRank(candidate); v != 0 {
				if FullHouse > ref.Category || v > ref.High {
					return true
				}
			}
		case FourOfAKind:
			if v := kindRank(candidate, 4); v != 0 {
				if FourOfAKind > ref.Category || v > ref.High {
					return true
				}
			}
		case StraightFlush:
			// The scan may have skipped the straight and flush tests
			// when the reference sits above them.
			if straight == 0 {
				straight = straightHigh(candidate)
			}
			if flush == 0 {
				flush = flushSum(candidate)
			}
			if straight != 0 && flush != 0 {
				if ref.Category != StraightFlush || straight > ref.High {
					return true
				}
			}
		}
	}

	return false
}
