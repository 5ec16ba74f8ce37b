// Package estimator computes, for each card in a five-card hand, the
// empirical probability that discarding it and drawing a random legal
// replacement improves the hand's category rank.
package estimator

import (
	"fmt"
	rand "math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/pokertools/drawodds/internal/deck"
	"github.com/pokertools/drawodds/internal/hand"
	"github.com/pokertools/drawodds/internal/randutil"
)

// DefaultSamples is the fixed number of trials per card position. The
// estimate is purely empirical: there is no convergence check or
// adaptive stopping, the constant just has to be large enough that the
// percentages are stable to one decimal place.
const DefaultSamples = 750000

// parallelThreshold is the sample count below which worker fan-out
// costs more than it saves.
const parallelThreshold = 10000

// Estimator runs the per-position replacement sampling.
type Estimator struct {
	// Samples is the number of trials per card position.
	Samples int
	// Workers is the number of goroutines the trials for one position
	// are split across. 1 runs everything on the calling goroutine.
	Workers int
}

// New returns an Estimator with the given sample count (DefaultSamples
// if samples <= 0) and one worker per CPU (capped at 8, matching where
// the fan-out stops paying off).
func New(samples, workers int) *Estimator {
	if samples <= 0 {
		samples = DefaultSamples
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers > 8 {
			workers = 8
		}
	}
	return &Estimator{Samples: samples, Workers: workers}
}

// Result holds one estimation run: the classified rank of the input
// hand and the improvement probability (0-100) for replacing each card,
// indexed by the card's position in the original input order.
type Result struct {
	Reference     hand.Rank
	Probabilities [hand.Size]float64
}

// Estimate computes replacement probabilities for the given cards. The
// cards must form a legal five-card hand; the slice order is the order
// the probabilities are reported in. The reference rank is classified
// once and held fixed across every position and trial.
func (e *Estimator) Estimate(cards []deck.Card, rng *rand.Rand) (Result, error) {
	h, err := hand.New(cards)
	if err != nil {
		return Result{}, fmt.Errorf("estimate: %w", err)
	}

	res := Result{Reference: hand.Classify(h)}

	// Every draw must avoid the four kept cards and the discarded card
	// itself, so the exclusion set is the same for all five positions:
	// 47 of the 52 possible draws are legal.
	excluded := h.CardSet()

	// Canonical sorting reorders the hand, so each input position is
	// located in the sorted hand by card identity (rank and suit),
	// never by index.
	for pos, card := range cards {
		improvements := e.countImprovements(h, slotOf(h, card), excluded, res.Reference, rng)
		res.Probabilities[pos] = 100 * float64(improvements) / float64(e.Samples)
	}

	return res, nil
}

// slotOf returns the canonical-order index of the given card.
func slotOf(h hand.Hand, card deck.Card) int {
	for i, c := range h {
		if c == card {
			return i
		}
	}
	// Unreachable: h was built from the cards the caller iterates.
	panic(fmt.Sprintf("card %s not in hand %s", card, h))
}

// countImprovements runs e.Samples trials for one position, splitting
// them across workers when the sample count justifies it. Workers get
// independent RNG streams derived from rng up front, so a seeded run
// is reproducible regardless of scheduling; the final sum does not
// depend on completion order.
func (e *Estimator) countImprovements(h hand.Hand, slot int, excluded deck.CardSet, ref hand.Rank, rng *rand.Rand) int {
	if e.Workers <= 1 || e.Samples < parallelThreshold {
		return runTrials(h, slot, excluded, ref, e.Samples, rng)
	}

	perWorker := e.Samples / e.Workers
	remainder := e.Samples % e.Workers

	counts := make([]int, e.Workers)
	var g errgroup.Group
	for w := 0; w < e.Workers; w++ {
		trials := perWorker
		if w < remainder {
			trials++
		}
		workerRng := randutil.NewFromParent(rng)

		g.Go(func() error {
			counts[w] = runTrials(h, slot, excluded, ref, trials, workerRng)
			return nil
		})
	}
	// Workers cannot fail; Wait is only a join point.
	_ = g.Wait()

	total := 0
	for _, c := range counts {
		total += c
	}
	return total
}

// runTrials draws `trials` random replacements for the card in the
// given slot and counts how many produce a hand that beats the
// reference rank. Replace yields a fresh candidate per trial; nothing
// is mutated across iterations.
func runTrials(h hand.Hand, slot int, excluded deck.CardSet, ref hand.Rank, trials int, rng *rand.Rand) int {
	improvements := 0
	for i := 0; i < trials; i++ {
		candidate := h.Replace(slot, drawCard(excluded, rng))
		if hand.Improves(ref, candidate) {
			improvements++
		}
	}
	return improvements
}

// drawCard rejection-samples a uniform card outside the excluded set.
// The set always holds exactly 5 of 52 cards, so the loop terminates
// quickly (the expected number of redraws is 52/47).
func drawCard(excluded deck.CardSet, rng *rand.Rand) deck.Card {
	for {
		card := deck.NewCard(
			deck.Two+deck.Rank(rng.IntN(13)),
			deck.Suit(rng.IntN(4)),
		)
		if !excluded.Contains(card) {
			return card
		}
	}
}
