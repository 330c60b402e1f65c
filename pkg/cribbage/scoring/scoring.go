// Package scoring implements the cribbage scoring rules as pure functions.
// Nothing in here mutates its inputs or fails on well-formed input; malformed
// input (wrong card counts, duplicate cards) is a programming error and panics.
package scoring

import (
	"fmt"
	"sort"

	"cribbage-server/pkg/deck"
)

// Breakdown itemizes the points awarded for a hand or crib.
// Total is always the sum of the component fields.
type Breakdown struct {
	Total    int `json:"total"`
	Fifteens int `json:"fifteens"`
	Pairs    int `json:"pairs"`
	Runs     int `json:"runs"`
	Flush    int `json:"flush"`
	Nobs     int `json:"nobs"`
}

// Hand scores a 4-card hand (or crib) against the starter card.
// The crib flush rule is stricter: all five cards must match suit.
func Hand(hand []*deck.Card, starter *deck.Card, isCrib bool) Breakdown {
	if len(hand) != 4 {
		panic(fmt.Sprintf("scoring: hand must have 4 cards, got %d", len(hand)))
	}

	if starter == nil {
		panic("scoring: starter is required")
	}

	all := make([]*deck.Card, 0, 5)
	all = append(all, hand...)
	all = append(all, starter)
	assertNoDuplicates(all)

	b := Breakdown{
		Fifteens: scoreFifteens(all),
		Pairs:    scorePairs(all),
		Runs:     scoreRuns(all),
		Flush:    scoreFlush(hand, starter, isCrib),
		Nobs:     scoreNobs(hand, starter),
	}

	b.Total = b.Fifteens + b.Pairs + b.Runs + b.Flush + b.Nobs
	return b
}

// scoreFifteens counts every subset of the cards whose capped values sum
// to fifteen, two points each.
func scoreFifteens(cards []*deck.Card) int {
	n := len(cards)
	points := 0
	for mask := 1; mask < (1 << n); mask++ {
		sum := 0
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				sum += cards[i].PegValue()
			}
		}
		if sum == 15 {
			points += 2
		}
	}

	return points
}

func scorePairs(cards []*deck.Card) int {
	count := make(map[int]int)
	for _, c := range cards {
		count[c.Rank]++
	}

	// nC2 pairs of each rank, two points per pair
	points := 0
	for _, n := range count {
		points += n * (n - 1)
	}

	return points
}

// scoreRuns finds the longest run of 3+ consecutive ranks. Duplicated ranks
// multiply the run count; all distinct runs of the maximal length score.
func scoreRuns(cards []*deck.Card) int {
	count := make(map[int]int)
	ranks := make([]int, 0, len(cards))
	for _, c := range cards {
		if count[c.Rank] == 0 {
			ranks = append(ranks, c.Rank)
		}
		count[c.Rank]++
	}
	sort.Ints(ranks)

	bestLen := 0
	bestMult := 0
	for start := 0; start < len(ranks); start++ {
		for end := start; end < len(ranks); end++ {
			runLen := end - start + 1
			if runLen < 3 {
				continue
			}

			if ranks[end]-ranks[start] != runLen-1 {
				continue
			}

			mult := 1
			for i := start; i <= end; i++ {
				mult *= count[ranks[i]]
			}

			if runLen > bestLen {
				bestLen = runLen
				bestMult = mult
			} else if runLen == bestLen {
				bestMult += mult
			}
		}
	}

	return bestLen * bestMult
}

func scoreFlush(hand []*deck.Card, starter *deck.Card, isCrib bool) int {
	suit := hand[0].Suit
	for _, c := range hand[1:] {
		if c.Suit != suit {
			return 0
		}
	}

	if starter.Suit == suit {
		return 5
	}

	// a crib flush must include the starter
	if isCrib {
		return 0
	}

	return 4
}

func scoreNobs(hand []*deck.Card, starter *deck.Card) int {
	for _, c := range hand {
		if c.Rank == deck.Jack && c.Suit == starter.Suit {
			return 1
		}
	}

	return 0
}

// PlayResult itemizes the points awarded for a single pegging play.
type PlayResult struct {
	Points  int      `json:"points"`
	Total   int      `json:"total"`
	Reasons []string `json:"reasons,omitempty"`
}

// Play scores the newly played card against the live sequence. seq holds the
// cards played since the last reset, oldest first, excluding card.
// The caller is responsible for rejecting plays that would push the count
// past 31; a sequence that already exceeds it is a programming error.
func Play(seq []*deck.Card, card *deck.Card) PlayResult {
	if card == nil {
		panic("scoring: played card is required")
	}

	total := deck.Hand(seq).PegValueSum() + card.PegValue()
	if total > 31 {
		panic(fmt.Sprintf("scoring: play sequence total %d exceeds 31", total))
	}

	res := PlayResult{Total: total}

	if total == 15 {
		res.Points += 2
		res.Reasons = append(res.Reasons, "fifteen")
	}

	if total == 31 {
		res.Points += 2
		res.Reasons = append(res.Reasons, "thirty-one")
	}

	// pairs, triples, and quads formed by the trailing run of equal ranks
	same := 1
	for i := len(seq) - 1; i >= 0; i-- {
		if seq[i].Rank != card.Rank {
			break
		}
		same++
	}

	switch same {
	case 2:
		res.Points += 2
		res.Reasons = append(res.Reasons, "pair")
	case 3:
		res.Points += 6
		res.Reasons = append(res.Reasons, "three of a kind")
	case 4:
		res.Points += 12
		res.Reasons = append(res.Reasons, "four of a kind")
	}

	// longest trailing run of 3+ distinct, contiguous ranks in any order.
	// shorter runs contained in it do not score again.
	all := make([]*deck.Card, 0, len(seq)+1)
	all = append(all, seq...)
	all = append(all, card)
	for n := len(all); n >= 3; n-- {
		if isRun(all[len(all)-n:]) {
			res.Points += n
			res.Reasons = append(res.Reasons, fmt.Sprintf("run of %d", n))
			break
		}
	}

	return res
}

func isRun(cards []*deck.Card) bool {
	seen := make(map[int]bool)
	min, max := deck.King+1, 0
	for _, c := range cards {
		if seen[c.Rank] {
			return false
		}
		seen[c.Rank] = true

		if c.Rank < min {
			min = c.Rank
		}
		if c.Rank > max {
			max = c.Rank
		}
	}

	return max-min+1 == len(cards)
}

// Go returns the points for the side that played last when a sequence
// closes: 2 if the count reached exactly 31, otherwise 1. The two never
// stack; a 31 takes the 2-point branch and no further go point is awarded.
func Go(total int) int {
	if total == 31 {
		return 2
	}

	return 1
}

func assertNoDuplicates(cards []*deck.Card) {
	seen := make(map[deck.Card]bool)
	for _, c := range cards {
		if seen[*c] {
			panic(fmt.Sprintf("scoring: duplicate card %s", c))
		}
		seen[*c] = true
	}
}
