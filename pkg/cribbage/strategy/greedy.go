package strategy

import (
	"cribbage-server/internal/rng"
	"cribbage-server/pkg/cribbage/scoring"
	"cribbage-server/pkg/deck"
)

func init() {
	register("greedy", "Maximizes immediate points; keeps the strongest hand.", func(r rng.Generator) Strategy {
		return Greedy{}
	})
}

// Greedy keeps the four cards with the best expected score over all
// possible starters, and pegs for immediate points, avoiding counts that
// set the opponent up for a fifteen or thirty-one.
type Greedy struct{}

// ChooseDiscards evaluates every 2-card throw and keeps the four cards
// whose average score across the 46 unseen starters is highest.
func (Greedy) ChooseDiscards(hand deck.Hand, isDealer bool) []int {
	best := []int{0, 1}
	bestScore := -1.0

	for i := 0; i < len(hand); i++ {
		for j := i + 1; j < len(hand); j++ {
			kept := make([]*deck.Card, 0, 4)
			for k, c := range hand {
				if k != i && k != j {
					kept = append(kept, c)
				}
			}

			if score := expectedHandScore(kept, hand); score > bestScore {
				bestScore = score
				best = []int{i, j}
			}
		}
	}

	return best
}

// expectedHandScore averages the kept hand's score over every starter not
// visible in the original 6-card hand.
func expectedHandScore(kept []*deck.Card, seen deck.Hand) float64 {
	total := 0
	count := 0

	for _, suit := range deck.Suits {
		for rank := deck.Ace; rank <= deck.King; rank++ {
			starter := &deck.Card{Rank: rank, Suit: suit}
			if seen.HasCard(starter) {
				continue
			}

			total += scoring.Hand(kept, starter, false).Total
			count++
		}
	}

	return float64(total) / float64(count)
}

// counts best left alone: a 5 or 10 invites a fifteen, a 21 invites a
// thirty-one
var riskyCounts = map[int]bool{5: true, 10: true, 21: true}

// ChoosePlay takes the legal play worth the most immediate points,
// breaking ties away from risky counts.
func (Greedy) ChoosePlay(hand deck.Hand, legal []int, state SequenceState) int {
	best := legal[0]
	bestScore := -1

	for _, idx := range legal {
		res := scoring.Play(state.Cards, hand[idx])

		score := res.Points * 10
		if !riskyCounts[res.Total] {
			score++
		}

		if score > bestScore {
			bestScore = score
			best = idx
		}
	}

	return best
}

// Name returns "greedy"
func (Greedy) Name() string {
	return "greedy"
}
