package strategy

import (
	"cribbage-server/internal/rng"
	"cribbage-server/pkg/cribbage/scoring"
	"cribbage-server/pkg/deck"
)

func init() {
	register("defensive", "Plays it safe: starves the opponent's crib and avoids counts that invite a fifteen or thirty-one.", func(r rng.Generator) Strategy {
		return &Defensive{rng: r}
	})
}

// Defensive throws the least dangerous cards to an opponent's crib (and
// the most dangerous to its own), and pegs away from the counts a
// fifteen or thirty-one is built on.
type Defensive struct {
	rng rng.Generator
}

// cribRisk estimates how much a two-card throw helps whoever owns the
// crib. Fives, pairs, two-card fifteens, and touching ranks all feed
// big crib hands.
func cribRisk(a, b *deck.Card) int {
	risk := 0

	for _, c := range []*deck.Card{a, b} {
		if c.Rank == 5 {
			risk += 4
		}
	}

	if a.Rank == b.Rank {
		risk += 3
	}

	if a.PegValue()+b.PegValue() == 15 {
		risk += 3
	}

	if diff := a.Rank - b.Rank; diff == 1 || diff == -1 {
		risk += 2
	}

	return risk
}

// ChooseDiscards picks the throw with the lowest crib risk, or the
// highest when the crib is its own.
func (s *Defensive) ChooseDiscards(hand deck.Hand, isDealer bool) []int {
	best := []int{0, 1}
	bestRisk := cribRisk(hand[0], hand[1])

	for i := 0; i < len(hand); i++ {
		for j := i + 1; j < len(hand); j++ {
			risk := cribRisk(hand[i], hand[j])

			better := risk < bestRisk
			if isDealer {
				better = risk > bestRisk
			}

			if better {
				bestRisk = risk
				best = []int{i, j}
			}
		}
	}

	return best
}

// ChoosePlay still takes points when they're on the table, but weighs
// leaving a safe count more heavily than Greedy does, and breaks ties
// at random.
func (s *Defensive) ChoosePlay(hand deck.Hand, legal []int, state SequenceState) int {
	var best []int
	bestScore := -1

	for _, idx := range legal {
		res := scoring.Play(state.Cards, hand[idx])

		score := res.Points * 10
		if !riskyCounts[res.Total] {
			score += 5
		}

		if score > bestScore {
			bestScore = score
			best = best[:0]
		}

		if score == bestScore {
			best = append(best, idx)
		}
	}

	return best[s.rng.Intn(len(best))]
}

// Name returns "defensive"
func (s *Defensive) Name() string {
	return "defensive"
}
