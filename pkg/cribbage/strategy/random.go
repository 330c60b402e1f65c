package strategy

import (
	"cribbage-server/internal/rng"
	"cribbage-server/pkg/deck"
)

func init() {
	register("random", "Random legal plays. Great for testing.", func(r rng.Generator) Strategy {
		return &Random{rng: r}
	})
}

// Random picks uniformly among the legal options
type Random struct {
	rng rng.Generator
}

// ChooseDiscards picks two distinct indices uniformly
func (s *Random) ChooseDiscards(hand deck.Hand, isDealer bool) []int {
	first := s.rng.Intn(len(hand))
	second := s.rng.Intn(len(hand) - 1)
	if second >= first {
		second++
	}

	return []int{first, second}
}

// ChoosePlay picks one of the legal indices uniformly
func (s *Random) ChoosePlay(hand deck.Hand, legal []int, state SequenceState) int {
	return legal[s.rng.Intn(len(legal))]
}

// Name returns "random"
func (s *Random) Name() string {
	return "random"
}
