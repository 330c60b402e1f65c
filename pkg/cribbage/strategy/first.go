package strategy

import (
	"cribbage-server/internal/rng"
	"cribbage-server/pkg/deck"
)

func init() {
	register("first", "Always plays the first available card in hand.", func(r rng.Generator) Strategy {
		return First{}
	})
}

// First always takes the lowest-index legal choice. It is fully
// deterministic, which makes it the workhorse for resume/replay tests.
type First struct{}

// ChooseDiscards returns the first two cards of the hand
func (First) ChooseDiscards(hand deck.Hand, isDealer bool) []int {
	return []int{0, 1}
}

// ChoosePlay returns the first legal index
func (First) ChoosePlay(hand deck.Hand, legal []int, state SequenceState) int {
	return legal[0]
}

// Name returns "first"
func (First) Name() string {
	return "first"
}
