// Package strategy holds the decision-making contract for the automated side
// of a cribbage game, plus the built-in implementations. Strategies see the
// same surface a human player sees and must only return legal choices; the
// controllers re-validate everything regardless.
package strategy

import (
	"fmt"
	"sort"

	"cribbage-server/internal/rng"
	"cribbage-server/pkg/deck"
)

// SequenceState is the view of the live pegging sequence a strategy
// receives when choosing a play.
type SequenceState struct {
	// Cards played since the last reset, oldest first
	Cards []*deck.Card
	// Total is the running count of the sequence
	Total int
	// OpponentCards is how many cards the other side still holds
	OpponentCards int
	// IsDealer is true if the deciding side dealt this round
	IsDealer bool
}

// Strategy chooses crib discards and pegging plays for the automated side.
// ChoosePlay is only invoked with a non-empty set of legal indices; when no
// legal play exists the controller declares the go itself, which is what
// keeps the automated turn loop bounded.
type Strategy interface {
	// ChooseDiscards returns the indices of exactly two cards from the
	// 6-card hand to send to the crib.
	ChooseDiscards(hand deck.Hand, isDealer bool) []int

	// ChoosePlay returns one of the legal hand indices to play.
	ChoosePlay(hand deck.Hand, legal []int, state SequenceState) int

	// Name returns the registry name of the strategy
	Name() string
}

type factory func(r rng.Generator) Strategy

var registry = map[string]factory{}

var descriptions = map[string]string{}

func register(name, description string, f factory) {
	registry[name] = f
	descriptions[name] = description
}

// New returns the named strategy, backed by the provided random source.
// A nil generator falls back to a crypto-backed one.
func New(name string, r rng.Generator) (Strategy, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown opponent strategy: %s", name)
	}

	if r == nil {
		r = rng.Crypto{}
	}

	return f(r), nil
}

// Names returns the registered strategy names, sorted
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Description returns the human-readable description for a strategy name
func Description(name string) string {
	return descriptions[name]
}
