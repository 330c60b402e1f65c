package cribbage

import (
	"cribbage-server/pkg/cribbage/scoring"
	"cribbage-server/pkg/deck"
)

// Pegging tracks a single counting sequence during the play: the cards on
// the table since the last reset, the running total, who played last, and
// who has declared a go.
type Pegging struct {
	Cards      []*deck.Card `json:"cards"`
	Total      int          `json:"total"`
	LastPlayed Seat         `json:"lastPlayed"`
	Passed     [2]bool      `json:"passed"`
}

func newPegging() *Pegging {
	return &Pegging{
		Cards:      make([]*deck.Card, 0, 8),
		LastPlayed: SeatNone,
	}
}

// LegalPlays returns the hand indices whose cards keep the count at 31 or
// below. An empty result means the seat must declare a go.
func (p *Pegging) LegalPlays(hand deck.Hand) []int {
	legal := make([]int, 0, len(hand))
	for i, c := range hand {
		if p.Total+c.PegValue() <= 31 {
			legal = append(legal, i)
		}
	}

	return legal
}

// play adds the card to the sequence and returns the points it scored.
// Returns ErrExceedsThirtyOne without mutating if the card doesn't fit.
func (p *Pegging) play(seat Seat, card *deck.Card) (scoring.PlayResult, error) {
	if p.Total+card.PegValue() > 31 {
		return scoring.PlayResult{}, ErrExceedsThirtyOne
	}

	res := scoring.Play(p.Cards, card)
	p.Cards = append(p.Cards, card)
	p.Total = res.Total
	p.LastPlayed = seat

	return res, nil
}

// pass records a go for the seat
func (p *Pegging) pass(seat Seat) {
	p.Passed[seat] = true
}

// reset clears the sequence for a fresh count back at zero
func (p *Pegging) reset() {
	p.Cards = make([]*deck.Card, 0, 8)
	p.Total = 0
	p.LastPlayed = SeatNone
	p.Passed = [2]bool{}
}
