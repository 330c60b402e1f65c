package cribbage

import (
	"cribbage-server/pkg/deck"
)

// DecisionKind discriminates what a seat is being asked for
type DecisionKind string

// decision kind constants
const (
	DecisionDiscard DecisionKind = "discard"
	DecisionPlay    DecisionKind = "play"
	DecisionGo      DecisionKind = "go"
)

// PendingDecision describes a decision a seat owes before the round can
// move on. Legal lists the hand indices that may be submitted; it is
// empty for a go, which is the seat's only option.
type PendingDecision struct {
	Kind  DecisionKind `json:"kind"`
	Seat  Seat         `json:"seat"`
	Legal []int        `json:"legal"`
	Count int          `json:"count"`
}

// Decision is a seat's answer to a pending decision
type Decision struct {
	Kind    DecisionKind `json:"kind"`
	Indices []int        `json:"indices"`
}

// PendingDecisions returns the decisions currently owed, in the order
// they may be acted on. During the discards both seats can owe one at
// the same time; during the play only the seat on turn does. An empty
// result means the round is complete.
func (r *Round) PendingDecisions() []PendingDecision {
	switch r.Phase {
	case PhaseDiscarding:
		pending := make([]PendingDecision, 0, 2)
		for _, seat := range []Seat{r.Dealer.Other(), r.Dealer} {
			if r.Discarded[seat] {
				continue
			}

			legal := make([]int, len(r.Hands[seat]))
			for i := range legal {
				legal[i] = i
			}

			pending = append(pending, PendingDecision{
				Kind:  DecisionDiscard,
				Seat:  seat,
				Legal: legal,
				Count: 2,
			})
		}

		return pending
	case PhasePegging:
		if r.Turn == SeatNone {
			return nil
		}

		legal := r.Peg.LegalPlays(r.Hands[r.Turn])
		if len(legal) == 0 {
			return []PendingDecision{{
				Kind:  DecisionGo,
				Seat:  r.Turn,
				Legal: []int{},
			}}
		}

		return []PendingDecision{{
			Kind:  DecisionPlay,
			Seat:  r.Turn,
			Legal: legal,
			Count: 1,
		}}
	}

	return nil
}

// apply routes a decision to the right round operation
func (r *Round) apply(seat Seat, d Decision) error {
	switch d.Kind {
	case DecisionDiscard:
		return r.Discard(seat, d.Indices)
	case DecisionPlay:
		if len(d.Indices) != 1 {
			return ErrWrongCardCount
		}

		return r.PlayCard(seat, d.Indices[0])
	case DecisionGo:
		if len(d.Indices) != 0 {
			return ErrWrongCardCount
		}

		return r.Go(seat)
	}

	return ErrUnexpectedDecision
}

// Snapshot is the state of a session from one seat's point of view. The
// opponent's cards never appear; only hand sizes do.
type Snapshot struct {
	ID            string           `json:"id"`
	Phase         Phase            `json:"phase"`
	Scores        [2]int           `json:"scores"`
	Dealer        Seat             `json:"dealer"`
	RoundNum      int              `json:"roundNum"`
	YourSeat      Seat             `json:"yourSeat"`
	YourHand      []*deck.Card     `json:"yourHand"`
	HandSizes     [2]int           `json:"handSizes"`
	CribSize      int              `json:"cribSize"`
	Starter       *deck.Card       `json:"starter,omitempty"`
	Table         []*PlayedCard    `json:"table"`
	Sequence      []*deck.Card     `json:"sequence"`
	SequenceTotal int              `json:"sequenceTotal"`
	Pending       *PendingDecision `json:"pending,omitempty"`
	LastRound     *RoundResult     `json:"lastRound,omitempty"`
	GameOver      bool             `json:"gameOver"`
	Winner        Seat             `json:"winner"`
}

// snapshot builds the viewer's picture of the game
func snapshot(id string, g *Game, viewer Seat) *Snapshot {
	s := &Snapshot{
		ID:       id,
		Scores:   g.Scores,
		Dealer:   g.Dealer,
		RoundNum: g.RoundNum,
		YourSeat: viewer,
		Sequence: []*deck.Card{},
		Table:    []*PlayedCard{},
		GameOver: g.Over(),
		Winner:   g.Winner,
	}

	if n := len(g.Results); n > 0 {
		s.LastRound = g.Results[n-1]
	}

	r := g.Round
	if r == nil {
		return s
	}

	s.Phase = r.Phase
	s.Dealer = r.Dealer
	s.YourHand = r.Hands[viewer].Clone()
	s.HandSizes = [2]int{len(r.Hands[SeatA]), len(r.Hands[SeatB])}
	s.CribSize = len(r.Crib)
	s.Starter = r.Starter
	s.Table = r.Table

	if r.Peg != nil {
		s.Sequence = r.Peg.Cards
		s.SequenceTotal = r.Peg.Total
	}

	for _, pd := range r.PendingDecisions() {
		if pd.Seat == viewer {
			p := pd
			s.Pending = &p
			break
		}
	}

	return s
}
