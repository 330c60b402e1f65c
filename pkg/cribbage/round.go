package cribbage

import (
	"sort"

	"cribbage-server/pkg/cribbage/scoring"
	"cribbage-server/pkg/deck"
)

// Phase is a phase of a round
type Phase string

// round phase constants
const (
	PhaseDiscarding Phase = "discarding"
	PhasePegging    Phase = "pegging"
	PhaseComplete   Phase = "complete"
)

// PlayedCard is a card on the table along with the seat that played it
type PlayedCard struct {
	Seat Seat       `json:"seat"`
	Card *deck.Card `json:"card"`
}

// HandResult is the show score for one counted hand
type HandResult struct {
	Seat      Seat              `json:"seat"`
	Cards     []*deck.Card      `json:"cards"`
	Breakdown scoring.Breakdown `json:"breakdown"`
}

// RoundResult records how a completed round went. The hand results appear
// in counting order; any of them is nil if the round ended before that
// hand was counted.
type RoundResult struct {
	Dealer        Seat         `json:"dealer"`
	Starter       *deck.Card   `json:"starter,omitempty"`
	NonDealerHand *HandResult  `json:"nonDealerHand,omitempty"`
	DealerHand    *HandResult  `json:"dealerHand,omitempty"`
	Crib          *HandResult  `json:"crib,omitempty"`
	PegPoints     [2]int       `json:"pegPoints"`
	HandPoints    [2]int       `json:"handPoints"`
	CribPoints    [2]int       `json:"cribPoints"`
}

// Round runs a single deal from the discards through the show. All moves
// go through the owning Game's session layer; direct callers are the
// tests.
type Round struct {
	Phase      Phase         `json:"phase"`
	Dealer     Seat          `json:"dealer"`
	Hands      [2]deck.Hand  `json:"hands"`
	Kept       [2]deck.Hand  `json:"kept"`
	Crib       deck.Hand     `json:"crib"`
	Starter    *deck.Card    `json:"starter"`
	Discarded  [2]bool       `json:"discarded"`
	Turn       Seat          `json:"turn"`
	Table      []*PlayedCard `json:"table"`
	Peg        *Pegging      `json:"peg"`
	Result     *RoundResult  `json:"result"`
	PegPoints  [2]int        `json:"pegPoints"`
	HandPoints [2]int        `json:"handPoints"`
	CribPoints [2]int        `json:"cribPoints"`

	// the undealt remainder rides along so a suspended round can still
	// cut its starter after resume
	Deck *deck.Deck `json:"deck"`

	game *Game
}

// newRound deals six cards to each seat, non-dealer first
func newRound(game *Game, d *deck.Deck) *Round {
	r := &Round{
		Phase:  PhaseDiscarding,
		Dealer: game.Dealer,
		Crib:   make(deck.Hand, 0, 4),
		Turn:   SeatNone,
		Table:  make([]*PlayedCard, 0, 8),
		Deck:   d,
		game:   game,
	}

	r.Hands[SeatA] = make(deck.Hand, 0, 6)
	r.Hands[SeatB] = make(deck.Hand, 0, 6)

	seat := r.Dealer.Other()
	for i := 0; i < 12; i++ {
		card, err := d.Draw()
		if err != nil {
			panic("fresh deck ran out during the deal")
		}

		r.Hands[seat].AddCard(card)
		seat = seat.Other()
	}

	sort.Sort(r.Hands[SeatA])
	sort.Sort(r.Hands[SeatB])

	return r
}

// Discard sends two cards from the seat's hand to the crib. Once both
// seats have discarded the starter is cut, his heels is scored, and the
// play begins with the non-dealer leading.
func (r *Round) Discard(seat Seat, indices []int) error {
	if !seat.valid() {
		panic("invalid seat")
	}

	if r.game.Over() {
		return ErrGameOver
	}

	if r.Phase != PhaseDiscarding {
		return ErrWrongPhase
	}

	if r.Discarded[seat] {
		return ErrAlreadyDiscarded
	}

	if len(indices) != 2 {
		return ErrWrongCardCount
	}

	if indices[0] == indices[1] {
		return ErrDuplicateCard
	}

	for _, idx := range indices {
		if idx < 0 || idx >= len(r.Hands[seat]) {
			return ErrCardNotHeld
		}
	}

	// remove the higher index first so the lower one stays put
	sorted := []int{indices[0], indices[1]}
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	for _, idx := range sorted {
		r.Crib.AddCard(r.Hands[seat].DiscardAt(idx))
	}

	r.Discarded[seat] = true
	r.game.logger.WithField("seat", seat).Debug("discarded to the crib")

	if r.Discarded[SeatA] && r.Discarded[SeatB] {
		r.cut()
	}

	return nil
}

// cut turns the starter, scores his heels, and opens the play
func (r *Round) cut() {
	starter, err := r.Deck.Draw()
	if err != nil {
		panic("deck ran out before the cut")
	}

	r.Starter = starter
	sort.Sort(r.Crib)
	r.Kept[SeatA] = r.Hands[SeatA].Clone()
	r.Kept[SeatB] = r.Hands[SeatB].Clone()

	r.game.logger.WithField("starter", starter.String()).Debug("cut the starter")

	if starter.Rank == deck.Jack {
		// his heels: two points to the dealer, counted as pegging
		if r.award(r.Dealer, 2, &r.PegPoints) {
			return
		}
	}

	r.Phase = PhasePegging
	r.Peg = newPegging()
	r.Turn = r.Dealer.Other()
}

// PlayCard plays the card at the given hand index onto the sequence
func (r *Round) PlayCard(seat Seat, index int) error {
	if !seat.valid() {
		panic("invalid seat")
	}

	if r.game.Over() {
		return ErrGameOver
	}

	if r.Phase != PhasePegging {
		return ErrWrongPhase
	}

	if seat != r.Turn {
		return ErrNotYourTurn
	}

	if index < 0 || index >= len(r.Hands[seat]) {
		return ErrCardNotHeld
	}

	card := r.Hands[seat][index]
	res, err := r.Peg.play(seat, card)
	if err != nil {
		return err
	}

	r.Hands[seat].DiscardAt(index)
	r.Table = append(r.Table, &PlayedCard{Seat: seat, Card: card})

	r.game.logger.WithFields(map[string]interface{}{
		"seat":   seat,
		"card":   card.String(),
		"total":  res.Total,
		"points": res.Points,
	}).Debug("played a card")

	if r.award(seat, res.Points, &r.PegPoints) {
		return nil
	}

	if r.Peg.Total == 31 {
		// the count closes immediately; the two points were already in
		// the play score, no go point stacks on top
		r.Peg.reset()
	}

	r.advance(seat)

	return nil
}

// Go declares that the seat cannot play. Only legal when the seat truly
// has no card that fits under the count.
func (r *Round) Go(seat Seat) error {
	if !seat.valid() {
		panic("invalid seat")
	}

	if r.game.Over() {
		return ErrGameOver
	}

	if r.Phase != PhasePegging {
		return ErrWrongPhase
	}

	if seat != r.Turn {
		return ErrNotYourTurn
	}

	if len(r.Peg.LegalPlays(r.Hands[seat])) > 0 {
		return ErrHasLegalPlay
	}

	r.Peg.pass(seat)
	r.game.logger.WithField("seat", seat).Debug("declared a go")
	r.advance(seat)

	return nil
}

// advance picks the next seat to act after prev moved. When neither seat
// can continue the current count it closes the sequence, and when both
// hands are empty it moves on to the show.
func (r *Round) advance(prev Seat) {
	if len(r.Hands[SeatA]) == 0 && len(r.Hands[SeatB]) == 0 {
		// a sequence still open at the end earns the last player a go
		// point; one closed by a 31 already paid out
		if r.Peg.LastPlayed != SeatNone {
			if r.award(r.Peg.LastPlayed, scoring.Go(r.Peg.Total), &r.PegPoints) {
				return
			}
		}

		r.Peg.reset()
		r.Turn = SeatNone
		r.runCounting()
		return
	}

	// the other seat acts next if it still holds cards and hasn't passed;
	// otherwise the turn stays where it is
	for _, c := range []Seat{prev.Other(), prev} {
		if len(r.Hands[c]) > 0 && !r.Peg.Passed[c] {
			r.Turn = c
			return
		}
	}

	// neither seat can go on: last player takes the go point and leads
	// are recomputed for a fresh count
	last := r.Peg.LastPlayed
	if last == SeatNone {
		panic("sequence closed without a card played")
	}

	if r.award(last, scoring.Go(r.Peg.Total), &r.PegPoints) {
		return
	}

	r.Peg.reset()
	r.advance(last)
}

// runCounting scores the show in fixed order: non-dealer's hand, dealer's
// hand, then the crib. A win mid-way ends the round without counting the
// remaining hands.
func (r *Round) runCounting() {
	result := &RoundResult{
		Dealer:  r.Dealer,
		Starter: r.Starter,
	}
	r.Result = result

	nonDealer := r.Dealer.Other()

	b := scoring.Hand(r.Kept[nonDealer], r.Starter, false)
	result.NonDealerHand = &HandResult{Seat: nonDealer, Cards: r.Kept[nonDealer], Breakdown: b}
	if r.award(nonDealer, b.Total, &r.HandPoints) {
		return
	}

	b = scoring.Hand(r.Kept[r.Dealer], r.Starter, false)
	result.DealerHand = &HandResult{Seat: r.Dealer, Cards: r.Kept[r.Dealer], Breakdown: b}
	if r.award(r.Dealer, b.Total, &r.HandPoints) {
		return
	}

	b = scoring.Hand(r.Crib, r.Starter, true)
	result.Crib = &HandResult{Seat: r.Dealer, Cards: r.Crib, Breakdown: b}
	if r.award(r.Dealer, b.Total, &r.CribPoints) {
		return
	}

	r.finish()
}

// award adds points to the seat's game score and the given round bucket.
// Returns true if the points decided the game, in which case the round is
// finished on the spot.
func (r *Round) award(seat Seat, points int, bucket *[2]int) bool {
	if points == 0 {
		return false
	}

	bucket[seat] += points
	if r.game.peg(seat, points) {
		r.finish()
		return true
	}

	return false
}

// finish seals the round and hands the result to the game
func (r *Round) finish() {
	if r.Result == nil {
		r.Result = &RoundResult{
			Dealer:  r.Dealer,
			Starter: r.Starter,
		}
	}

	r.Result.PegPoints = r.PegPoints
	r.Result.HandPoints = r.HandPoints
	r.Result.CribPoints = r.CribPoints

	r.Phase = PhaseComplete
	r.Turn = SeatNone
	r.game.finishRound(r.Result)
}
