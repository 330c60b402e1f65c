package cribbage

import (
	"errors"
	"fmt"
)

// ErrIllegalAction is the base error for every recoverable rejection of a
// submitted decision. State is guaranteed unchanged; the caller may retry
// with a corrected decision. Use errors.Is to test for the family.
var ErrIllegalAction = errors.New("illegal action")

// ErrWrongPhase is an error when a decision arrives outside its phase
var ErrWrongPhase = fmt.Errorf("%w: wrong phase", ErrIllegalAction)

// ErrNotYourTurn is returned when it's not the seat's turn to act
var ErrNotYourTurn = fmt.Errorf("%w: not this seat's turn", ErrIllegalAction)

// ErrCardNotHeld happens when a seat references a card it does not hold
var ErrCardNotHeld = fmt.Errorf("%w: card is not in the seat's hand", ErrIllegalAction)

// ErrExceedsThirtyOne rejects a play that would push the count past 31
var ErrExceedsThirtyOne = fmt.Errorf("%w: play would push the count past 31", ErrIllegalAction)

// ErrHasLegalPlay rejects a go declared while a legal play exists
var ErrHasLegalPlay = fmt.Errorf("%w: a legal play is still available", ErrIllegalAction)

// ErrWrongCardCount is an error on the number of cards in a decision
var ErrWrongCardCount = fmt.Errorf("%w: wrong number of cards", ErrIllegalAction)

// ErrDuplicateCard rejects the same card appearing twice in a decision
var ErrDuplicateCard = fmt.Errorf("%w: duplicate card", ErrIllegalAction)

// ErrAlreadyDiscarded happens when a seat discards to the crib twice
var ErrAlreadyDiscarded = fmt.Errorf("%w: seat already discarded", ErrIllegalAction)

// ErrGameOver is an error when an action is attempted on a decided game
var ErrGameOver = fmt.Errorf("%w: the game is over", ErrIllegalAction)

// ErrNoDecisionPending happens when a decision arrives and none is expected
var ErrNoDecisionPending = fmt.Errorf("%w: no decision is pending", ErrIllegalAction)

// ErrUnexpectedDecision happens when the decision kind doesn't match what's pending
var ErrUnexpectedDecision = fmt.Errorf("%w: decision does not match what is pending", ErrIllegalAction)
