package cribbage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cribbage-server/pkg/deck"
)

func TestPegging_LegalPlays(t *testing.T) {
	a := assert.New(t)
	p := newPegging()

	hand := deck.Hand(deck.CardsFromString("1c,5d,10h,13s"))
	a.Equal([]int{0, 1, 2, 3}, p.LegalPlays(hand))

	p.Total = 25
	a.Equal([]int{0, 1}, p.LegalPlays(hand))

	p.Total = 30
	a.Equal([]int{0}, p.LegalPlays(hand))

	p.Total = 31
	a.Equal([]int{}, p.LegalPlays(hand))
}

func TestPegging_play(t *testing.T) {
	a := assert.New(t)
	p := newPegging()

	res, err := p.play(SeatA, deck.CardFromString("10c"))
	a.NoError(err)
	a.Equal(0, res.Points)
	a.Equal(10, p.Total)
	a.Equal(SeatA, p.LastPlayed)

	res, err = p.play(SeatB, deck.CardFromString("10d"))
	a.NoError(err)
	a.Equal(2, res.Points)
	a.Equal(20, p.Total)
	a.Equal(SeatB, p.LastPlayed)

	res, err = p.play(SeatA, deck.CardFromString("5h"))
	a.NoError(err)
	a.Equal(0, res.Points)
	a.Equal(25, p.Total)

	// rejecting a card that would exceed 31 leaves the sequence alone
	res, err = p.play(SeatB, deck.CardFromString("12h"))
	a.Equal(ErrExceedsThirtyOne, err)
	a.Equal(0, res.Points)
	a.Equal(25, p.Total)
	a.Len(p.Cards, 3)
	a.Equal(SeatA, p.LastPlayed)
}

func TestPegging_reset(t *testing.T) {
	a := assert.New(t)
	p := newPegging()

	_, _ = p.play(SeatA, deck.CardFromString("10c"))
	p.pass(SeatB)
	p.reset()

	a.Empty(p.Cards)
	a.Equal(0, p.Total)
	a.Equal(SeatNone, p.LastPlayed)
	a.Equal([2]bool{}, p.Passed)
}
