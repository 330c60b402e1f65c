package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_PegValue(t *testing.T) {
	a := assert.New(t)

	a.Equal(1, CardFromString("1c").PegValue())
	a.Equal(9, CardFromString("9d").PegValue())
	a.Equal(10, CardFromString("10h").PegValue())
	a.Equal(10, CardFromString("11s").PegValue())
	a.Equal(10, CardFromString("12c").PegValue())
	a.Equal(10, CardFromString("13d").PegValue())
}

func TestCard_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("A♣", CardFromString("1c").String())
	a.Equal("5♡", CardFromString("5h").String())
	a.Equal("J♠", CardFromString("11s").String())
	a.Equal("Q♢", CardFromString("12d").String())
	a.Equal("K♣", CardFromString("13c").String())
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	a.Equal(&Card{Rank: Ace, Suit: Clubs}, CardFromString("1c"))
	a.Equal(&Card{Rank: King, Suit: Spades}, CardFromString("13s"))
	a.Nil(CardFromString(""))

	a.PanicsWithValue("could not parse card: 14c", func() {
		CardFromString("14c")
	})

	a.PanicsWithValue("could not parse card: 5x", func() {
		CardFromString("5x")
	})
}

func TestCardsToString_roundTrip(t *testing.T) {
	const s = "1c,5h,10d,11s,13c"
	assert.Equal(t, s, CardsToString(CardsFromString(s)))
}

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)

	a.True(CardFromString("5s").Equal(CardFromString("5s")))
	a.False(CardFromString("5s").Equal(CardFromString("5c")))
	a.False(CardFromString("5s").Equal(CardFromString("6s")))
}
