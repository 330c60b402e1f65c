package deck

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_AddCardAndHasCard(t *testing.T) {
	a := assert.New(t)

	var h Hand
	h.AddCard(CardFromString("5s"))
	h.AddCard(CardFromString("11d"))

	a.True(h.HasCard(CardFromString("5s")))
	a.False(h.HasCard(CardFromString("5c")))
	a.Equal(2, h.Len())
}

func TestHand_Discard(t *testing.T) {
	a := assert.New(t)

	h := Hand(CardsFromString("5s,11d,2c"))
	a.True(h.Discard(CardFromString("11d")))
	a.False(h.Discard(CardFromString("11d")))
	a.Equal("5s,2c", h.String())
}

func TestHand_DiscardAt(t *testing.T) {
	a := assert.New(t)

	h := Hand(CardsFromString("5s,11d,2c"))
	a.Equal("11d", CardToString(h.DiscardAt(1)))
	a.Nil(h.DiscardAt(2))
	a.Nil(h.DiscardAt(-1))
	a.Equal("5s,2c", h.String())
}

func TestHand_PegValueSum(t *testing.T) {
	a := assert.New(t)

	a.Equal(0, Hand{}.PegValueSum())
	a.Equal(31, Hand(CardsFromString("13c,12d,10h,1s")).PegValueSum())
}

func TestHand_Sort(t *testing.T) {
	h := Hand(CardsFromString("13c,1s,5h,5c"))
	sort.Sort(h)
	assert.Equal(t, "1s,5c,5h,13c", h.String())
}

func TestHand_Clone(t *testing.T) {
	a := assert.New(t)

	h := Hand(CardsFromString("5s,11d"))
	h2 := h.Clone()
	h2.Discard(CardFromString("5s"))

	a.Equal("5s,11d", h.String())
	a.Equal("11d", h2.String())
}
