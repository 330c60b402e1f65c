package strategy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"cribbage-server/pkg/deck"
)

func TestNew(t *testing.T) {
	a := assert.New(t)

	for _, name := range []string{"random", "first", "greedy", "defensive"} {
		s, err := New(name, nil)
		a.NoError(err)
		a.Equal(name, s.Name())
	}

	s, err := New("nope", nil)
	a.Nil(s)
	a.EqualError(err, "unknown opponent strategy: nope")
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Equal(t, []string{"defensive", "first", "greedy", "random"}, names)

	for _, name := range names {
		assert.NotEmpty(t, Description(name))
	}
}

func TestRandom_ChooseDiscards(t *testing.T) {
	a := assert.New(t)
	s, _ := New("random", rand.New(rand.NewSource(0)))

	hand := deck.Hand(deck.CardsFromString("1c,2c,3c,4c,5c,6c"))
	for i := 0; i < 100; i++ {
		indices := s.ChooseDiscards(hand, false)
		a.Len(indices, 2)
		a.NotEqual(indices[0], indices[1])
		for _, idx := range indices {
			a.GreaterOrEqual(idx, 0)
			a.Less(idx, 6)
		}
	}
}

func TestRandom_ChoosePlay(t *testing.T) {
	a := assert.New(t)
	s, _ := New("random", rand.New(rand.NewSource(0)))

	hand := deck.Hand(deck.CardsFromString("1c,2c,3c,4c"))
	legal := []int{1, 3}
	for i := 0; i < 50; i++ {
		a.Contains(legal, s.ChoosePlay(hand, legal, SequenceState{}))
	}
}

func TestFirst(t *testing.T) {
	a := assert.New(t)
	s := First{}

	hand := deck.Hand(deck.CardsFromString("1c,2c,3c,4c,5c,6c"))
	a.Equal([]int{0, 1}, s.ChooseDiscards(hand, true))
	a.Equal(2, s.ChoosePlay(hand[:4], []int{2, 3}, SequenceState{}))
}

func TestDefensive_ChooseDiscards(t *testing.T) {
	a := assert.New(t)
	s, err := New("defensive", rand.New(rand.NewSource(1)))
	a.NoError(err)

	// to an opponent's crib the fives stay home; the unconnected 2 and 9
	// are the safest throw
	hand := deck.Hand(deck.CardsFromString("5c,5d,2h,9s,10c,13d"))
	a.Equal([]int{2, 3}, s.ChooseDiscards(hand, false))

	// to its own crib it feeds the pair of fives
	a.Equal([]int{0, 1}, s.ChooseDiscards(hand, true))
}

func TestDefensive_ChoosePlay(t *testing.T) {
	a := assert.New(t)
	s, err := New("defensive", rand.New(rand.NewSource(1)))
	a.NoError(err)

	// a count of 7 is safe, a count of 5 invites a fifteen
	hand := deck.Hand(deck.CardsFromString("4c,2d"))
	state := SequenceState{Cards: deck.CardsFromString("3c"), Total: 3}
	a.Equal(0, s.ChoosePlay(hand, []int{0, 1}, state))

	// but points outweigh caution
	hand = deck.Hand(deck.CardsFromString("9h,1s"))
	state = SequenceState{Cards: deck.CardsFromString("6c"), Total: 6}
	a.Equal(0, s.ChoosePlay(hand, []int{0, 1}, state))
}

func TestGreedy_ChooseDiscards(t *testing.T) {
	s := Greedy{}

	// three fives and a jack are an obvious keep; the 7 and 8 go
	hand := deck.Hand(deck.CardsFromString("5c,5d,5h,11s,7c,8d"))
	assert.Equal(t, []int{4, 5}, s.ChooseDiscards(hand, true))
}

func TestGreedy_ChoosePlay(t *testing.T) {
	a := assert.New(t)
	s := Greedy{}

	// completing a fifteen beats everything else
	hand := deck.Hand(deck.CardsFromString("8c,2d,4h,13s"))
	state := SequenceState{Cards: deck.CardsFromString("7c"), Total: 7}
	a.Equal(0, s.ChoosePlay(hand, []int{0, 1, 2, 3}, state))

	// pairing the last card when no fifteen is available
	hand = deck.Hand(deck.CardsFromString("9c,2d,4h,13s"))
	state = SequenceState{Cards: deck.CardsFromString("3c,9d"), Total: 12}
	a.Equal(0, s.ChoosePlay(hand, []int{0, 1, 2, 3}, state))
}
