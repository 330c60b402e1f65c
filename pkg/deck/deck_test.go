package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeck(t *testing.T) {
	d := New()

	assert.Equal(t, 52, d.CardsLeft())
	assert.Equal(t, Card{Rank: Ace, Suit: Clubs}, *d.Cards[0])
	assert.Equal(t, Card{Rank: King, Suit: Spades}, *d.Cards[51])

	// one of each rank/suit combination
	seen := make(map[Card]bool)
	for _, card := range d.Cards {
		seen[*card] = true
	}
	assert.Equal(t, 52, len(seen))
}

func TestDeck_Shuffle(t *testing.T) {
	d := New()
	before := d.HashCode()

	d.SetSeed(1)
	d.Shuffle()

	first := d.HashCode()
	assert.NotEqual(t, before, first)

	// still 52 unique cards after the shuffle
	seen := make(map[Card]bool)
	for _, card := range d.Cards {
		seen[*card] = true
	}
	assert.Equal(t, 52, len(seen))

	// same seed reproduces the same order
	d2 := New()
	d2.SetSeed(1)
	d2.Shuffle()
	assert.Equal(t, first, d2.HashCode())

	d.Shuffle()
	assert.NotEqual(t, first, d.HashCode())
}

func TestDeck_Draw(t *testing.T) {
	d := New()

	if !d.CanDraw(52) {
		t.Errorf("expected CanDraw(52) to be true")
	}

	if d.CanDraw(53) {
		t.Errorf("expected CanDraw(53) to be false")
	}

	for i := 0; i < 52; i++ {
		card, err := d.Draw()
		if card == nil {
			t.Error("expected card, got nil")
		}

		if err != nil {
			t.Errorf("expected err to be nil, got %v", err)
		}
	}

	if d.CanDraw(1) {
		t.Errorf("expected CanDraw(1) to be false")
	}

	card, err := d.Draw()
	if card != nil {
		t.Errorf("expected card to be nil, got %#v", card)
	}

	if err != ErrEndOfDeck {
		t.Errorf("expected err to be ErrEndOfDeck, got %#v", err)
	}

	d.Shuffle()
	if !d.CanDraw(52) {
		t.Errorf("expected Shuffle() to rebuild the deck")
	}
}
