package deck

// Hand represents a collection of cards
type Hand []*Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	if h[i].Rank != h[j].Rank {
		return h[i].Rank < h[j].Rank
	}

	return h[i].Suit < h[j].Suit
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card *Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// Discard removes the first card equal to the one specified.
// Returns true if a card was removed.
func (h *Hand) Discard(card *Card) bool {
	for i, c := range *h {
		if c.Equal(card) {
			*h = append((*h)[:i], (*h)[i+1:]...)
			return true
		}
	}

	return false
}

// DiscardAt removes the card at the given index and returns it.
// Returns nil if the index is out of range.
func (h *Hand) DiscardAt(index int) *Card {
	if index < 0 || index >= len(*h) {
		return nil
	}

	card := (*h)[index]
	*h = append((*h)[:index], (*h)[index+1:]...)
	return card
}

// PegValueSum returns the sum of the capped counting values of the hand
func (h Hand) PegValueSum() int {
	sum := 0
	for _, c := range h {
		sum += c.PegValue()
	}

	return sum
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
