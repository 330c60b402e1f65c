package cribbage

// Seat identifies one of the two sides of a game
type Seat int

// seat constants. SeatNone marks "no seat" (no winner yet, nobody has
// played in a fresh sequence, and so on).
const (
	SeatNone Seat = -1
	SeatA    Seat = 0
	SeatB    Seat = 1
)

// Seats lists the two playing seats
var Seats = [2]Seat{SeatA, SeatB}

// Other returns the opposing seat
func (s Seat) Other() Seat {
	switch s {
	case SeatA:
		return SeatB
	case SeatB:
		return SeatA
	}

	panic("no opposing seat")
}

func (s Seat) valid() bool {
	return s == SeatA || s == SeatB
}

func (s Seat) String() string {
	switch s {
	case SeatA:
		return "a"
	case SeatB:
		return "b"
	}

	return "none"
}
