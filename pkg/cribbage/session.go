package cribbage

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"cribbage-server/internal/rng"
	"cribbage-server/pkg/cribbage/strategy"
)

// Session pairs a human seat with an opponent strategy on top of a game.
// After every human decision the session runs the opponent until the
// next decision the human owes, so a caller only ever sees states where
// it's the human's move (or the game is over).
type Session struct {
	id     string
	userID string
	human  Seat
	game   *Game
	strat  strategy.Strategy
	logger logrus.FieldLogger
}

// Options configures a new session
type Options struct {
	// Opponent is a strategy name from the strategy registry. Defaults
	// to "random".
	Opponent string

	// UserID is an opaque identifier for the human, carried through to
	// results reporting. May be empty.
	UserID string

	// FirstDealer fixes who deals first. SeatNone picks at random.
	FirstDealer Seat

	// Seed makes the deals reproducible when non-zero
	Seed int64

	Logger logrus.FieldLogger
}

// NewSession starts a game against the named opponent and advances it to
// the first decision the human owes. The human always holds seat A.
func NewSession(opts Options) (*Session, error) {
	name := opts.Opponent
	if name == "" {
		name = "random"
	}

	strat, err := strategy.New(name, nil)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	id := uuid.New().String()
	logger = logger.WithField("session", id)

	firstDealer := opts.FirstDealer
	if firstDealer == SeatNone {
		firstDealer = Seats[(rng.Crypto{}).Intn(2)]
	}

	game := NewGame(logger, firstDealer, opts.Seed)

	s := &Session{
		id:     id,
		userID: opts.UserID,
		human:  SeatA,
		game:   game,
		strat:  strat,
		logger: logger,
	}

	if err := s.advance(); err != nil {
		return nil, err
	}

	return s, nil
}

// ID returns the session's unique identifier
func (s *Session) ID() string {
	return s.id
}

// UserID returns the opaque user identifier the session was created with
func (s *Session) UserID() string {
	return s.userID
}

// OpponentName returns the registry name of the opponent strategy
func (s *Session) OpponentName() string {
	return s.strat.Name()
}

// Over returns true once the game is decided
func (s *Session) Over() bool {
	return s.game.Over()
}

// Summary returns the aggregate totals for a decided game, or nil
func (s *Session) Summary() *GameSummary {
	return s.game.Summary()
}

// HumanSeat returns the seat the human plays
func (s *Session) HumanSeat() Seat {
	return s.human
}

// Snapshot returns the current state from the human's point of view
func (s *Session) Snapshot() *Snapshot {
	return snapshot(s.id, s.game, s.human)
}

// Submit applies the human's answer to the pending decision, runs the
// opponent forward, and returns the resulting snapshot. On any
// ErrIllegalAction the state is unchanged.
func (s *Session) Submit(d Decision) (*Snapshot, error) {
	if s.game.Over() {
		return nil, ErrGameOver
	}

	r := s.game.Round
	if r == nil {
		return nil, ErrNoDecisionPending
	}

	var pending *PendingDecision
	for _, pd := range r.PendingDecisions() {
		if pd.Seat == s.human {
			p := pd
			pending = &p
			break
		}
	}

	if pending == nil {
		return nil, ErrNoDecisionPending
	}

	if d.Kind != pending.Kind {
		return nil, ErrUnexpectedDecision
	}

	if err := r.apply(s.human, d); err != nil {
		return nil, err
	}

	if err := s.advance(); err != nil {
		return nil, err
	}

	return s.Snapshot(), nil
}

// advance runs the opponent (and round/game bookkeeping) forward until
// either the human owes a decision or the game is over. Every opponent
// decision strictly consumes progress, so the loop is bounded.
func (s *Session) advance() error {
	for {
		if s.game.Over() {
			return nil
		}

		if s.game.Round == nil || s.game.Round.Phase == PhaseComplete {
			if err := s.game.StartRound(); err != nil {
				return err
			}
		}

		pending := s.game.Round.PendingDecisions()
		if len(pending) == 0 {
			continue
		}

		acted := false
		for _, pd := range pending {
			if pd.Seat == s.human {
				continue
			}

			if err := s.applyOpponent(pd); err != nil {
				return fmt.Errorf("opponent %s misplayed: %w", s.strat.Name(), err)
			}

			acted = true
			break
		}

		if !acted {
			// only the human owes a decision
			return nil
		}
	}
}

// applyOpponent asks the strategy for its decision and plays it
func (s *Session) applyOpponent(pd PendingDecision) error {
	r := s.game.Round
	seat := pd.Seat

	switch pd.Kind {
	case DecisionDiscard:
		indices := s.strat.ChooseDiscards(r.Hands[seat].Clone(), seat == r.Dealer)
		return r.Discard(seat, indices)
	case DecisionPlay:
		state := strategy.SequenceState{
			Cards:         r.Peg.Cards,
			Total:         r.Peg.Total,
			OpponentCards: len(r.Hands[seat.Other()]),
			IsDealer:      seat == r.Dealer,
		}

		return r.PlayCard(seat, s.strat.ChoosePlay(r.Hands[seat].Clone(), pd.Legal, state))
	case DecisionGo:
		// the strategy isn't consulted: a go is forced
		return r.Go(seat)
	}

	return ErrUnexpectedDecision
}

type sessionJSON struct {
	ID       string `json:"id"`
	UserID   string `json:"userId,omitempty"`
	Human    Seat   `json:"human"`
	Opponent string `json:"opponent"`
	Game     *Game  `json:"game"`
}

// MarshalJSON serializes the full session, opponent strategy included (by
// its registry name), so it can be restored later with Restore.
func (s *Session) MarshalJSON() ([]byte, error) {
	return json.Marshal(sessionJSON{
		ID:       s.id,
		UserID:   s.userID,
		Human:    s.human,
		Opponent: s.strat.Name(),
		Game:     s.game,
	})
}

// Restore rebuilds a session previously serialized with MarshalJSON. The
// opponent strategy is reconstructed from its registry name.
func Restore(data []byte, logger logrus.FieldLogger) (*Session, error) {
	var sj sessionJSON
	if err := json.Unmarshal(data, &sj); err != nil {
		return nil, fmt.Errorf("could not restore session: %w", err)
	}

	if sj.Game == nil {
		return nil, fmt.Errorf("could not restore session: no game state")
	}

	strat, err := strategy.New(sj.Opponent, nil)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}
	logger = logger.WithField("session", sj.ID)
	sj.Game.SetLogger(logger)

	s := &Session{
		id:     sj.ID,
		userID: sj.UserID,
		human:  sj.Human,
		game:   sj.Game,
		strat:  strat,
		logger: logger,
	}

	// the payload may have been captured with the automated seat still
	// to act; run it forward so the session again owes the human a
	// decision (or is over)
	if err := s.advance(); err != nil {
		return nil, err
	}

	return s, nil
}
