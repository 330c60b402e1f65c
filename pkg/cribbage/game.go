/*
Package cribbage is a two-player cribbage engine: rounds from the deal
through the show, pegging with gos and 31s, first to 121 wins. The
Session type on top pairs a human seat with an opponent strategy and
exposes a snapshot/decision surface that serializes to JSON.
*/
package cribbage

import (
	"encoding/json"

	"github.com/sirupsen/logrus"

	"cribbage-server/pkg/deck"
)

// WinningScore is the score that ends the game
const WinningScore = 121

// Game tracks the match-level state: the running scores, whose deal it
// is, and the round in progress. The zero value is not usable; construct
// with NewGame.
type Game struct {
	Scores   [2]int         `json:"scores"`
	Dealer   Seat           `json:"dealer"`
	Winner   Seat           `json:"winner"`
	RoundNum int            `json:"roundNum"`
	Round    *Round         `json:"round"`
	Results  []*RoundResult `json:"results"`
	Seed     int64          `json:"seed,omitempty"`

	logger logrus.FieldLogger
}

// NewGame returns a new game with the given first dealer. Pass a non-zero
// seed for reproducible deals.
func NewGame(logger logrus.FieldLogger, firstDealer Seat, seed int64) *Game {
	if !firstDealer.valid() {
		panic("invalid first dealer")
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Game{
		Dealer: firstDealer,
		Winner: SeatNone,
		Seed:   seed,
		logger: logger,
	}
}

// StartRound shuffles a fresh deck and deals the next round. The previous
// round must be complete.
func (g *Game) StartRound() error {
	if g.Over() {
		return ErrGameOver
	}

	if g.Round != nil && g.Round.Phase != PhaseComplete {
		return ErrWrongPhase
	}

	d := deck.New()
	if g.Seed != 0 {
		d.SetSeed(g.Seed + int64(g.RoundNum))
	}
	d.Shuffle()

	g.Round = newRound(g, d)
	g.logger.WithFields(logrus.Fields{
		"round":  g.RoundNum,
		"dealer": g.Dealer,
	}).Debug("dealt a new round")

	return nil
}

// Over returns true once a seat has reached the winning score
func (g *Game) Over() bool {
	return g.Winner != SeatNone
}

// peg credits points to the seat and returns true if they won the game
func (g *Game) peg(seat Seat, points int) bool {
	g.Scores[seat] += points

	if g.Scores[seat] >= WinningScore && g.Winner == SeatNone {
		g.Winner = seat
		g.logger.WithFields(logrus.Fields{
			"winner": seat,
			"score":  g.Scores[seat],
		}).Debug("game decided")
	}

	return g.Winner == seat
}

// finishRound records the result and passes the deal
func (g *Game) finishRound(result *RoundResult) {
	g.Results = append(g.Results, result)

	if !g.Over() {
		g.Dealer = g.Dealer.Other()
		g.RoundNum++
	}
}

// GameSummary aggregates a finished game for reporting
type GameSummary struct {
	Winner     Seat   `json:"winner"`
	Rounds     int    `json:"rounds"`
	Scores     [2]int `json:"scores"`
	PegPoints  [2]int `json:"pegPoints"`
	HandPoints [2]int `json:"handPoints"`
	CribPoints [2]int `json:"cribPoints"`
	Deals      [2]int `json:"deals"`
}

// Summary returns the aggregate totals for a decided game, or nil while
// play continues
func (g *Game) Summary() *GameSummary {
	if !g.Over() {
		return nil
	}

	s := &GameSummary{
		Winner: g.Winner,
		Rounds: len(g.Results),
		Scores: g.Scores,
	}

	for _, res := range g.Results {
		s.Deals[res.Dealer]++
		for _, seat := range Seats {
			s.PegPoints[seat] += res.PegPoints[seat]
			s.HandPoints[seat] += res.HandPoints[seat]
			s.CribPoints[seat] += res.CribPoints[seat]
		}
	}

	return s
}

// UnmarshalJSON restores a game and reattaches the in-progress round
func (g *Game) UnmarshalJSON(data []byte) error {
	type gameAlias Game
	var alias gameAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	*g = Game(alias)
	g.logger = logrus.StandardLogger()
	if g.Round != nil {
		g.Round.game = g
	}

	return nil
}

// SetLogger replaces the game's logger
func (g *Game) SetLogger(logger logrus.FieldLogger) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	g.logger = logger
}
