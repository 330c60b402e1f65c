package mux

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"

	"github.com/sirupsen/logrus"

	"cribbage-server/internal/config"
	"cribbage-server/pkg/cribbage"
	"cribbage-server/pkg/stats"
)

type postGamePayload struct {
	Opponent string `json:"opponent"`
	UserID   string `json:"userId"`
	Seed     int64  `json:"seed"`
}

func (m *Mux) postGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postGamePayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		opponent := payload.Opponent
		if opponent == "" {
			opponent = config.Instance().DefaultOpponent
		}

		session, err := cribbage.NewSession(cribbage.Options{
			Opponent:    opponent,
			UserID:      payload.UserID,
			FirstDealer: cribbage.SeatNone,
			Seed:        payload.Seed,
		})
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		if !m.store.put(session) {
			writeJSONError(w, http.StatusInternalServerError, errors.New("could not store session"))
			return
		}

		writeJSON(w, http.StatusCreated, session.Snapshot())
	}
}

func (m *Mux) getGameUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		game := r.Context().Value(ctxGameKey).(*liveGame)

		game.mu.Lock()
		snapshot := game.session.Snapshot()
		game.mu.Unlock()

		writeJSON(w, http.StatusOK, snapshot)
	}
}

func (m *Mux) postGameUUIDDecision() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		game := r.Context().Value(ctxGameKey).(*liveGame)

		var decision cribbage.Decision
		if !decodeRequest(w, r, &decision) {
			return
		}

		game.mu.Lock()
		defer game.mu.Unlock()

		snapshot, err := game.session.Submit(decision)
		if err != nil {
			if errors.Is(err, cribbage.ErrIllegalAction) {
				writeJSONError(w, http.StatusBadRequest, err)
				return
			}

			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		if snapshot.GameOver {
			m.recordResult(r, game)
		}

		writeJSON(w, http.StatusOK, snapshot)
	}
}

// recordResult persists the finished game, at most once. The caller
// holds the game lock.
func (m *Mux) recordResult(r *http.Request, game *liveGame) {
	if m.recorder == nil || game.recorded {
		return
	}
	game.recorded = true

	session := game.session
	if session.UserID() == "" {
		return
	}

	summary := session.Summary()
	human := session.HumanSeat()
	opponent := human.Other()

	gr := stats.GameResult{
		UserID:        session.UserID(),
		Opponent:      session.OpponentName(),
		UserScore:     summary.Scores[human],
		OpponentScore: summary.Scores[opponent],
		Won:           summary.Winner == human,
		Rounds:        summary.Rounds,
		PegPoints:     summary.PegPoints[human],
		HandPoints:    summary.HandPoints[human],
		CribPoints:    summary.CribPoints[human],
	}

	if err := m.recorder.Record(r.Context(), gr); err != nil {
		logrus.WithError(err).WithField("session", session.ID()).Error("could not record game result")
	}
}

func (m *Mux) deleteGameUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		game := r.Context().Value(ctxGameKey).(*liveGame)

		m.store.remove(game.session.ID())
		writeJSON(w, http.StatusOK, statusResponse{Status: "OK"})
	}
}

func (m *Mux) getGameUUIDExport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		game := r.Context().Value(ctxGameKey).(*liveGame)

		game.mu.Lock()
		data, err := json.Marshal(game.session)
		game.mu.Unlock()

		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, json.RawMessage(data))
	}
}

func (m *Mux) postGameImport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := ioutil.ReadAll(r.Body)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		session, err := cribbage.Restore(data, logrus.StandardLogger())
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		if !m.store.put(session) {
			writeJSONError(w, http.StatusConflict, errors.New("a game with that ID already exists"))
			return
		}

		writeJSON(w, http.StatusCreated, session.Snapshot())
	}
}
