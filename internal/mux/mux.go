// Package mux exposes the cribbage engine over HTTP: creating games,
// reading snapshots, submitting decisions, and suspend/resume through
// export and import of the full session state.
package mux

import (
	"context"
	"net/http"

	gmux "github.com/gorilla/mux"

	"cribbage-server/pkg/stats"
)

type ctxKey int

const (
	ctxGameKey ctxKey = iota
)

// Recorder persists finished games and reports per-user aggregates.
// Satisfied by *stats.Store; nil disables results persistence.
type Recorder interface {
	Record(ctx context.Context, gr stats.GameResult) error
	UserStats(ctx context.Context, userID string) (*stats.UserStats, error)
}

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version  string
	store    *gameStore
	recorder Recorder
}

// NewMux returns a new HTTP mux. A nil recorder turns the stats
// endpoints off.
func NewMux(version string, recorder Recorder) *Mux {
	this := &Mux{
		Router:   gmux.NewRouter(),
		version:  version,
		store:    newGameStore(),
		recorder: recorder,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/opponents").Handler(this.getOpponents())
	r.Methods(http.MethodPost).Path("/game").Handler(this.postGame())
	r.Methods(http.MethodPost).Path("/game/import").Handler(this.postGameImport())
	r.Methods(http.MethodGet).Path("/stats/{userID}").Handler(this.getStatsUserID())

	gr := r.PathPrefix("/game/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
	gr.Use(this.gameMiddleware)
	gr.Methods(http.MethodGet).Path("").Handler(this.getGameUUID())
	gr.Methods(http.MethodGet).Path("/export").Handler(this.getGameUUIDExport())
	gr.Methods(http.MethodPost).Path("/decision").Handler(this.postGameUUIDDecision())
	gr.Methods(http.MethodDelete).Path("").Handler(this.deleteGameUUID())

	return this
}

// gameMiddleware resolves {uuid} to a live game and stores it on the
// request context
func (m *Mux) gameMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := gmux.Vars(r)["uuid"]

		game, ok := m.store.get(id)
		if !ok {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxGameKey, game)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
