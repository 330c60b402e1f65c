package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"
)

func (m *Mux) getStatsUserID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if m.recorder == nil {
			writeJSONError(w, http.StatusServiceUnavailable, nil)
			return
		}

		userStats, err := m.recorder.UserStats(r.Context(), gmux.Vars(r)["userID"])
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, userStats)
	}
}
