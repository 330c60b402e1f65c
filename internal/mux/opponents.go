package mux

import (
	"net/http"

	"cribbage-server/pkg/cribbage/strategy"
)

type opponentResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (m *Mux) getOpponents() http.HandlerFunc {
	opponents := make([]opponentResponse, 0)
	for _, name := range strategy.Names() {
		opponents = append(opponents, opponentResponse{
			Name:        name,
			Description: strategy.Description(name),
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, opponents)
	}
}
